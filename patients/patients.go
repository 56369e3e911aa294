package patients

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidepool-org/vitals/errors"
)

var ErrNotFound = errors.Wrap(errors.NotFound, "patient not found")
var ErrDuplicate = errors.Wrap(errors.Duplicate, "patient is already registered")

//go:generate go tool mockgen -source=./patients.go -destination=./test/mock_repository.go -package test MockRepository

// Repository looks up registered patients. Records are immutable once added.
type Repository interface {
	Get(ctx context.Context, id string) (*Patient, error)
	Add(ctx context.Context, patient Patient) (string, error)
}

type Patient struct {
	Id         string
	FirstName  string
	LastName   string
	BirthDate  time.Time
	HealthInfo HealthInfo
}

func NewPatient(firstName, lastName string, birthDate time.Time, healthInfo HealthInfo) Patient {
	return Patient{
		FirstName:  firstName,
		LastName:   lastName,
		BirthDate:  birthDate,
		HealthInfo: healthInfo,
	}
}

func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// HealthInfo is the patient's baseline, the values considered normal for them.
type HealthInfo struct {
	NormalTemperature decimal.Decimal
	BloodPressure     BloodPressure
}

type BloodPressure struct {
	High int
	Low  int
}

func NewBloodPressure(high, low int) BloodPressure {
	return BloodPressure{High: high, Low: low}
}

func (b BloodPressure) Equal(other BloodPressure) bool {
	return b.High == other.High && b.Low == other.Low
}

func (b BloodPressure) String() string {
	return fmt.Sprintf("%d/%d", b.High, b.Low)
}
