package medical

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tidepool-org/vitals/patients"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Service checks vital sign readings against the patient's baseline and
// sends an alert when a reading is abnormal.
type Service interface {
	// CheckBloodPressure alerts when the reading differs from the patient's
	// normal blood pressure.
	CheckBloodPressure(ctx context.Context, patientId string, reading patients.BloodPressure) error
	// CheckTemperature alerts when the reading is lower than the patient's
	// normal temperature by more than the configured threshold.
	CheckTemperature(ctx context.Context, patientId string, reading decimal.Decimal) error
}

const (
	bloodPressureAlert = "Warning, patient with id: %s, need help. Blood pressure %s, normal %s"
	temperatureAlert   = "Warning, patient with id: %s, need help. Temperature %s, normal %s"
)

func init() {
	_ = message.SetString(language.Russian, bloodPressureAlert, "Внимание, пациенту с id: %s требуется помощь. Давление %s, норма %s")
	_ = message.SetString(language.Russian, temperatureAlert, "Внимание, пациенту с id: %s требуется помощь. Температура %s, норма %s")
}
