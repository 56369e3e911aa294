package test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidepool-org/vitals/patients"
	"github.com/tidepool-org/vitals/test"
)

func RandomPatient() patients.Patient {
	return patients.Patient{
		Id:         test.Faker.UUID().V4(),
		FirstName:  test.Faker.Person().FirstName(),
		LastName:   test.Faker.Person().LastName(),
		BirthDate:  test.Faker.Time().TimeBetween(time.Now().AddDate(-90, 0, 0), time.Now().AddDate(-18, 0, 0)).UTC(),
		HealthInfo: RandomHealthInfo(),
	}
}

func RandomHealthInfo() patients.HealthInfo {
	return patients.HealthInfo{
		NormalTemperature: RandomTemperature(),
		BloodPressure:     RandomBloodPressure(),
	}
}

// RandomTemperature returns a temperature between 36.0 and 37.4 with one decimal place.
func RandomTemperature() decimal.Decimal {
	return decimal.New(int64(test.Faker.IntBetween(360, 374)), -1)
}

func RandomBloodPressure() patients.BloodPressure {
	return patients.NewBloodPressure(test.Faker.IntBetween(100, 140), test.Faker.IntBetween(60, 90))
}

// ReferencePatient is the patient used by the monitoring scenarios: normal
// temperature 41 and blood pressure 120/80.
func ReferencePatient() patients.Patient {
	return patients.Patient{
		Id:        "1",
		FirstName: "Ivan",
		LastName:  "Petrov",
		BirthDate: time.Date(1980, time.November, 26, 0, 0, 0, 0, time.UTC),
		HealthInfo: patients.HealthInfo{
			NormalTemperature: decimal.RequireFromString("41"),
			BloodPressure:     patients.NewBloodPressure(120, 80),
		},
	}
}
