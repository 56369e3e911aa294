package patients_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/tidepool-org/vitals/patients"
)

var _ = Describe("Patients", func() {
	Describe("BloodPressure", func() {
		It("is equal only when both values match", func() {
			baseline := patients.NewBloodPressure(120, 80)

			Expect(baseline.Equal(patients.NewBloodPressure(120, 80))).To(BeTrue())
			Expect(baseline.Equal(patients.NewBloodPressure(120, 81))).To(BeFalse())
			Expect(baseline.Equal(patients.NewBloodPressure(60, 120))).To(BeFalse())
		})

		It("renders as high over low", func() {
			Expect(patients.NewBloodPressure(150, 120).String()).To(Equal("150/120"))
		})
	})

	Describe("NewPatient", func() {
		It("builds a patient without an id", func() {
			birthDate := time.Date(1980, time.November, 26, 0, 0, 0, 0, time.UTC)
			healthInfo := patients.HealthInfo{
				NormalTemperature: decimal.RequireFromString("36.6"),
				BloodPressure:     patients.NewBloodPressure(125, 78),
			}

			patient := patients.NewPatient("Semyon", "Mikhailov", birthDate, healthInfo)

			Expect(patient.Id).To(BeEmpty())
			Expect(patient.FullName()).To(Equal("Semyon Mikhailov"))
			Expect(patient.BirthDate).To(Equal(birthDate))
			Expect(patient.HealthInfo).To(Equal(healthInfo))
		})
	})
})
