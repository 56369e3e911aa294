package patients_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/patients"
	patientsTest "github.com/tidepool-org/vitals/patients/test"
)

var _ = Describe("Memory Repository", func() {
	var repo patients.Repository
	var ctx context.Context

	BeforeEach(func() {
		repo = patients.NewMemoryRepository()
		ctx = context.Background()
	})

	Describe("Add", func() {
		It("assigns a uuid when the patient has no id", func() {
			patient := patientsTest.RandomPatient()
			patient.Id = ""

			id, err := repo.Add(ctx, patient)
			Expect(err).ToNot(HaveOccurred())
			_, err = uuid.Parse(id)
			Expect(err).ToNot(HaveOccurred())

			stored, err := repo.Get(ctx, id)
			Expect(err).ToNot(HaveOccurred())
			Expect(stored.Id).To(Equal(id))
			Expect(stored.FirstName).To(Equal(patient.FirstName))
		})

		It("keeps an existing id", func() {
			patient := patientsTest.RandomPatient()

			id, err := repo.Add(ctx, patient)
			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal(patient.Id))
		})

		It("rejects a duplicate id", func() {
			patient := patientsTest.RandomPatient()
			_, err := repo.Add(ctx, patient)
			Expect(err).ToNot(HaveOccurred())

			_, err = repo.Add(ctx, patient)
			Expect(err).To(MatchError(patients.ErrDuplicate))
			Expect(err).To(MatchError(errors.Duplicate))
		})

		It("is safe for concurrent use", func() {
			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				patient := patientsTest.RandomPatient()
				patient.Id = ""
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					id, err := repo.Add(ctx, patient)
					Expect(err).ToNot(HaveOccurred())
					_, err = repo.Get(ctx, id)
					Expect(err).ToNot(HaveOccurred())
				}()
			}
			wg.Wait()
		})
	})

	Describe("Get", func() {
		It("returns not found for an unknown id", func() {
			patient, err := repo.Get(ctx, "unknown")
			Expect(err).To(MatchError(patients.ErrNotFound))
			Expect(err).To(MatchError(errors.NotFound))
			Expect(patient).To(BeNil())
		})

		It("returns a copy that can't change the stored record", func() {
			original := patientsTest.RandomPatient()
			_, err := repo.Add(ctx, original)
			Expect(err).ToNot(HaveOccurred())

			first, err := repo.Get(ctx, original.Id)
			Expect(err).ToNot(HaveOccurred())
			first.HealthInfo.BloodPressure = patients.NewBloodPressure(1, 1)
			first.FirstName = "changed"

			second, err := repo.Get(ctx, original.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(*second).To(Equal(original))
		})
	})

	Describe("Seed", func() {
		It("returns the ids in order", func() {
			first := patientsTest.RandomPatient()
			second := patientsTest.RandomPatient()
			second.Id = ""

			ids, err := patients.Seed(ctx, repo, first, second)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids).To(HaveLen(2))
			Expect(ids[0]).To(Equal(first.Id))
			Expect(ids[1]).ToNot(BeEmpty())
		})

		It("stops at the first failure", func() {
			patient := patientsTest.RandomPatient()

			ids, err := patients.Seed(ctx, repo, patient, patient)
			Expect(err).To(MatchError(patients.ErrDuplicate))
			Expect(ids).To(BeNil())
		})
	})
})
