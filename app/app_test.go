package app_test

import (
	"context"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/tidepool-org/vitals/alerts"
	"github.com/tidepool-org/vitals/app"
	"github.com/tidepool-org/vitals/medical"
	"github.com/tidepool-org/vitals/patients"
	patientsTest "github.com/tidepool-org/vitals/patients/test"
)

var _ = Describe("App", func() {
	setEnv := func(key, value string) {
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(os.Unsetenv, key)
	}

	It("wires the monitoring service", func() {
		setEnv("TIDEPOOL_VITALS_NOTIFIER", "queue")

		var service medical.Service
		var repo patients.Repository
		var notifier alerts.Notifier

		application := fxtest.New(GinkgoT(),
			app.Module,
			fx.Populate(&service, &repo, &notifier),
		)
		application.RequireStart()
		defer application.RequireStop()

		ctx := context.Background()
		id, err := repo.Add(ctx, patientsTest.ReferencePatient())
		Expect(err).ToNot(HaveOccurred())

		Expect(service.CheckTemperature(ctx, id, decimal.RequireFromString("36.6"))).To(Succeed())
		Expect(service.CheckBloodPressure(ctx, id, patients.NewBloodPressure(120, 80))).To(Succeed())

		queue, ok := notifier.(*alerts.QueueNotifier)
		Expect(ok).To(BeTrue())
		Expect(queue.Drain()).To(ConsistOf(ContainSubstring("Temperature 36.6")))
	})

	It("fails to start with an invalid configuration", func() {
		setEnv("TIDEPOOL_VITALS_NOTIFIER", "pager")

		application := app.New(fx.Invoke(func(medical.Service) {}))
		Expect(application.Err()).To(MatchError(ContainSubstring(`unknown notifier "pager"`)))
	})
})
