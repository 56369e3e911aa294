package medical

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidepool-org/vitals/alerts"
	"github.com/tidepool-org/vitals/config"
	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/patients"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

type service struct {
	repo      patients.Repository
	notifier  alerts.Notifier
	threshold decimal.Decimal
	printer   *message.Printer
	logger    *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo patients.Repository, notifier alerts.Notifier, cfg *config.Config, logger *zap.SugaredLogger) (Service, error) {
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}

	return &service{
		repo:      repo,
		notifier:  notifier,
		threshold: cfg.TemperatureDropThreshold,
		printer:   message.NewPrinter(tag),
		logger:    logger,
	}, nil
}

func (s *service) CheckBloodPressure(ctx context.Context, patientId string, reading patients.BloodPressure) error {
	patient, err := s.getPatient(ctx, patientId)
	if err != nil {
		return err
	}

	baseline := patient.HealthInfo.BloodPressure
	logger := s.logger.With("patientId", patientId, "reading", reading.String(), "baseline", baseline.String())
	if reading.Equal(baseline) {
		logger.Debug("blood pressure is normal")
		return nil
	}

	logger.Warn("blood pressure is abnormal")
	return s.send(ctx, patientId, s.printer.Sprintf(bloodPressureAlert, patientId, reading.String(), baseline.String()))
}

func (s *service) CheckTemperature(ctx context.Context, patientId string, reading decimal.Decimal) error {
	patient, err := s.getPatient(ctx, patientId)
	if err != nil {
		return err
	}

	baseline := patient.HealthInfo.NormalTemperature
	logger := s.logger.With("patientId", patientId, "reading", reading.String(), "baseline", baseline.String())
	if !reading.LessThan(baseline.Sub(s.threshold)) {
		logger.Debug("temperature is normal")
		return nil
	}

	logger.Warn("temperature is abnormal")
	return s.send(ctx, patientId, s.printer.Sprintf(temperatureAlert, patientId, reading.String(), baseline.String()))
}

func (s *service) getPatient(ctx context.Context, patientId string) (*patients.Patient, error) {
	if strings.TrimSpace(patientId) == "" {
		return nil, errors.Wrap(errors.BadRequest, "patient id is missing")
	}

	patient, err := s.repo.Get(ctx, patientId)
	if err != nil {
		return nil, fmt.Errorf("unable to get patient %s: %w", patientId, err)
	}
	return patient, nil
}

func (s *service) send(ctx context.Context, patientId string, alert string) error {
	if err := s.notifier.Send(ctx, alert); err != nil {
		s.logger.Errorw("unable to send alert", "patientId", patientId, zap.Error(err))
		return fmt.Errorf("unable to send alert for patient %s: %w", patientId, err)
	}
	return nil
}
