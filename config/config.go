package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

const (
	NotifierLog      = "log"
	NotifierQueue    = "queue"
	NotifierDisabled = "disabled"
)

type Config struct {
	// Temperatures this far below the patient's normal temperature raise an alert.
	TemperatureDropThreshold decimal.Decimal `envconfig:"TIDEPOOL_VITALS_TEMPERATURE_DROP_THRESHOLD" default:"1.5"`
	AlertLanguage            string          `envconfig:"TIDEPOOL_VITALS_ALERT_LANGUAGE" default:"en"`
	Notifier                 string          `envconfig:"TIDEPOOL_VITALS_NOTIFIER" default:"log"`
	QueueCapacity            int             `envconfig:"TIDEPOOL_VITALS_QUEUE_CAPACITY" default:"1000"`
	PatientCacheSize         int             `envconfig:"TIDEPOOL_VITALS_PATIENT_CACHE_SIZE" default:"256"`
	LogLevel                 string          `envconfig:"TIDEPOOL_VITALS_LOG_LEVEL" default:"info"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

// NewConfig loads and validates the configuration from the environment.
func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TemperatureDropThreshold.IsNegative() {
		return fmt.Errorf("temperature drop threshold must not be negative, got %s", c.TemperatureDropThreshold)
	}
	switch c.Notifier {
	case NotifierLog, NotifierQueue, NotifierDisabled:
	default:
		return fmt.Errorf("unknown notifier %q", c.Notifier)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("queue capacity must not be negative, got %d", c.QueueCapacity)
	}
	if c.PatientCacheSize <= 0 {
		return fmt.Errorf("patient cache size must be positive, got %d", c.PatientCacheSize)
	}
	return nil
}

func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.AlertLanguage)
	if err != nil {
		return language.Und, fmt.Errorf("invalid alert language %q: %w", c.AlertLanguage, err)
	}
	return tag, nil
}
