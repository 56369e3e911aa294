package patients

import (
	"github.com/tidepool-org/vitals/config"
)

// NewRepository is the fx provider for the patient repository used by the
// monitoring service.
func NewRepository(cfg *config.Config) (Repository, error) {
	return NewCachedRepository(NewMemoryRepository(), cfg.PatientCacheSize)
}
