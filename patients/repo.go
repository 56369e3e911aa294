package patients

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu       sync.RWMutex
	patients map[string]Patient
	newId    func() string
}

var _ Repository = &memoryRepository{}

// NewMemoryRepository returns a repository that keeps patients in process memory.
// Get hands out copies, so stored records can't be changed by callers.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		patients: make(map[string]Patient),
		newId:    uuid.NewString,
	}
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &patient, nil
}

func (r *memoryRepository) Add(ctx context.Context, patient Patient) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(patient.Id) == "" {
		patient.Id = r.newId()
	}
	if _, exists := r.patients[patient.Id]; exists {
		return "", ErrDuplicate
	}
	r.patients[patient.Id] = patient
	return patient.Id, nil
}

// Seed adds the patients in order and returns their ids.
func Seed(ctx context.Context, repo Repository, patients ...Patient) ([]string, error) {
	ids := make([]string, 0, len(patients))
	for _, patient := range patients {
		id, err := repo.Add(ctx, patient)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
