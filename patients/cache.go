package patients

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

type cachedRepository struct {
	repo  Repository
	cache *lru.Cache
}

var _ Repository = &cachedRepository{}

// NewCachedRepository puts a read-through LRU cache of the given size in
// front of repo. Patients are immutable, so entries are never invalidated.
func NewCachedRepository(repo Repository, size int) (Repository, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("unable to create patient cache: %w", err)
	}

	return &cachedRepository{
		repo:  repo,
		cache: cache,
	}, nil
}

func (c *cachedRepository) Get(ctx context.Context, id string) (*Patient, error) {
	if value, ok := c.cache.Get(id); ok {
		patient := value.(Patient)
		return &patient, nil
	}

	patient, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Add(id, *patient)
	return patient, nil
}

func (c *cachedRepository) Add(ctx context.Context, patient Patient) (string, error) {
	id, err := c.repo.Add(ctx, patient)
	if err != nil {
		return "", err
	}

	patient.Id = id
	c.cache.Add(id, patient)
	return id, nil
}
