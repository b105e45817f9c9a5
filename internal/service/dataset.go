package service

import (
	"context"
	"fmt"
	"food-wastage-api/internal/dataset"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo"
	"log"
	"sync"
	"time"
)

type DatasetService struct {
	datasetRepo repo.Dataset
	cache       *reportCache
	now         func() time.Time

	dataDir    string
	synthesize bool
	seed       int64

	mu   sync.Mutex
	last *entity.LoadStatus
}

func NewDatasetService(repos *repo.Repositories, cache *reportCache, opts Options) *DatasetService {
	return &DatasetService{
		datasetRepo: repos.Dataset,
		cache:       cache,
		now:         opts.clock(),
		dataDir:     opts.DataDir,
		synthesize:  opts.SynthesizeClaims,
		seed:        opts.SyntheticSeed,
	}
}

// Reload reads the source files again and replaces every stored row. Problems
// with single files are reported in the status; only a failed replace is an error.
func (s *DatasetService) Reload(ctx context.Context) (*entity.LoadStatus, error) {
	ds, status := dataset.Load(s.dataDir, dataset.Options{
		SynthesizeClaims: s.synthesize,
		Seed:             s.seed,
		Now:              s.now,
	})
	for _, m := range status.Messages {
		log.Printf("dataset load %s: %s", status.RunId, m)
	}

	if err := s.datasetRepo.ReplaceAll(ctx, ds); err != nil {
		return status, fmt.Errorf("failed to store dataset: %w", err)
	}
	s.cache.invalidate()

	s.mu.Lock()
	s.last = status
	s.mu.Unlock()

	return status, nil
}

func (s *DatasetService) Status(ctx context.Context) (*entity.DatasetStatus, error) {
	counts, err := s.datasetRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &entity.DatasetStatus{LastLoad: s.last, Counts: *counts}, nil
}
