package employee

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

//go:embed employees.json
var defaultDataset []byte

// ErrRecordNotFound is the repository-level not-found signal; the service
// maps it onto the HTTP error taxonomy.
var ErrRecordNotFound = errors.New("employee record not found")

// Repository is the fetch gateway to the record collection. Both calls may
// fail; FetchByID fails with ErrRecordNotFound rather than returning a
// partial record.
type Repository interface {
	FetchAll(ctx context.Context) ([]Employee, error)
	FetchByID(ctx context.Context, id string) (Employee, error)
}

// datasetRepository serves a read-only JSON dataset loaded once at startup.
// An optional per-call delay simulates transport latency.
type datasetRepository struct {
	records []Employee
	delay   time.Duration
	logger  *zap.Logger
}

// NewDatasetRepository loads the dataset from path, or the embedded default
// when path is empty. Duplicate ids are a dataset defect and fail loading.
func NewDatasetRepository(path string, delay time.Duration, logger ...*zap.Logger) (Repository, error) {
	l := zap.L().Named("employee.repository")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.repository")
	}

	raw := defaultDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", path, err)
		}
		raw = b
	}

	var records []Employee
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	for _, e := range records {
		if _, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("duplicate employee id %q in dataset", e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	l.Info("dataset loaded", zap.Int("records", len(records)))

	return &datasetRepository{
		records: records,
		delay:   delay,
		logger:  l,
	}, nil
}

func (r *datasetRepository) FetchAll(ctx context.Context) ([]Employee, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}
	// Copy so callers can never reorder the backing collection.
	return append([]Employee(nil), r.records...), nil
}

func (r *datasetRepository) FetchByID(ctx context.Context, id string) (Employee, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return Employee{}, err
	}
	for _, e := range r.records {
		if e.ID == id {
			return e, nil
		}
	}
	return Employee{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

func (r *datasetRepository) simulateLatency(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
