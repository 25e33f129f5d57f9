package employee

import (
	"context"
	"encoding/json"
	"errors"

	employeeerrors "github.com/i-gitit/employee-dashboard/internal/employee/errors"
	"github.com/i-gitit/employee-dashboard/internal/shared/cache"
	"github.com/i-gitit/employee-dashboard/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	directoryCacheKey      = "employees:all"
	employeeCacheKeyPrefix = "employee:"
)

func GetEmployeeCacheKey(id string) string {
	return employeeCacheKeyPrefix + id
}

type Service interface {
	GetDirectory(ctx context.Context, state FilterSortState) (DirectoryResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetLeaveBalance(ctx context.Context, id string) (LeaveBalanceResponse, error)
	GetDepartments(ctx context.Context) ([]string, error)
	Records(ctx context.Context) ([]Employee, error)
	Refresh(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	cache  *cache.Cache
	logger *zap.Logger
}

func NewService(repo Repository, qc *cache.Cache, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		cache:  qc,
		logger: l,
	}
}

func (s *service) GetDirectory(ctx context.Context, state FilterSortState) (DirectoryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get directory requested",
		zap.String("request_id", rid),
		zap.String("search_term", state.SearchTerm),
		zap.String("department", state.Department),
		zap.String("sort_by", string(state.SortBy)),
		zap.String("sort_order", string(state.SortOrder)),
	)

	records, err := s.Records(ctx)
	if err != nil {
		return DirectoryResponse{}, err
	}

	processed := ProcessEmployees(records, state)

	return DirectoryResponse{
		Employees:   ToListResponse(processed),
		Departments: Departments(records),
		TotalCount:  len(records),
		ResultCount: len(processed),
	}, nil
}

// Records returns the full collection, served from the query cache within the
// staleness window and refetched past it.
func (s *service) Records(ctx context.Context) ([]Employee, error) {
	data, hit, err := s.cache.GetOrLoad(ctx, directoryCacheKey, s.fetchAllWithRetry)
	if err != nil {
		return nil, s.mapRepositoryError(ctx, err)
	}
	if hit {
		s.logger.Debug("directory served from cache")
	}

	var records []Employee
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Error("decode cached directory failed", zap.Error(err))
		return nil, employeeerrors.ErrDirectoryUnavailable
	}
	return records, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", id),
	)

	data, _, err := s.cache.GetOrLoad(ctx, GetEmployeeCacheKey(id), func(ctx context.Context) ([]byte, error) {
		empl, err := s.fetchByIDWithRetry(ctx, id)
		if err != nil {
			return nil, err
		}
		return json.Marshal(empl)
	})
	if err != nil {
		return EmployeeResponse{}, s.mapRepositoryError(ctx, err)
	}

	var empl Employee
	if err := json.Unmarshal(data, &empl); err != nil {
		s.logger.Error("decode cached employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, employeeerrors.ErrDirectoryUnavailable
	}

	return ToResponse(empl), nil
}

func (s *service) GetLeaveBalance(ctx context.Context, id string) (LeaveBalanceResponse, error) {
	empl, err := s.GetByID(ctx, id)
	if err != nil {
		return LeaveBalanceResponse{}, err
	}

	total := empl.LeavesAvailed + empl.LeavesAvailable
	usedPercent := 0
	if total > 0 {
		usedPercent = empl.LeavesAvailed * 100 / total
	}

	return LeaveBalanceResponse{
		EmployeeID:  empl.ID,
		Availed:     empl.LeavesAvailed,
		Available:   empl.LeavesAvailable,
		Total:       total,
		UsedPercent: usedPercent,
	}, nil
}

func (s *service) GetDepartments(ctx context.Context) ([]string, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return Departments(records), nil
}

// Refresh drops the cached collection and refetches immediately, ignoring the
// staleness window. Per-record entries are left to age out on their own.
func (s *service) Refresh(ctx context.Context) (int, error) {
	s.logger.Info("directory refresh requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)

	data, err := s.cache.Refetch(ctx, directoryCacheKey, s.fetchAllWithRetry)
	if err != nil {
		return 0, s.mapRepositoryError(ctx, err)
	}

	var records []Employee
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, employeeerrors.ErrDirectoryUnavailable
	}

	s.logger.Info("directory refreshed", zap.Int("records", len(records)))
	return len(records), nil
}

// fetchAllWithRetry applies the single bounded retry on transport failure.
func (s *service) fetchAllWithRetry(ctx context.Context) ([]byte, error) {
	records, err := s.repo.FetchAll(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("fetch all failed, retrying once", zap.Error(err))
		records, err = s.repo.FetchAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(records)
}

// fetchByIDWithRetry retries transport failures once; not-found is final.
func (s *service) fetchByIDWithRetry(ctx context.Context, id string) (Employee, error) {
	empl, err := s.repo.FetchByID(ctx, id)
	if err != nil && !errors.Is(err, ErrRecordNotFound) && ctx.Err() == nil {
		s.logger.Warn("fetch by id failed, retrying once",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		empl, err = s.repo.FetchByID(ctx, id)
	}
	return empl, err
}

// mapRepositoryError translates gateway errors into the API taxonomy. Context
// cancellation passes through untouched: a superseded request's result is
// discarded, not reported as a directory failure.
func (s *service) mapRepositoryError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.Error("directory fetch failed", zap.Error(err))
	return employeeerrors.ErrDirectoryUnavailable
}
