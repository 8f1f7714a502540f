package employee

import (
	"context"
	"errors"
	"slices"

	employeeerrors "employee-directory/internal/employee/errors"
	"employee-directory/internal/shared/audit"
	"employee-directory/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, key SortKey, dir SortDir) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	directory Directory
	audit     audit.Logger
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(directory Directory, logger ...*zap.Logger) Service {
	return NewServiceWithAudit(directory, nil, logger...)
}

func NewServiceWithAudit(directory Directory, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{
		directory: directory,
		audit:     auditLogger,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	fields := req.toFields()
	if !fields.Gender.Valid() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidGender
	}

	empl, err := s.directory.Create(fields)
	if err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.sf.Forget(EmployeeOptionsKey)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)
	return mapToResponse(empl), nil
}

func (s *service) GetAll(ctx context.Context, key SortKey, dir SortDir) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("sort_by", string(key)),
		zap.String("sort_dir", string(dir)),
	)
	if key != SortKeyName && key != SortKeyAddress {
		return nil, employeeerrors.ErrInvalidSortKey
	}

	return mapToListResponse(Project(s.directory.List(), key, dir)), nil
}

// GetOptions lists id/name pairs ordered by name. Concurrent callers share a
// single projection; each gets its own copy of the result.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	v, err, shared := s.sf.Do(EmployeeOptionsKey, func() (any, error) {
		emps := Project(s.directory.List(), SortKeyName, SortAsc)
		opts := make([]EmployeeOptionResponse, len(emps))
		for i, e := range emps {
			opts[i] = EmployeeOptionResponse{ID: e.ID, Name: e.Name}
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("get employee options",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Bool("shared", shared),
	)
	return slices.Clone(v.([]EmployeeOptionResponse)), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", id),
	)

	empl, err := s.directory.Get(id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	return mapToResponse(empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	patch := req.toPatch()
	if patch.IsEmpty() {
		return EmployeeResponse{}, employeeerrors.ErrEmptyUpdate
	}
	if patch.Gender != nil && !patch.Gender.Valid() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidGender
	}

	empl, err := s.directory.Update(id, patch)
	if err != nil {
		s.logUpdateFailure(rid, id, err)
		return EmployeeResponse{}, err
	}

	s.sf.Forget(EmployeeOptionsKey)
	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return mapToResponse(empl), nil
}

func (s *service) logUpdateFailure(rid, id string, err error) {
	if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
		s.logger.Warn("update employee not found", zap.String("request_id", rid), zap.String("employee_id", id))
		return
	}
	s.logger.Error("update employee failed", zap.String("request_id", rid), zap.Error(err))
}

// Delete reports ErrEmployeeNotFound for an unknown id. Callers that treat
// delete as idempotent can ignore that error.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if err := s.directory.Delete(id); err != nil {
		s.logger.Warn("delete employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return err
	}

	s.sf.Forget(EmployeeOptionsKey)
	s.audit.Log(ctx, audit.Entry{
		Action:  "EMPLOYEE_DELETED",
		Message: "Employee removed from directory",
		Meta:    map[string]any{"employee_id": id},
	})
	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                 empl.ID,
		Name:               empl.Name,
		DateOfBirth:        empl.DateOfBirth,
		DateOfBirthDisplay: FormatDateOfBirth(empl.DateOfBirth),
		Gender:             string(empl.Gender),
		Email:              empl.Email,
		Address:            empl.Address,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
