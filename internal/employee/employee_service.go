package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "employee-api/internal/employee/errors"
	"employee-api/internal/events"
	"employee-api/internal/messaging/kafka"
	"employee-api/internal/shared/apperror"
	"employee-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProjectionCacheKey caches the name/salary projection of the whole table.
const ProjectionCacheKey = "employees:namesalary"

const projectionCacheTTL = 30 * time.Minute

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	CreateBulk(ctx context.Context, reqs []CreateEmployeeRequest) ([]EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Patch(ctx context.Context, id string, fields map[string]any) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	GetBySalaryBetween(ctx context.Context, minSalary, maxSalary float64) ([]EmployeeResponse, error)
	GetByDeptAndGender(ctx context.Context, dept, gender string) ([]EmployeeResponse, error)
	GetByDeptOrGender(ctx context.Context, dept, gender string) ([]EmployeeResponse, error)
	GetByGender(ctx context.Context, gender string) ([]EmployeeResponse, error)
	GetBySalaryGreaterThan(ctx context.Context, salary float64) ([]EmployeeResponse, error)
	GetBySalaryLessThan(ctx context.Context, salary float64) ([]EmployeeResponse, error)
	GetNameSalary(ctx context.Context) ([]NameSalaryResponse, error)
	GetNameSalaryByDept(ctx context.Context, dept string) ([]NameSalaryResponse, error)
	RenameWithOldName(ctx context.Context, id, oldName, newName string) (EmployeeResponse, error)
	DeleteByDeptAndGender(ctx context.Context, dept, gender string) (int64, error)
	IncreaseSalaryByDept(ctx context.Context, dept string, percent float64) (int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("dept", req.Dept),
	)

	empl := &Employee{
		Name:   req.Name,
		Salary: req.Salary,
		Dept:   req.Dept,
		Gender: req.Gender,
		Email:  req.Email,
	}
	if err := Normalize(empl); err != nil {
		s.logger.Warn("create employee normalization failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("create employee read count failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	empl.ID = GenerateEmployeeID(empl.Dept, count)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, events.EmployeeCreated, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateProjectionCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

// CreateBulk validates the whole batch before anything is persisted: one bad
// record aborts the batch. IDs are sequential from the row count read once at
// the start.
func (s *service) CreateBulk(ctx context.Context, reqs []CreateEmployeeRequest) ([]EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("bulk create employees requested",
		zap.String("request_id", rid),
		zap.Int("count", len(reqs)),
	)

	empls := make([]*Employee, 0, len(reqs))
	for i := range reqs {
		empl := &Employee{
			Name:   reqs[i].Name,
			Salary: reqs[i].Salary,
			Dept:   reqs[i].Dept,
			Gender: reqs[i].Gender,
			Email:  reqs[i].Email,
		}
		if err := Normalize(empl); err != nil {
			s.logger.Warn("bulk create normalization failed",
				zap.String("request_id", rid),
				zap.Int("index", i),
				zap.Error(err),
			)
			return nil, err
		}
		empls = append(empls, empl)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("bulk create read count failed", zap.Error(err))
		return nil, err
	}
	for i, empl := range empls {
		empl.ID = GenerateEmployeeID(empl.Dept, count+int64(i))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("bulk create begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, empl := range empls {
		if err := qtx.Create(ctx, empl); err != nil {
			s.logger.Error("bulk create persist failed",
				zap.String("employee_id", empl.ID),
				zap.Error(err),
			)
			return nil, mapRepositoryError(err)
		}
		if err := s.enqueueLifecycleEvent(ctx, tx, events.EmployeeCreated, empl); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("bulk create commit failed", zap.Error(err))
		return nil, err
	}

	s.invalidateProjectionCache(ctx)

	s.logger.Info("bulk create success",
		zap.String("request_id", rid),
		zap.Int("count", len(empls)),
	)

	resp := make([]EmployeeResponse, len(empls))
	for i, empl := range empls {
		resp[i] = mapToResponse(*empl)
	}
	return resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

// Update overwrites all mutable fields from the request and re-runs the full
// normalization pipeline over the merged record before persisting.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.Salary = req.Salary
	empl.Dept = req.Dept
	empl.Gender = req.Gender
	empl.Email = req.Email

	if err := Normalize(empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.saveInTx(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateProjectionCache(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

// Patch overwrites only the provided fields; the field set is closed.
// Unknown keys are rejected rather than ignored, and salary must arrive as a
// JSON number. The merged record goes through full normalization again.
func (s *service) Patch(ctx context.Context, id string, fields map[string]any) (EmployeeResponse, error) {
	s.logger.Debug("patch employee requested",
		zap.String("employee_id", id),
		zap.Int("fields", len(fields)),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	for k, v := range fields {
		switch k {
		case "name":
			sv, ok := v.(string)
			if !ok {
				return EmployeeResponse{}, apperror.InvalidField("Name")
			}
			empl.Name = sv
		case "salary":
			fv, ok := numericValue(v)
			if !ok {
				return EmployeeResponse{}, employeeerrors.ErrSalaryTypeMismatch
			}
			empl.Salary = fv
		case "dept":
			sv, ok := v.(string)
			if !ok {
				return EmployeeResponse{}, apperror.InvalidField("Dept")
			}
			empl.Dept = sv
		case "gender":
			sv, ok := v.(string)
			if !ok {
				return EmployeeResponse{}, apperror.InvalidField("Gender")
			}
			empl.Gender = sv
		default:
			s.logger.Warn("patch employee unknown field", zap.String("field", k))
			return EmployeeResponse{}, employeeerrors.ErrUnpatchableField
		}
	}

	if err := Normalize(empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.saveInTx(ctx, empl); err != nil {
		s.logger.Error("patch employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateProjectionCache(ctx)
	s.logger.Info("patch employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !exists {
		return employeeerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteByID(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, events.EmployeeDeleted, &Employee{ID: id}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateProjectionCache(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) DeleteAll(ctx context.Context) error {
	s.logger.Info("delete all employees requested")
	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("delete all employees failed", zap.Error(err))
		return err
	}
	s.invalidateProjectionCache(ctx)
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) GetByEmail(ctx context.Context, email string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by email requested", zap.String("email", email))
	empl, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetBySalaryBetween(ctx context.Context, minSalary, maxSalary float64) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindBySalaryBetween(ctx, minSalary, maxSalary)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

// Filter queries are pass-throughs: dept and gender are matched as given,
// without canonicalization. Callers must supply canonical values.
func (s *service) GetByDeptAndGender(ctx context.Context, dept, gender string) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindByDeptAndGender(ctx, dept, gender)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByDeptOrGender(ctx context.Context, dept, gender string) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindByDeptOrGender(ctx, dept, gender)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByGender(ctx context.Context, gender string) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindByGender(ctx, gender)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetBySalaryGreaterThan(ctx context.Context, salary float64) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindBySalaryGreaterThan(ctx, salary)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetBySalaryLessThan(ctx context.Context, salary float64) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindBySalaryLessThan(ctx, salary)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

// GetNameSalary serves the projection from redis when possible; singleflight
// keeps a cache-miss stampede down to one storage query.
func (s *service) GetNameSalary(ctx context.Context) ([]NameSalaryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ProjectionCacheKey).Result(); err == nil {
			var resp []NameSalaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ProjectionCacheKey, func() (any, error) {
		rows, err := s.repo.FindNameAndSalary(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToNameSalaryResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ProjectionCacheKey, jsonData, projectionCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]NameSalaryResponse), nil
}

func (s *service) GetNameSalaryByDept(ctx context.Context, dept string) ([]NameSalaryResponse, error) {
	rows, err := s.repo.FindNameAndSalaryByDept(ctx, dept)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToNameSalaryResponse(rows), nil
}

// RenameWithOldName replaces the name only when the stored one matches
// oldName (case-insensitive, trimmed). The normalization pipeline is skipped:
// the new name is stored as given, modulo trimming.
func (s *service) RenameWithOldName(ctx context.Context, id, oldName, newName string) (EmployeeResponse, error) {
	s.logger.Debug("rename employee requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if !strings.EqualFold(strings.TrimSpace(empl.Name), strings.TrimSpace(oldName)) {
		s.logger.Warn("rename employee old name mismatch", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.ErrNameMismatch
	}

	empl.Name = strings.TrimSpace(newName)

	if err := s.saveInTx(ctx, empl); err != nil {
		s.logger.Error("rename employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateProjectionCache(ctx)
	s.logger.Info("rename employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

// DeleteByDeptAndGender is an escape hatch straight through to storage: dept
// and gender are not canonicalized before matching.
func (s *service) DeleteByDeptAndGender(ctx context.Context, dept, gender string) (int64, error) {
	affected, err := s.repo.DeleteByDeptAndGender(ctx, dept, gender)
	if err != nil {
		s.logger.Error("delete by dept and gender failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}
	if affected > 0 {
		s.invalidateProjectionCache(ctx)
	}
	s.logger.Info("delete by dept and gender",
		zap.String("dept", dept),
		zap.String("gender", gender),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

// IncreaseSalaryByDept applies salary += salary * percent/100 directly in
// storage, bypassing the bonus/PF/tax chain and its rounding.
func (s *service) IncreaseSalaryByDept(ctx context.Context, dept string, percent float64) (int64, error) {
	affected, err := s.repo.IncreaseSalaryByDept(ctx, dept, percent)
	if err != nil {
		s.logger.Error("increase salary by dept failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}
	if affected > 0 {
		s.invalidateProjectionCache(ctx)
	}
	s.logger.Info("increase salary by dept",
		zap.String("dept", dept),
		zap.Float64("percent", percent),
		zap.Int64("affected", affected),
	)
	return affected, nil
}

func (s *service) saveInTx(ctx context.Context, empl *Employee) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Save(ctx, empl); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: empl.ID,
		Dept:       empl.Dept,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal lifecycle event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   empl.ID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("lifecycle event outbox persist failed",
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *service) invalidateProjectionCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ProjectionCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate projection cache",
			zap.Error(err),
			zap.String("key", ProjectionCacheKey),
		)
	}
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:     empl.ID,
		Name:   empl.Name,
		Salary: empl.Salary,
		Dept:   empl.Dept,
		Gender: empl.Gender,
		Email:  empl.Email,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}

func mapToNameSalaryResponse(rows []NameSalary) []NameSalaryResponse {
	res := make([]NameSalaryResponse, len(rows))
	for i, r := range rows {
		res[i] = NameSalaryResponse{Name: r.Name, Salary: r.Salary}
	}
	return res
}
