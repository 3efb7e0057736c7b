package employee_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"employee-api/internal/employee"
	employeeerrors "employee-api/internal/employee/errors"
	mockemployee "employee-api/internal/employee/mock"
	"employee-api/internal/messaging/kafka"
	mockkafka "employee-api/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	repo      *mockemployee.MockRepository
	outbox    *mockkafka.MockOutboxRepository
	dbMock    sqlmock.Sqlmock
	redisMock redismock.ClientMock
	svc       employee.Service
}

func setupServiceTest(t *testing.T) serviceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()

	repo := mockemployee.NewMockRepository(ctrl)
	outbox := mockkafka.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, outbox, rdb, zap.NewNop())

	return serviceDeps{
		repo:      repo,
		outbox:    outbox,
		dbMock:    dbMock,
		redisMock: redisMock,
		svc:       svc,
	}
}

func expectTx(m sqlmock.Sqlmock, commit bool) {
	m.ExpectBegin()
	if commit {
		m.ExpectCommit()
	} else {
		m.ExpectRollback()
	}
}

func TestService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	year := time.Now().Year()

	req := employee.CreateEmployeeRequest{
		Name:   "bob",
		Salary: 50000,
		Dept:   " dev ",
		Gender: "m",
		Email:  "bob@example.com",
	}

	deps.repo.EXPECT().Count(ctx).Return(int64(4), nil)
	expectTx(deps.dbMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, fmt.Sprintf("DEV%d-005", year), e.ID)
			assert.Equal(t, "Bob", e.Name)
			assert.Equal(t, "Developer", e.Dept)
			assert.Equal(t, "M", e.Gender)
			assert.Equal(t, 36575.00, e.Salary)
			return nil
		})
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, "employee_created", ev.EventType)
			assert.Equal(t, "employee", ev.AggregateType)
			assert.NotEmpty(t, ev.ID)
			return nil
		})
	deps.redisMock.ExpectDel(employee.ProjectionCacheKey).SetVal(1)

	resp, err := deps.svc.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("DEV%d-005", year), resp.ID)
	assert.Equal(t, "Bob", resp.Name)
	assert.Equal(t, 36575.00, resp.Salary)
	assert.NoError(t, deps.dbMock.ExpectationsWereMet())
}

func TestService_Create_IllegalDepartment(t *testing.T) {
	deps := setupServiceTest(t)

	req := employee.CreateEmployeeRequest{
		Name:   "bob",
		Salary: 50000,
		Dept:   "sales",
		Gender: "m",
	}

	_, err := deps.svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, employeeerrors.ErrIllegalDepartment)
}

func TestService_Create_DuplicateID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	req := employee.CreateEmployeeRequest{
		Name:   "bob",
		Salary: 50000,
		Dept:   "HR",
		Gender: "m",
	}

	deps.repo.EXPECT().Count(ctx).Return(int64(4), nil)
	expectTx(deps.dbMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := deps.svc.Create(ctx, req)

	assert.ErrorIs(t, err, employeeerrors.ErrDuplicateEmployeeID)
	assert.NoError(t, deps.dbMock.ExpectationsWereMet())
}

func TestService_CreateBulk_SequentialIDs(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	year := time.Now().Year()

	reqs := []employee.CreateEmployeeRequest{
		{Name: "alice", Salary: 20000, Dept: "hr", Gender: "f"},
		{Name: "bob", Salary: 20000, Dept: "HR", Gender: "m"},
	}

	deps.repo.EXPECT().Count(ctx).Return(int64(10), nil)
	expectTx(deps.dbMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

	var ids []string
	deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			ids = append(ids, e.ID)
			return nil
		}).Times(2)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox).Times(2)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
	deps.redisMock.ExpectDel(employee.ProjectionCacheKey).SetVal(1)

	resp, err := deps.svc.CreateBulk(ctx, reqs)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, []string{
		fmt.Sprintf("HR%d-011", year),
		fmt.Sprintf("HR%d-012", year),
	}, ids)
	assert.NoError(t, deps.dbMock.ExpectationsWereMet())
}

func TestService_CreateBulk_OneBadRecordAbortsBatch(t *testing.T) {
	deps := setupServiceTest(t)

	reqs := []employee.CreateEmployeeRequest{
		{Name: "alice", Salary: 20000, Dept: "hr", Gender: "f"},
		{Name: "bob", Salary: 20000, Dept: "warehouse", Gender: "m"},
	}

	// nothing may reach the repository
	_, err := deps.svc.CreateBulk(context.Background(), reqs)

	assert.ErrorIs(t, err, employeeerrors.ErrIllegalDepartment)
}

func TestService_GetByID_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindByID(ctx, "HR2025-001").Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.svc.GetByID(ctx, "HR2025-001")

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_Update_RerunsNormalization(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	stored := &employee.Employee{
		ID:     "DEV2025-001",
		Name:   "Bob",
		Salary: 36575.00,
		Dept:   "Developer",
		Gender: "M",
	}

	deps.repo.EXPECT().FindByID(ctx, "DEV2025-001").Return(stored, nil)
	expectTx(deps.dbMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "Alice", e.Name)
			assert.Equal(t, "Tester", e.Dept)
			// 40000 -> 44000 -> 41800 -> 29260.00
			assert.Equal(t, 29260.00, e.Salary)
			return nil
		})
	deps.redisMock.ExpectDel(employee.ProjectionCacheKey).SetVal(1)

	resp, err := deps.svc.Update(ctx, "DEV2025-001", employee.UpdateEmployeeRequest{
		Name:   "alice",
		Salary: 40000,
		Dept:   "test",
		Gender: "f",
	})

	assert.NoError(t, err)
	assert.Equal(t, "DEV2025-001", resp.ID)
	assert.Equal(t, 29260.00, resp.Salary)
	assert.NoError(t, deps.dbMock.ExpectationsWereMet())
}

func TestService_Patch_Salary(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	stored := &employee.Employee{
		ID:     "HR2025-002",
		Name:   "Bob",
		Salary: 13300.00,
		Dept:   "HR",
		Gender: "M",
	}

	deps.repo.EXPECT().FindByID(ctx, "HR2025-002").Return(stored, nil)
	expectTx(deps.dbMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, 29260.00, e.Salary)
			return nil
		})
	deps.redisMock.ExpectDel(employee.ProjectionCacheKey).SetVal(1)

	resp, err := deps.svc.Patch(ctx, "HR2025-002", map[string]any{"salary": 40000.0})

	assert.NoError(t, err)
	assert.Equal(t, 29260.00, resp.Salary)
	assert.NoError(t, deps.dbMock.ExpectationsWereMet())
}

func TestService_Patch_UnknownField(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindByID(ctx, "HR2025-002").Return(&employee.Employee{ID: "HR2025-002"}, nil)

	_, err := deps.svc.Patch(ctx, "HR2025-002", map[string]any{"height": 180})

	assert.ErrorIs(t, err, employeeerrors.ErrUnpatchableField)
}

func TestService_Patch_SalaryTypeMismatch(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindByID(ctx, "HR2025-002").Return(&employee.Employee{ID: "HR2025-002"}, nil)

	_, err := deps.svc.Patch(ctx, "HR2025-002", map[string]any{"salary": "abc"})

	assert.ErrorIs(t, err, employeeerrors.ErrSalaryTypeMismatch)
}

func TestService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().ExistsByID(ctx, "HR2025-003").Return(true, nil)
	expectTx(deps.dbMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().DeleteByID(ctx, "HR2025-003").Return(nil)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, "employee_deleted", ev.EventType)
			assert.Equal(t, "HR2025-003", ev.AggregateID)
			return nil
		})
	deps.redisMock.ExpectDel(employee.ProjectionCacheKey).SetVal(1)

	err := deps.svc.Delete(ctx, "HR2025-003")

	assert.NoError(t, err)
	assert.NoError(t, deps.dbMock.ExpectationsWereMet())
}

func TestService_Delete_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().ExistsByID(ctx, "HR2025-404").Return(false, nil)

	err := deps.svc.Delete(ctx, "HR2025-404")

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_RenameWithOldName(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	stored := &employee.Employee{ID: "HR2025-001", Name: "Alice", Salary: 13300, Dept: "HR", Gender: "F"}

	deps.repo.EXPECT().FindByID(ctx, "HR2025-001").Return(stored, nil)
	expectTx(deps.dbMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			// stored as given: no casing pipeline on rename
			assert.Equal(t, "bOb", e.Name)
			assert.Equal(t, 13300.00, e.Salary)
			return nil
		})
	deps.redisMock.ExpectDel(employee.ProjectionCacheKey).SetVal(1)

	resp, err := deps.svc.RenameWithOldName(ctx, "HR2025-001", " ALICE ", " bOb ")

	assert.NoError(t, err)
	assert.Equal(t, "bOb", resp.Name)
	assert.NoError(t, deps.dbMock.ExpectationsWereMet())
}

func TestService_RenameWithOldName_Mismatch(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	stored := &employee.Employee{ID: "HR2025-001", Name: "Charlie"}
	deps.repo.EXPECT().FindByID(ctx, "HR2025-001").Return(stored, nil)

	_, err := deps.svc.RenameWithOldName(ctx, "HR2025-001", "Alice", "Bob")

	assert.ErrorIs(t, err, employeeerrors.ErrNameMismatch)
}

func TestService_GetNameSalary_CacheHit(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	cached := []employee.NameSalaryResponse{{Name: "Bob", Salary: 36575}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	deps.redisMock.ExpectGet(employee.ProjectionCacheKey).SetVal(string(payload))

	resp, err := deps.svc.GetNameSalary(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestService_GetNameSalary_CacheMiss(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	rows := []employee.NameSalary{{Name: "Bob", Salary: 36575}}
	expected := []employee.NameSalaryResponse{{Name: "Bob", Salary: 36575}}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	deps.redisMock.ExpectGet(employee.ProjectionCacheKey).RedisNil()
	deps.repo.EXPECT().FindNameAndSalary(ctx).Return(rows, nil)
	deps.redisMock.ExpectSet(employee.ProjectionCacheKey, payload, 30*time.Minute).SetVal("OK")

	resp, err := deps.svc.GetNameSalary(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestService_DeleteByDeptAndGender(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().DeleteByDeptAndGender(ctx, "Developer", "M").Return(int64(3), nil)
	deps.redisMock.ExpectDel(employee.ProjectionCacheKey).SetVal(1)

	affected, err := deps.svc.DeleteByDeptAndGender(ctx, "Developer", "M")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestService_DeleteByDeptAndGender_NoMatchSkipsInvalidation(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	// values pass through as given, no canonicalization
	deps.repo.EXPECT().DeleteByDeptAndGender(ctx, "dev", "male").Return(int64(0), nil)

	affected, err := deps.svc.DeleteByDeptAndGender(ctx, "dev", "male")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestService_IncreaseSalaryByDept(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().IncreaseSalaryByDept(ctx, "Tester", 10.0).Return(int64(2), nil)
	deps.redisMock.ExpectDel(employee.ProjectionCacheKey).SetVal(1)

	affected, err := deps.svc.IncreaseSalaryByDept(ctx, "Tester", 10.0)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}
