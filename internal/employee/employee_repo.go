package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// NameSalary is the storage-level projection behind the reporting queries.
type NameSalary struct {
	Name   string
	Salary float64
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	Save(ctx context.Context, e *Employee) error
	DeleteByID(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindBySalaryBetween(ctx context.Context, minSalary, maxSalary float64) ([]Employee, error)
	FindByDeptAndGender(ctx context.Context, dept, gender string) ([]Employee, error)
	FindByDeptOrGender(ctx context.Context, dept, gender string) ([]Employee, error)
	FindByGender(ctx context.Context, gender string) ([]Employee, error)
	FindBySalaryGreaterThan(ctx context.Context, salary float64) ([]Employee, error)
	FindBySalaryLessThan(ctx context.Context, salary float64) ([]Employee, error)
	FindNameAndSalary(ctx context.Context) ([]NameSalary, error)
	FindNameAndSalaryByDept(ctx context.Context, dept string) ([]NameSalary, error)
	DeleteByDeptAndGender(ctx context.Context, dept, gender string) (int64, error)
	IncreaseSalaryByDept(ctx context.Context, dept string, percent float64) (int64, error)
}

// repository reads through gorm; writes that must join a service-level
// transaction go through the *sql.Tx execer instead, mirroring the outbox
// repository.
type repository struct {
	gdb *gorm.DB
	db  *sql.DB
	tx  *sql.Tx
}

func NewRepository(gdb *gorm.DB, db *sql.DB) Repository {
	return &repository{gdb: gdb, db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{gdb: r.gdb, db: r.db, tx: tx}
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	query := `
		INSERT INTO employees (id, name, salary, dept, gender, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.execer().ExecContext(ctx, query,
		e.ID, e.Name, e.Salary, e.Dept, e.Gender, e.Email,
	)
	return err
}

func (r *repository) Save(ctx context.Context, e *Employee) error {
	query := `
		UPDATE employees
		SET name = $2, salary = $3, dept = $4, gender = $5, email = $6, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.execer().ExecContext(ctx, query,
		e.ID, e.Name, e.Salary, e.Dept, e.Gender, e.Email,
	)
	return err
}

func (r *repository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.execer().ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.gdb.WithContext(ctx).Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.gdb.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.gdb.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.gdb.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}

func (r *repository) DeleteAll(ctx context.Context) error {
	return r.gdb.WithContext(ctx).Exec(`DELETE FROM employees`).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.gdb.WithContext(ctx).First(&e, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindBySalaryBetween(ctx context.Context, minSalary, maxSalary float64) ([]Employee, error) {
	var emps []Employee
	err := r.gdb.WithContext(ctx).
		Where("salary BETWEEN ? AND ?", minSalary, maxSalary).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByDeptAndGender(ctx context.Context, dept, gender string) ([]Employee, error) {
	var emps []Employee
	err := r.gdb.WithContext(ctx).
		Where("dept = ? AND gender = ?", dept, gender).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByDeptOrGender(ctx context.Context, dept, gender string) ([]Employee, error) {
	var emps []Employee
	err := r.gdb.WithContext(ctx).
		Where("dept = ? OR gender = ?", dept, gender).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByGender(ctx context.Context, gender string) ([]Employee, error) {
	var emps []Employee
	err := r.gdb.WithContext(ctx).
		Where("gender = ?", gender).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindBySalaryGreaterThan(ctx context.Context, salary float64) ([]Employee, error) {
	var emps []Employee
	err := r.gdb.WithContext(ctx).
		Where("salary > ?", salary).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindBySalaryLessThan(ctx context.Context, salary float64) ([]Employee, error) {
	var emps []Employee
	err := r.gdb.WithContext(ctx).
		Where("salary < ?", salary).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindNameAndSalary(ctx context.Context) ([]NameSalary, error) {
	var rows []NameSalary
	err := r.gdb.WithContext(ctx).
		Model(&Employee{}).
		Select("name", "salary").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindNameAndSalaryByDept(ctx context.Context, dept string) ([]NameSalary, error) {
	var rows []NameSalary
	err := r.gdb.WithContext(ctx).
		Model(&Employee{}).
		Select("name", "salary").
		Where("dept = ?", dept).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DeleteByDeptAndGender(ctx context.Context, dept, gender string) (int64, error) {
	res := r.gdb.WithContext(ctx).
		Where("dept = ? AND gender = ?", dept, gender).
		Delete(&Employee{})
	return res.RowsAffected, res.Error
}

func (r *repository) IncreaseSalaryByDept(ctx context.Context, dept string, percent float64) (int64, error) {
	res := r.gdb.WithContext(ctx).
		Model(&Employee{}).
		Where("dept = ?", dept).
		Update("salary", gorm.Expr("salary + (salary * ? / 100)", percent))
	return res.RowsAffected, res.Error
}
