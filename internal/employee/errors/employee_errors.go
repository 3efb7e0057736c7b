package employeeerrors

import (
	"net/http"

	"employee-api/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrIllegalDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Department is not valid. Allowed: HR, Developer, Tester",
		http.StatusBadRequest,
	)
	ErrInvalidGender = apperror.New(
		apperror.CodeInvalidInput,
		"Gender is not valid. Allowed: Male/Female/Other or M/F",
		http.StatusBadRequest,
	)
	ErrInvalidName = apperror.New(
		apperror.CodeInvalidInput,
		"Name must not be blank",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be greater than 0",
		http.StatusBadRequest,
	)
	ErrDuplicateEmployeeID = apperror.New(
		apperror.CodeConflict,
		"Employee with the same ID already exists",
		http.StatusConflict,
	)
	ErrNameMismatch = apperror.New(
		apperror.CodeConflict,
		"Stored name does not match the provided old name",
		http.StatusConflict,
	)
	ErrUnpatchableField = apperror.New(
		apperror.CodeUnpatchableField,
		"Field is not patchable. Allowed: name, salary, dept, gender",
		http.StatusBadRequest,
	)
	ErrSalaryTypeMismatch = apperror.New(
		apperror.CodeTypeMismatch,
		"Salary must be numeric",
		http.StatusBadRequest,
	)
)
