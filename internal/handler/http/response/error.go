package response

import (
	"errors"
	"net/http"

	"github.com/payease-hq/payease-backend-go/internal/domain/attendance"
	"github.com/payease-hq/payease-backend-go/internal/domain/company"
	"github.com/payease-hq/payease-backend-go/internal/domain/employee"
	"github.com/payease-hq/payease-backend-go/internal/domain/payroll"
	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
	"github.com/payease-hq/payease-backend-go/internal/domain/user"
	"github.com/payease-hq/payease-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrSettingsNotFound):
		NotFound(w, "Payroll settings not found")
	case errors.Is(err, company.ErrNameExists):
		Conflict(w, "Company already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrEmptyImport):
		BadRequest(w, "Import file contains no rows", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrItemNotFound):
		NotFound(w, "Payroll item not found")
	case errors.Is(err, payroll.ErrRunInProgress):
		Conflict(w, "Payroll run already in progress for this period")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Invalid payroll run status transition")
	case errors.Is(err, payroll.ErrRunNotFinalized):
		BadRequest(w, "Payroll run must be finalized first", nil)
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "Company has no active employees", nil)

	// Salary calculation errors
	case errors.Is(err, salary.ErrInvalidConfig):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
