package employee

import (
	"github.com/payease-hq/payease-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone,omitempty"`
	Designation     *string          `json:"designation,omitempty"`
	HireDate        string           `json:"hire_date"`
	AnnualCTC       decimal.Decimal  `json:"annual_ctc"`
	BasicPercentage *decimal.Decimal `json:"basic_percentage,omitempty"`
	HRAPercentage   *decimal.Decimal `json:"hra_percentage,omitempty"`
	PaidLeaveBalance *decimal.Decimal `json:"paid_leave_balance,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if r.AnnualCTC.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "annual_ctc", Message: "must be non-negative"})
	}
	errs = append(errs, validatePercentage("basic_percentage", r.BasicPercentage)...)
	errs = append(errs, validatePercentage("hra_percentage", r.HRAPercentage)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Percentages outside 20-70 produce salary structures the statutory rules
// were never tuned for, so they are rejected at the boundary.
func validatePercentage(field string, v *decimal.Decimal) validator.ValidationErrors {
	if v == nil {
		return nil
	}
	if v.LessThan(decimal.NewFromInt(20)) || v.GreaterThan(decimal.NewFromInt(70)) {
		return validator.ValidationErrors{{Field: field, Message: "must be between 20 and 70"}}
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID              string
	Name            *string          `json:"name,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	Designation     *string          `json:"designation,omitempty"`
	AnnualCTC       *decimal.Decimal `json:"annual_ctc,omitempty"`
	BasicPercentage *decimal.Decimal `json:"basic_percentage,omitempty"`
	HRAPercentage   *decimal.Decimal `json:"hra_percentage,omitempty"`
	PaidLeaveBalance *decimal.Decimal `json:"paid_leave_balance,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AnnualCTC != nil && r.AnnualCTC.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "annual_ctc", Message: "must be non-negative"})
	}
	errs = append(errs, validatePercentage("basic_percentage", r.BasicPercentage)...)
	errs = append(errs, validatePercentage("hra_percentage", r.HRAPercentage)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string           `json:"id"`
	CompanyID       string           `json:"company_id"`
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone,omitempty"`
	Designation     *string          `json:"designation,omitempty"`
	HireDate        string           `json:"hire_date"`
	AnnualCTC       decimal.Decimal  `json:"annual_ctc"`
	BasicPercentage *decimal.Decimal `json:"basic_percentage,omitempty"`
	HRAPercentage   *decimal.Decimal `json:"hra_percentage,omitempty"`
	PaidLeaveBalance decimal.Decimal `json:"paid_leave_balance"`
	IsActive        bool             `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		CompanyID:       e.CompanyID,
		Code:            e.Code,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		Designation:     e.Designation,
		HireDate:        e.HireDate.Format("2006-01-02"),
		AnnualCTC:       e.AnnualCTC,
		BasicPercentage: e.BasicPercentage,
		HRAPercentage:   e.HRAPercentage,
		PaidLeaveBalance: e.PaidLeaveBalance,
		IsActive:        e.IsActive,
	}
}

func ToResponses(list []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToResponse(e))
	}
	return out
}
