package company

import (
	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
	"github.com/payease-hq/payease-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateCompanyRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSettingsRequest struct {
	State           *string          `json:"state,omitempty"`
	PFEnabled       *bool            `json:"pf_enabled,omitempty"`
	ESIEnabled      *bool            `json:"esi_enabled,omitempty"`
	PTEnabled       *bool            `json:"pt_enabled,omitempty"`
	BasicPercentage *decimal.Decimal `json:"basic_percentage,omitempty"`
	HRAPercentage   *decimal.Decimal `json:"hra_percentage,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicPercentage != nil && percentOutOfRange(*r.BasicPercentage) {
		errs = append(errs, validator.ValidationError{Field: "basic_percentage", Message: "must be between 20 and 70"})
	}
	if r.HRAPercentage != nil && percentOutOfRange(*r.HRAPercentage) {
		errs = append(errs, validator.ValidationError{Field: "hra_percentage", Message: "must be between 20 and 70"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func percentOutOfRange(v decimal.Decimal) bool {
	return v.LessThan(decimal.NewFromInt(20)) || v.GreaterThan(decimal.NewFromInt(70))
}

// DefaultPayrollSettings returns the settings a freshly onboarded company
// starts with.
func DefaultPayrollSettings(companyID string) PayrollSettings {
	return PayrollSettings{
		CompanyID:       companyID,
		State:           salary.DefaultState,
		PFEnabled:       true,
		ESIEnabled:      true,
		PTEnabled:       true,
		BasicPercentage: decimal.NewFromInt(salary.DefaultBasicPercentage),
		HRAPercentage:   decimal.NewFromInt(salary.DefaultHRAPercentage),
	}
}

type CompanyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PayrollSettingsResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	State           string          `json:"state"`
	StateRecognized bool            `json:"state_recognized"`
	PFEnabled       bool            `json:"pf_enabled"`
	ESIEnabled      bool            `json:"esi_enabled"`
	PTEnabled       bool            `json:"pt_enabled"`
	BasicPercentage decimal.Decimal `json:"basic_percentage"`
	HRAPercentage   decimal.Decimal `json:"hra_percentage"`
}

func ToSettingsResponse(s PayrollSettings) PayrollSettingsResponse {
	_, recognized := salary.LookupRule(s.State)
	return PayrollSettingsResponse{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		State:           s.State,
		StateRecognized: recognized,
		PFEnabled:       s.PFEnabled,
		ESIEnabled:      s.ESIEnabled,
		PTEnabled:       s.PTEnabled,
		BasicPercentage: s.BasicPercentage,
		HRAPercentage:   s.HRAPercentage,
	}
}
