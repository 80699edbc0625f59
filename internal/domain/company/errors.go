package company

import "errors"

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrSettingsNotFound = errors.New("payroll settings not found")
	ErrNameExists       = errors.New("company name already exists")
)
