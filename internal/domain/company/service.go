package company

import "context"

type CompanyService interface {
	Get(ctx context.Context) (CompanyResponse, error)
	GetSettings(ctx context.Context) (PayrollSettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (PayrollSettingsResponse, error)
}
