package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"

	"github.com/payease-hq/payease-backend-go/internal/domain/company"
	"github.com/payease-hq/payease-backend-go/internal/domain/salary"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
)

type CompanyServiceImpl struct {
	db          *database.DB
	companyRepo company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:          db,
		companyRepo: companyRepo,
	}
}

// Helper to get company_id from JWT context
func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context) (company.CompanyResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	comp, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return company.CompanyResponse{ID: comp.ID, Name: comp.Name, Email: comp.Email}, nil
}

// GetSettings implements company.CompanyService. A company that never saved
// settings gets the defaults back rather than a 404.
func (s *CompanyServiceImpl) GetSettings(ctx context.Context) (company.PayrollSettingsResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return company.PayrollSettingsResponse{}, err
	}

	settings, err := s.companyRepo.GetSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrSettingsNotFound) {
			return company.ToSettingsResponse(company.DefaultPayrollSettings(companyID)), nil
		}
		return company.PayrollSettingsResponse{}, err
	}

	return company.ToSettingsResponse(settings), nil
}

// UpdateSettings implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateSettings(ctx context.Context, req company.UpdateSettingsRequest) (company.PayrollSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return company.PayrollSettingsResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return company.PayrollSettingsResponse{}, err
	}

	// Get current settings or use defaults
	current, err := s.companyRepo.GetSettings(ctx, companyID)
	if err != nil {
		if !errors.Is(err, company.ErrSettingsNotFound) {
			return company.PayrollSettingsResponse{}, err
		}
		current = company.DefaultPayrollSettings(companyID)
	}

	// Apply updates
	if req.State != nil {
		current.State = *req.State
		if _, recognized := salary.LookupRule(*req.State); !recognized {
			slog.Warn("Payroll settings saved with unrecognized state",
				"company_id", companyID, "state", *req.State,
				"fallback", salary.DefaultState, "recognized", salary.States())
		}
	}
	if req.PFEnabled != nil {
		current.PFEnabled = *req.PFEnabled
	}
	if req.ESIEnabled != nil {
		current.ESIEnabled = *req.ESIEnabled
	}
	if req.PTEnabled != nil {
		current.PTEnabled = *req.PTEnabled
	}
	if req.BasicPercentage != nil {
		current.BasicPercentage = *req.BasicPercentage
	}
	if req.HRAPercentage != nil {
		current.HRAPercentage = *req.HRAPercentage
	}

	updated, err := s.companyRepo.UpsertSettings(ctx, current)
	if err != nil {
		return company.PayrollSettingsResponse{}, err
	}

	return company.ToSettingsResponse(updated), nil
}
