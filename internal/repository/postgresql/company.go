package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/payease-hq/payease-backend-go/internal/domain/company"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, created_at, updated_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query, newCompany.Name, newCompany.Email).
		Scan(&created.ID, &created.Name, &created.Email, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return company.Company{}, company.ErrNameExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return created, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, email, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Email, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company with id %s: %w", id, err)
	}

	return found, nil
}

// GetSettings implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetSettings(ctx context.Context, companyID string) (company.PayrollSettings, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, company_id, state, pf_enabled, esi_enabled, pt_enabled,
			basic_percentage, hra_percentage, created_at, updated_at
		FROM payroll_settings
		WHERE company_id = $1
	`

	var s company.PayrollSettings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.State, &s.PFEnabled, &s.ESIEnabled, &s.PTEnabled,
		&s.BasicPercentage, &s.HRAPercentage, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.PayrollSettings{}, company.ErrSettingsNotFound
		}
		return company.PayrollSettings{}, fmt.Errorf("failed to get payroll settings for company %s: %w", companyID, err)
	}

	return s, nil
}

// UpsertSettings implements company.CompanyRepository.
func (c *companyRepositoryImpl) UpsertSettings(ctx context.Context, settings company.PayrollSettings) (company.PayrollSettings, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO payroll_settings (company_id, state, pf_enabled, esi_enabled, pt_enabled, basic_percentage, hra_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id) DO UPDATE SET
			state = EXCLUDED.state,
			pf_enabled = EXCLUDED.pf_enabled,
			esi_enabled = EXCLUDED.esi_enabled,
			pt_enabled = EXCLUDED.pt_enabled,
			basic_percentage = EXCLUDED.basic_percentage,
			hra_percentage = EXCLUDED.hra_percentage,
			updated_at = NOW()
		RETURNING id, company_id, state, pf_enabled, esi_enabled, pt_enabled,
			basic_percentage, hra_percentage, created_at, updated_at
	`

	var s company.PayrollSettings
	err := q.QueryRow(ctx, query,
		settings.CompanyID, settings.State,
		settings.PFEnabled, settings.ESIEnabled, settings.PTEnabled,
		settings.BasicPercentage, settings.HRAPercentage,
	).Scan(
		&s.ID, &s.CompanyID, &s.State, &s.PFEnabled, &s.ESIEnabled, &s.PTEnabled,
		&s.BasicPercentage, &s.HRAPercentage, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return company.PayrollSettings{}, fmt.Errorf("failed to upsert payroll settings for company %s: %w", settings.CompanyID, err)
	}

	return s, nil
}
