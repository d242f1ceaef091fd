package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

// Both settings tables hold at most one row, keyed by a fixed singleton id.

type companyProfileRepositoryImpl struct {
	db *database.DB
}

func NewCompanyProfileRepository(db *database.DB) settings.CompanyProfileRepository {
	return &companyProfileRepositoryImpl{db: db}
}

func (r *companyProfileRepositoryImpl) Get(ctx context.Context) (*settings.CompanyProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_name, address, phone_number, email, logo_url, updated_at
		FROM company_profile
		LIMIT 1
	`

	var p settings.CompanyProfile
	err := q.QueryRow(ctx, query).Scan(
		&p.ID, &p.CompanyName, &p.Address, &p.PhoneNumber, &p.Email, &p.LogoURL, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, settings.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}

	return &p, nil
}

func (r *companyProfileRepositoryImpl) Upsert(ctx context.Context, profile *settings.CompanyProfile) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_profile (id, company_name, address, phone_number, email, logo_url, updated_at)
		VALUES ('singleton', $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			company_name = EXCLUDED.company_name,
			address = EXCLUDED.address,
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email,
			logo_url = EXCLUDED.logo_url,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		profile.CompanyName, profile.Address, profile.PhoneNumber, profile.Email, profile.LogoURL,
	).Scan(&profile.ID, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert company profile: %w", err)
	}

	return nil
}

type financialSettingsRepositoryImpl struct {
	db *database.DB
}

func NewFinancialSettingsRepository(db *database.DB) settings.FinancialSettingsRepository {
	return &financialSettingsRepositoryImpl{db: db}
}

func (r *financialSettingsRepositoryImpl) Get(ctx context.Context) (*settings.FinancialSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, currency_code, financial_year_start, invoice_number_prefix, updated_at
		FROM financial_settings
		LIMIT 1
	`

	var s settings.FinancialSettings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.CurrencyCode, &s.FinancialYearStart, &s.InvoiceNumberPrefix, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, settings.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get financial settings: %w", err)
	}

	return &s, nil
}

func (r *financialSettingsRepositoryImpl) Upsert(ctx context.Context, s *settings.FinancialSettings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO financial_settings (id, currency_code, financial_year_start, invoice_number_prefix, updated_at)
		VALUES ('singleton', $1, $2, $3, NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			currency_code = EXCLUDED.currency_code,
			financial_year_start = EXCLUDED.financial_year_start,
			invoice_number_prefix = EXCLUDED.invoice_number_prefix,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.CurrencyCode, s.FinancialYearStart, s.InvoiceNumberPrefix,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert financial settings: %w", err)
	}

	return nil
}
