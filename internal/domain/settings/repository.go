package settings

import "context"

type CompanyProfileRepository interface {
	Get(ctx context.Context) (*CompanyProfile, error)
	Upsert(ctx context.Context, profile *CompanyProfile) error
}

type FinancialSettingsRepository interface {
	Get(ctx context.Context) (*FinancialSettings, error)
	Upsert(ctx context.Context, settings *FinancialSettings) error
}
