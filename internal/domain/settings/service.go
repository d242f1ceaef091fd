package settings

import (
	"context"
)

// SettingsService manages the company profile and financial settings
// singletons.
type SettingsService interface {
	GetCompanyProfile(ctx context.Context) (*CompanyProfile, error)
	UpsertCompanyProfile(ctx context.Context, req UpsertCompanyProfileRequest) (*CompanyProfile, error)
	GetFinancialSettings(ctx context.Context) (*FinancialSettings, error)
	UpsertFinancialSettings(ctx context.Context, req UpsertFinancialSettingsRequest) (*FinancialSettings, error)
}
