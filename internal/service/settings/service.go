package settings

import (
	"context"

	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	profile   settings.CompanyProfileRepository
	financial settings.FinancialSettingsRepository
}

func NewSettingsService(
	profileRepo settings.CompanyProfileRepository,
	financialRepo settings.FinancialSettingsRepository,
) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		profile:   profileRepo,
		financial: financialRepo,
	}
}

func (s *SettingsServiceImpl) GetCompanyProfile(ctx context.Context) (*settings.CompanyProfile, error) {
	return s.profile.Get(ctx)
}

func (s *SettingsServiceImpl) UpsertCompanyProfile(ctx context.Context, req settings.UpsertCompanyProfileRequest) (*settings.CompanyProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile := &settings.CompanyProfile{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		LogoURL:     req.LogoURL,
	}
	if err := s.profile.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *SettingsServiceImpl) GetFinancialSettings(ctx context.Context) (*settings.FinancialSettings, error) {
	return s.financial.Get(ctx)
}

func (s *SettingsServiceImpl) UpsertFinancialSettings(ctx context.Context, req settings.UpsertFinancialSettingsRequest) (*settings.FinancialSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fs := &settings.FinancialSettings{
		CurrencyCode:        req.CurrencyCode,
		FinancialYearStart:  req.FinancialYearStart,
		InvoiceNumberPrefix: req.InvoiceNumberPrefix,
	}
	if err := s.financial.Upsert(ctx, fs); err != nil {
		return nil, err
	}
	return fs, nil
}
