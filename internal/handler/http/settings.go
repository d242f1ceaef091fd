package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetCompanyProfile(w http.ResponseWriter, r *http.Request)
	UpsertCompanyProfile(w http.ResponseWriter, r *http.Request)
	GetFinancialSettings(w http.ResponseWriter, r *http.Request)
	UpsertFinancialSettings(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

func (h *settingsHandlerImpl) GetCompanyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.settingsService.GetCompanyProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

func (h *settingsHandlerImpl) UpsertCompanyProfile(w http.ResponseWriter, r *http.Request) {
	var req settings.UpsertCompanyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertCompanyProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.settingsService.UpsertCompanyProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company profile saved", profile)
}

func (h *settingsHandlerImpl) GetFinancialSettings(w http.ResponseWriter, r *http.Request) {
	financial, err := h.settingsService.GetFinancialSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, financial)
}

func (h *settingsHandlerImpl) UpsertFinancialSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.UpsertFinancialSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertFinancialSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	financial, err := h.settingsService.UpsertFinancialSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Financial settings saved", financial)
}
