package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/reconciliation"
	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
)

type ReconciliationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type reconciliationHandlerImpl struct {
	reconciliationService reconciliation.ReconciliationService
}

func NewReconciliationHandler(reconciliationService reconciliation.ReconciliationService) ReconciliationHandler {
	return &reconciliationHandlerImpl{reconciliationService: reconciliationService}
}

func (h *reconciliationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req reconciliation.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateReconciliation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Portal users can only file for themselves.
	if employeeID := getEmployeeIDFromContext(r); employeeID != "" {
		req.EmployeeID = employeeID
	}

	request, err := h.reconciliationService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reconciliation request submitted", request)
}

func (h *reconciliationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	request, err := h.reconciliationService.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

func (h *reconciliationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := reconciliation.RequestFilter{
		EmployeeID: getStringQueryParam(r, "employee_id"),
		Kind:       getStringQueryParam(r, "kind"),
		Status:     getStringQueryParam(r, "status"),
		FromDate:   getDateQueryParam(r, "from_date"),
		ToDate:     getDateQueryParam(r, "to_date"),
		Page:       getIntQueryParam(r, "page", 1),
		Limit:      getIntQueryParam(r, "limit", 20),
	}

	if employeeID := getEmployeeIDFromContext(r); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	requests, total, err := h.reconciliationService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, requests, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *reconciliationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

func (h *reconciliationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *reconciliationHandlerImpl) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	var req reconciliation.DecideRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideReconciliation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	request, err := h.reconciliationService.DecideRequest(r.Context(), req, approve, getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reconciliation request decided", request)
}
