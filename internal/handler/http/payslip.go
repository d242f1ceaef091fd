package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/payslip"
	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

func (h *payslipHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payslip.CreatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.payslipService.CreatePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip created successfully", p)
}

func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.payslipService.GetPayslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payslip.PayslipFilter{
		EmployeeID: getStringQueryParam(r, "employee_id"),
		Status:     getStringQueryParam(r, "status"),
		Page:       getIntQueryParam(r, "page", 1),
		Limit:      getIntQueryParam(r, "limit", 20),
	}
	if month := getIntQueryParam(r, "period_month", 0); month > 0 {
		filter.PeriodMonth = &month
	}
	if year := getIntQueryParam(r, "period_year", 0); year > 0 {
		filter.PeriodYear = &year
	}

	// Portal users only see their own payslips.
	if employeeID := getEmployeeIDFromContext(r); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	payslips, total, err := h.payslipService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, payslips, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *payslipHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	var req payslip.PayPayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PayPayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PayslipID = chi.URLParam(r, "id")

	p, err := h.payslipService.PayPayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip paid successfully", p)
}

// Delete removes a payslip and reverses its petty cash ledger entry, if any.
func (h *payslipHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.payslipService.DeletePayslip(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted", nil)
}

func (h *payslipHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdfBytes, err := h.payslipService.RenderPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
