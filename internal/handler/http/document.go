package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/document"
	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
)

type DocumentHandler interface {
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	SetInvoiceStatus(w http.ResponseWriter, r *http.Request)

	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	SetOrderStatus(w http.ResponseWriter, r *http.Request)

	CreateDeliveryChallan(w http.ResponseWriter, r *http.Request)
	GetDeliveryChallan(w http.ResponseWriter, r *http.Request)
	ListDeliveryChallans(w http.ResponseWriter, r *http.Request)
	MarkChallanDelivered(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *documentHandlerImpl) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req document.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateInvoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	invoice, err := h.documentService.CreateInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created successfully", invoice)
}

func (h *documentHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.documentService.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invoice)
}

func (h *documentHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	filter := document.InvoiceFilter{
		CustomerName: getStringQueryParam(r, "customer_name"),
		Status:       getStringQueryParam(r, "status"),
		FromDate:     getDateQueryParam(r, "from_date"),
		ToDate:       getDateQueryParam(r, "to_date"),
		Page:         getIntQueryParam(r, "page", 1),
		Limit:        getIntQueryParam(r, "limit", 20),
	}

	invoices, total, err := h.documentService.ListInvoices(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, invoices, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *documentHandlerImpl) SetInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetInvoiceStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	invoice, err := h.documentService.SetInvoiceStatus(r.Context(), chi.URLParam(r, "id"), document.InvoiceStatus(req.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice status updated", invoice)
}

func (h *documentHandlerImpl) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req document.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOrder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	order, err := h.documentService.CreateOrder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created successfully", order)
}

func (h *documentHandlerImpl) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.documentService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, order)
}

func (h *documentHandlerImpl) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := document.OrderFilter{
		CustomerName: getStringQueryParam(r, "customer_name"),
		Status:       getStringQueryParam(r, "status"),
		Page:         getIntQueryParam(r, "page", 1),
		Limit:        getIntQueryParam(r, "limit", 20),
	}

	orders, total, err := h.documentService.ListOrders(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, orders, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *documentHandlerImpl) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetOrderStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	order, err := h.documentService.SetOrderStatus(r.Context(), chi.URLParam(r, "id"), document.OrderStatus(req.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order status updated", order)
}

func (h *documentHandlerImpl) CreateDeliveryChallan(w http.ResponseWriter, r *http.Request) {
	var req document.CreateDeliveryChallanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDeliveryChallan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	challan, err := h.documentService.CreateDeliveryChallan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Delivery challan created successfully", challan)
}

func (h *documentHandlerImpl) GetDeliveryChallan(w http.ResponseWriter, r *http.Request) {
	challan, err := h.documentService.GetDeliveryChallan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, challan)
}

func (h *documentHandlerImpl) ListDeliveryChallans(w http.ResponseWriter, r *http.Request) {
	filter := document.ChallanFilter{
		CustomerName: getStringQueryParam(r, "customer_name"),
		Status:       getStringQueryParam(r, "status"),
		Page:         getIntQueryParam(r, "page", 1),
		Limit:        getIntQueryParam(r, "limit", 20),
	}

	challans, total, err := h.documentService.ListDeliveryChallans(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, challans, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *documentHandlerImpl) MarkChallanDelivered(w http.ResponseWriter, r *http.Request) {
	challan, err := h.documentService.MarkChallanDelivered(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Delivery challan marked delivered", challan)
}
