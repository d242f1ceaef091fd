package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/inventory"
	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
	inventoryService "github.com/meridian-erp/erp-backend-go/internal/service/inventory"
)

type InventoryHandler interface {
	CreateFactory(w http.ResponseWriter, r *http.Request)
	ListFactories(w http.ResponseWriter, r *http.Request)
	DeleteFactory(w http.ResponseWriter, r *http.Request)

	CreateMachine(w http.ResponseWriter, r *http.Request)
	GetMachine(w http.ResponseWriter, r *http.Request)
	ListMachines(w http.ResponseWriter, r *http.Request)
	UpdateMachine(w http.ResponseWriter, r *http.Request)

	IssueChallan(w http.ResponseWriter, r *http.Request)
	ReturnChallan(w http.ResponseWriter, r *http.Request)
	ListChallans(w http.ResponseWriter, r *http.Request)

	ExpiringWarranties(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventorySvc inventory.InventoryService
}

func NewInventoryHandler(inventorySvc inventory.InventoryService) InventoryHandler {
	return &inventoryHandlerImpl{inventorySvc: inventorySvc}
}

func (h *inventoryHandlerImpl) CreateFactory(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateFactoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateFactory decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	factory, err := h.inventorySvc.CreateFactory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Factory created successfully", factory)
}

func (h *inventoryHandlerImpl) ListFactories(w http.ResponseWriter, r *http.Request) {
	factories, err := h.inventorySvc.ListFactories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, factories)
}

func (h *inventoryHandlerImpl) DeleteFactory(w http.ResponseWriter, r *http.Request) {
	if err := h.inventorySvc.DeleteFactory(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Factory deleted", nil)
}

func (h *inventoryHandlerImpl) CreateMachine(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMachine decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	machine, err := h.inventorySvc.CreateMachine(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Machine created successfully", machine)
}

func (h *inventoryHandlerImpl) GetMachine(w http.ResponseWriter, r *http.Request) {
	machine, err := h.inventorySvc.GetMachine(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, machine)
}

func (h *inventoryHandlerImpl) ListMachines(w http.ResponseWriter, r *http.Request) {
	filter := inventory.MachineFilter{
		Model:     getStringQueryParam(r, "model"),
		FactoryID: getStringQueryParam(r, "factory_id"),
		Status:    getStringQueryParam(r, "status"),
		Page:      getIntQueryParam(r, "page", 1),
		Limit:     getIntQueryParam(r, "limit", 20),
	}

	machines, total, err := h.inventorySvc.ListMachines(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, machines, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *inventoryHandlerImpl) UpdateMachine(w http.ResponseWriter, r *http.Request) {
	var req inventory.UpdateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMachine decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	machine, err := h.inventorySvc.UpdateMachine(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Machine updated successfully", machine)
}

func (h *inventoryHandlerImpl) IssueChallan(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateChallanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("IssueChallan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	challan, err := h.inventorySvc.IssueChallan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Challan issued", challan)
}

func (h *inventoryHandlerImpl) ReturnChallan(w http.ResponseWriter, r *http.Request) {
	challan, err := h.inventorySvc.ReturnChallan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Machine returned", challan)
}

func (h *inventoryHandlerImpl) ListChallans(w http.ResponseWriter, r *http.Request) {
	filter := inventory.ChallanFilter{
		MachineID:    getStringQueryParam(r, "machine_id"),
		CustomerName: getStringQueryParam(r, "customer_name"),
		Status:       getStringQueryParam(r, "status"),
		Page:         getIntQueryParam(r, "page", 1),
		Limit:        getIntQueryParam(r, "limit", 20),
	}

	challans, total, err := h.inventorySvc.ListChallans(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, challans, response.NewMeta(filter.Page, filter.Limit, total))
}

// ExpiringWarranties lists machines whose warranty runs out inside the given
// horizon (days, default 30).
func (h *inventoryHandlerImpl) ExpiringWarranties(w http.ResponseWriter, r *http.Request) {
	horizon := inventoryService.WarrantyHorizon
	if days := getIntQueryParam(r, "days", 0); days > 0 {
		horizon = time.Duration(days) * 24 * time.Hour
	}

	expiring, err := h.inventorySvc.ExpiringWarranties(r.Context(), horizon)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expiring)
}
