package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)

	CreateGroup(w http.ResponseWriter, r *http.Request)
	GetGroup(w http.ResponseWriter, r *http.Request)
	ListGroups(w http.ResponseWriter, r *http.Request)
	UpdateGroup(w http.ResponseWriter, r *http.Request)
	DeleteGroup(w http.ResponseWriter, r *http.Request)

	CreateApplication(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	UpdateApplication(w http.ResponseWriter, r *http.Request)
	ApproveApplication(w http.ResponseWriter, r *http.Request)
	RejectApplication(w http.ResponseWriter, r *http.Request)
	DeleteApplication(w http.ResponseWriter, r *http.Request)

	Balance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeaveType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveType, err := h.leaveService.CreateLeaveType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", leaveType)
}

func (h *leaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

func (h *leaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.DeleteLeaveType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted", nil)
}

func (h *leaveHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeaveGroup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	group, err := h.leaveService.CreateLeaveGroup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave group created successfully", group)
}

func (h *leaveHandlerImpl) GetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.leaveService.GetLeaveGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, group)
}

func (h *leaveHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.leaveService.ListLeaveGroups(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, groups)
}

func (h *leaveHandlerImpl) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeaveGroup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.leaveService.UpdateLeaveGroup(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave group updated successfully", nil)
}

func (h *leaveHandlerImpl) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.DeleteLeaveGroup(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave group deleted", nil)
}

func (h *leaveHandlerImpl) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateApplication decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Portal users can only file for themselves.
	if employeeID := getEmployeeIDFromContext(r); employeeID != "" {
		req.EmployeeID = employeeID
	}

	app, err := h.leaveService.CreateApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted", app)
}

func (h *leaveHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.leaveService.GetApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, app)
}

func (h *leaveHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	filter := leave.ApplicationFilter{
		EmployeeID: getStringQueryParam(r, "employee_id"),
		LeaveType:  getStringQueryParam(r, "leave_type"),
		Status:     getStringQueryParam(r, "status"),
		FromDate:   getDateQueryParam(r, "from_date"),
		ToDate:     getDateQueryParam(r, "to_date"),
		Page:       getIntQueryParam(r, "page", 1),
		Limit:      getIntQueryParam(r, "limit", 20),
	}

	// Portal users only see their own applications.
	if employeeID := getEmployeeIDFromContext(r); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	apps, total, err := h.leaveService.ListApplications(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, apps, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *leaveHandlerImpl) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateApplication decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	app, err := h.leaveService.UpdateApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application updated", app)
}

func (h *leaveHandlerImpl) ApproveApplication(w http.ResponseWriter, r *http.Request) {
	h.decideApplication(w, r, true)
}

func (h *leaveHandlerImpl) RejectApplication(w http.ResponseWriter, r *http.Request) {
	h.decideApplication(w, r, false)
}

func (h *leaveHandlerImpl) decideApplication(w http.ResponseWriter, r *http.Request, approve bool) {
	var req leave.DecideApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideApplication decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicationID = chi.URLParam(r, "id")

	app, err := h.leaveService.DecideApplication(r.Context(), req, approve, getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application decided", app)
}

func (h *leaveHandlerImpl) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.DeleteApplication(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application deleted", nil)
}

// Balance returns the live remaining-balance readout for an employee and
// leave type at a given date (defaults to today).
func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if selfID := getEmployeeIDFromContext(r); selfID != "" {
		employeeID = selfID
	}
	leaveType := r.URL.Query().Get("leave_type")
	if employeeID == "" || leaveType == "" {
		response.BadRequest(w, "employee_id and leave_type are required", nil)
		return
	}

	at := time.Now()
	if atParam := getDateQueryParam(r, "at"); atParam != nil {
		at = *atParam
	}

	balance, err := h.leaveService.Balance(r.Context(), employeeID, leaveType, at)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
