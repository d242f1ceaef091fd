package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/pettycash"
	"github.com/meridian-erp/erp-backend-go/internal/handler/http/response"
)

type PettyCashHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	RecordTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type pettyCashHandlerImpl struct {
	pettyCashService pettycash.PettyCashService
}

func NewPettyCashHandler(pettyCashService pettycash.PettyCashService) PettyCashHandler {
	return &pettyCashHandlerImpl{pettyCashService: pettyCashService}
}

func (h *pettyCashHandlerImpl) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req pettycash.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAccount decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	account, err := h.pettyCashService.CreateAccount(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created successfully", account)
}

func (h *pettyCashHandlerImpl) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.pettyCashService.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, account)
}

func (h *pettyCashHandlerImpl) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.pettyCashService.ListAccounts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, accounts)
}

func (h *pettyCashHandlerImpl) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req pettycash.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordTransaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AccountID = chi.URLParam(r, "id")

	tx, err := h.pettyCashService.RecordTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", tx)
}

func (h *pettyCashHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)

	transactions, total, err := h.pettyCashService.ListTransactions(r.Context(), chi.URLParam(r, "id"), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, transactions, response.NewMeta(page, limit, total))
}
