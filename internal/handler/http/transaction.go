package http

import (
	"encoding/json"
	"net/http"

	"github.com/edusuite/institute-backend-go/internal/domain/transaction"
	"github.com/edusuite/institute-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TransactionHandler interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type transactionHandlerImpl struct {
	transactionService transaction.TransactionService
}

func NewTransactionHandler(transactionService transaction.TransactionService) TransactionHandler {
	return &transactionHandlerImpl{transactionService: transactionService}
}

func (h *transactionHandlerImpl) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transaction.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction created", result)
}

func (h *transactionHandlerImpl) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Transaction ID is required", nil)
		return
	}

	if err := h.transactionService.DeleteTransaction(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction deleted successfully", nil)
}

func (h *transactionHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var filter transaction.TransactionFilter

	if period := r.URL.Query().Get("period"); period != "" {
		filter.Period = &period
	}
	if typ := r.URL.Query().Get("type"); typ != "" {
		filter.Type = &typ
	}

	result, err := h.transactionService.ListTransactions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *transactionHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	result, err := h.transactionService.GetStats(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
