package http

import (
	"net/http"

	"github.com/edusuite/institute-backend-go/internal/domain/finance"
	"github.com/edusuite/institute-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

func (h *financeHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		response.BadRequest(w, "period is required", nil)
		return
	}

	result, err := h.financeService.GetOverview(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
