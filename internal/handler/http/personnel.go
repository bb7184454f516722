package http

import (
	"encoding/json"
	"net/http"

	"github.com/edusuite/institute-backend-go/internal/domain/personnel"
	"github.com/edusuite/institute-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PersonnelHandler interface {
	CreatePersonnel(w http.ResponseWriter, r *http.Request)
	GetPersonnel(w http.ResponseWriter, r *http.Request)
	ListPersonnel(w http.ResponseWriter, r *http.Request)
}

type personnelHandlerImpl struct {
	personnelService personnel.PersonnelService
}

func NewPersonnelHandler(personnelService personnel.PersonnelService) PersonnelHandler {
	return &personnelHandlerImpl{personnelService: personnelService}
}

func (h *personnelHandlerImpl) CreatePersonnel(w http.ResponseWriter, r *http.Request) {
	var req personnel.CreatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.personnelService.CreatePersonnel(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Personnel created", result)
}

func (h *personnelHandlerImpl) GetPersonnel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	result, err := h.personnelService.GetPersonnel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *personnelHandlerImpl) ListPersonnel(w http.ResponseWriter, r *http.Request) {
	result, err := h.personnelService.ListPersonnel(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
