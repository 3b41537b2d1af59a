package handler

import (
	"encoding/json"
	"net/http"

	"leo-furniture-api/internal/middleware"
	"leo-furniture-api/internal/service"
	"leo-furniture-api/pkg/apierror"
	"leo-furniture-api/pkg/response"
)

// ExpenseHandler handles expense HTTP requests.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /api/v1/expenses
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	var in service.CreateExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	expense, err := h.expenseService.Create(r.Context(), claims.UserID, in)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, map[string]interface{}{"expense": expense})
}

// ListForItem handles GET /api/v1/items/{id}/expenses
func (h *ExpenseHandler) ListForItem(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	id, err := itemID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	expenses, err := h.expenseService.ListForItem(r.Context(), claims.UserID, id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"expenses": expenses})
}
