package http

import (
	"net/http"

	"github.com/mpancino/myAssetPlace-sub004/internal/calculator"
	"github.com/mpancino/myAssetPlace-sub004/internal/models"
	"github.com/mpancino/myAssetPlace-sub004/internal/service"
)

// ExpenseHandler exposes recurring-expense CRUD.
type ExpenseHandler struct {
	service *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(service *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

type expenseRequest struct {
	AssetID   string  `json:"assetId"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

type expenseResponse struct {
	ID           string  `json:"id"`
	AssetID      string  `json:"assetId,omitempty"`
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
	Frequency    string  `json:"frequency"`
	AnnualAmount float64 `json:"annualAmount"`
	CreatedAt    int64   `json:"createdAt"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		AssetID:      e.AssetID,
		Category:     e.Category,
		Amount:       e.Amount,
		Frequency:    string(e.Frequency),
		AnnualAmount: e.AnnualAmount(),
		CreatedAt:    e.CreatedAt,
	}
}

// Create handles POST /api/v1/expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	expense := &models.Expense{
		AssetID:   req.AssetID,
		Category:  req.Category,
		Amount:    req.Amount,
		Frequency: calculator.Frequency(req.Frequency),
	}
	if err := h.service.Create(r.Context(), userIDFrom(r), expense); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

// List handles GET /api/v1/expenses.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]expenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

// Delete handles DELETE /api/v1/expenses/{id}.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), userIDFrom(r), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
