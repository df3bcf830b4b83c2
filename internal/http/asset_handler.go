package http

import (
	"net/http"

	"github.com/mpancino/myAssetPlace-sub004/internal/models"
	"github.com/mpancino/myAssetPlace-sub004/internal/service"
)

// AssetHandler exposes asset CRUD and loan attachment.
type AssetHandler struct {
	service *service.AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(service *service.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

type assetRequest struct {
	Name        string  `json:"name"`
	Class       string  `json:"class"`
	Value       float64 `json:"value"`
	GrowthRate  float64 `json:"growthRate"`
	IncomeYield float64 `json:"incomeYield"`
	Liability   bool    `json:"liability"`
	StartDate   int64   `json:"startDate"`
}

type assetResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Class       string  `json:"class"`
	Value       float64 `json:"value"`
	GrowthRate  float64 `json:"growthRate"`
	IncomeYield float64 `json:"incomeYield"`
	Liability   bool    `json:"liability"`
	StartDate   int64   `json:"startDate"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

func toAssetResponse(a *models.Asset) assetResponse {
	return assetResponse{
		ID:          a.ID,
		Name:        a.Name,
		Class:       a.Class,
		Value:       a.Value,
		GrowthRate:  a.GrowthRate,
		IncomeYield: a.IncomeYield,
		Liability:   a.Liability,
		StartDate:   a.StartDate,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// Create handles POST /api/v1/assets.
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	asset := &models.Asset{
		Name:        req.Name,
		Class:       req.Class,
		Value:       req.Value,
		GrowthRate:  req.GrowthRate,
		IncomeYield: req.IncomeYield,
		Liability:   req.Liability,
		StartDate:   req.StartDate,
	}
	if err := h.service.Create(r.Context(), userIDFrom(r), asset); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAssetResponse(asset))
}

// List handles GET /api/v1/assets.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.service.List(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]assetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, toAssetResponse(&assets[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

// Get handles GET /api/v1/assets/{id}.
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	asset, err := h.service.Get(r.Context(), userIDFrom(r), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetResponse(asset))
}

// Update handles PUT /api/v1/assets/{id}.
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	asset, err := h.service.Update(r.Context(), userIDFrom(r), &models.Asset{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Class:       req.Class,
		Value:       req.Value,
		GrowthRate:  req.GrowthRate,
		IncomeYield: req.IncomeYield,
		Liability:   req.Liability,
		StartDate:   req.StartDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssetResponse(asset))
}

// Delete handles DELETE /api/v1/assets/{id}.
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), userIDFrom(r), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type loanRequest struct {
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annualRate"`
	TermYears       int     `json:"termYears"`
	PaymentsPerYear int     `json:"paymentsPerYear"`
	StartDate       int64   `json:"startDate"`
}

type loanResponse struct {
	ID              string  `json:"id"`
	AssetID         string  `json:"assetId"`
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annualRate"`
	TermYears       int     `json:"termYears"`
	PaymentsPerYear int     `json:"paymentsPerYear"`
	StartDate       int64   `json:"startDate"`
	CreatedAt       int64   `json:"createdAt"`
}

func toLoanResponse(l *models.Loan) loanResponse {
	return loanResponse{
		ID:              l.ID,
		AssetID:         l.AssetID,
		Principal:       l.Principal,
		AnnualRate:      l.AnnualRate,
		TermYears:       l.TermYears,
		PaymentsPerYear: l.PaymentsPerYear,
		StartDate:       l.StartDate,
		CreatedAt:       l.CreatedAt,
	}
}

// AttachLoan handles PUT /api/v1/assets/{id}/loan.
func (h *AssetHandler) AttachLoan(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	loan := &models.Loan{
		AssetID:         r.PathValue("id"),
		Principal:       req.Principal,
		AnnualRate:      req.AnnualRate,
		TermYears:       req.TermYears,
		PaymentsPerYear: req.PaymentsPerYear,
		StartDate:       req.StartDate,
	}
	if err := h.service.AttachLoan(r.Context(), userIDFrom(r), loan); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLoanResponse(loan))
}

// DetachLoan handles DELETE /api/v1/assets/{id}/loan.
func (h *AssetHandler) DetachLoan(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DetachLoan(r.Context(), userIDFrom(r), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
