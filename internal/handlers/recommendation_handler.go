package handlers

import (
	"encoding/json"
	"net/http"

	"imovelBack/internal/models"
	"imovelBack/internal/services"
)

type RecommendationHandler struct {
	Service *services.RecommendationService
}

// Recommend handles POST /api/ai/recommendations. Authentication is optional;
// a logged in caller gets history-based preferences merged in.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if uid := userID(r); uid != "" {
		req.UserID = uid
	}

	result, err := h.Service.Recommend(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *RecommendationHandler) MarketAnalysis(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing property id")
		return
	}

	result, err := h.Service.AnalyzeMarket(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
