package enhance

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// Handler - HTTP surface of prompt enhancement
type Handler struct {
	enhancer Enhancer
}

// NewHandler - wire the enhance endpoint
func NewHandler(enhancer Enhancer) *Handler {
	return &Handler{enhancer: enhancer}
}

// RegisterRoutes - mount the enhance endpoint on the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/prompts/enhance", h.EnhancePrompt).Methods("POST")
}

type enhanceRequest struct {
	Prompt string `json:"prompt"`
}

type enhanceResponse struct {
	Prompt   string `json:"prompt"`
	Enhanced string `json:"enhanced"`
}

// EnhancePrompt handles prompt enhancement requests
func (h *Handler) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		http.Error(w, "Missing prompt", http.StatusBadRequest)
		return
	}

	enhanced, err := h.enhancer.Enhance(r.Context(), prompt)
	if err != nil {
		http.Error(w, "Failed to enhance prompt: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(enhanceResponse{
		Prompt:   prompt,
		Enhanced: enhanced,
	})
}
