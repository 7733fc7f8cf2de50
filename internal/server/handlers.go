package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/Rhysnute92/fitlog/internal/nutrition"
)

type analyzeMealRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyzeMeal(w http.ResponseWriter, r *http.Request) {
	var req analyzeMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ImageBase64 == "" {
		writeError(w, http.StatusBadRequest, "imageBase64 is required")
		return
	}

	estimate, err := s.analyzer.AnalyzeMeal(r.Context(), req.ImageBase64)
	if err != nil {
		log.WithError(err).Error("meal analysis failed")
		writeError(w, http.StatusInternalServerError, "AI analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, estimate)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	barcode := mux.Vars(r)["barcode"]

	product, err := s.lookup.ProductByBarcode(r.Context(), barcode)
	if errors.Is(err, nutrition.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		log.WithError(err).WithField("barcode", barcode).Error("product lookup failed")
		writeError(w, http.StatusBadGateway, "product lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
