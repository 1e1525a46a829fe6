package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"travelmap-service/internal/domain/entity"
	"travelmap-service/internal/usecase"
	"travelmap-service/pkg/logger"
)

// Attribution string for the basemap tile provider, required by its terms.
const tileAttribution = "© OpenStreetMap contributors © CARTO"

// Handler serves the dashboard JSON API.
type Handler struct {
	mapBuilder *usecase.MapBuilder
	stats      *usecase.StatsAggregator
	lister     *usecase.FlightLister
	logger     logger.Logger
}

// NewHandler creates a new REST handler
func NewHandler(
	mapBuilder *usecase.MapBuilder,
	stats *usecase.StatsAggregator,
	lister *usecase.FlightLister,
	logger logger.Logger,
) *Handler {
	return &Handler{
		mapBuilder: mapBuilder,
		stats:      stats,
		lister:     lister,
		logger:     logger,
	}
}

// Register mounts the API routes on a mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/map", h.handleMap)
	mux.HandleFunc("/api/stats", h.handleStats)
	mux.HandleFunc("/api/flights", h.handleFlights)
}

type mapResponse struct {
	*entity.TravelMap
	Attribution string `json:"attribution"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleMap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	travelMap, err := h.mapBuilder.Build(r.Context())
	if err != nil {
		h.writeFailure(w, "map", err)
		return
	}
	writeJSON(w, http.StatusOK, mapResponse{TravelMap: travelMap, Attribution: tileAttribution})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats, err := h.stats.Build(r.Context())
	if err != nil {
		h.writeFailure(w, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleFlights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Malformed or missing page numbers fall back to the first page; the
	// lister clamps out-of-range values.
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	flightPage, err := h.lister.List(r.Context(), page)
	if err != nil {
		h.writeFailure(w, "flights", err)
		return
	}
	writeJSON(w, http.StatusOK, flightPage)
}

// writeFailure maps the error taxonomy to status codes: an empty flight
// table gets its own message, anything else is a backend failure. No retry
// is attempted either way.
func (h *Handler) writeFailure(w http.ResponseWriter, view string, err error) {
	if errors.Is(err, entity.ErrNoFlights) {
		writeError(w, http.StatusNotFound, entity.ErrNoFlights.Error())
		return
	}
	h.logger.Error("View derivation failed", "view", view, "error", err)
	writeError(w, http.StatusBadGateway, "flight data is unavailable")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
