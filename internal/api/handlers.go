package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/nahid-013/alkoteka-scraper/internal/database"
)

type Handlers struct {
	store  *database.Store
	logger *slog.Logger
}

func NewHandlers(store *database.Store, logger *slog.Logger) *Handlers {
	return &Handlers{
		store:  store,
		logger: logger.With("component", "api"),
	}
}

func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/healthz", h.Health)
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{rpc}", h.GetProduct)
	})

	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := h.store.ListRecords(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list records", "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to list records")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(records),
		"products": records,
	})
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	rpc := chi.URLParam(r, "rpc")

	record, err := h.store.GetRecord(r.Context(), rpc)
	if errors.Is(err, database.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get record", "rpc", rpc, "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to get record")
		return
	}

	h.respondJSON(w, http.StatusOK, record)
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
