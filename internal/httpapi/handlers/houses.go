package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/userhabitat/internal/httpapi/respond"
	"github.com/dropDatabas3/userhabitat/internal/repository"
)

// HousesHandler serves the /users/{id}/houses routes.
type HousesHandler struct {
	repo *repository.Houses
}

func NewHousesHandler(repo *repository.Houses) *HousesHandler {
	return &HousesHandler{repo: repo}
}

// Register mounts the house routes on the router.
func (h *HousesHandler) Register(r chi.Router) {
	r.Get("/users/{id}/houses", h.List)
	r.Post("/users/{id}/houses", h.Create)
	r.Put("/users/{id}/houses/{houseId}", h.Replace)
	r.Patch("/users/{id}/houses/{houseId}", h.Patch)
	r.Delete("/users/{id}/houses/{houseId}", h.Delete)
}

// List handles GET /users/{id}/houses with optional city/address/country
// query filters, combined with AND.
func (h *HousesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.Filter{
		City:    q.Get("city"),
		Address: q.Get("address"),
		Country: q.Get("country"),
	}

	houses, err := h.repo.ListForOwner(r.Context(), chi.URLParam(r, "id"), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, houses)
}

// Create handles POST /users/{id}/houses.
func (h *HousesHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	house, err := h.repo.Create(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, house)
}

// Replace handles PUT /users/{id}/houses/{houseId}.
func (h *HousesHandler) Replace(w http.ResponseWriter, r *http.Request) {
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	house, err := h.repo.Replace(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "houseId"), fields)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, house)
}

// Patch handles PATCH /users/{id}/houses/{houseId}.
func (h *HousesHandler) Patch(w http.ResponseWriter, r *http.Request) {
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	house, err := h.repo.Patch(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "houseId"), fields)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, house)
}

// Delete handles DELETE /users/{id}/houses/{houseId}.
func (h *HousesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "houseId")); err != nil {
		respond.Error(w, err)
		return
	}
	respond.NoContent(w)
}
