package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/userhabitat/internal/httpapi/respond"
	"github.com/dropDatabas3/userhabitat/internal/repository"
)

// UsersHandler serves the /users routes.
type UsersHandler struct {
	repo *repository.Users
}

func NewUsersHandler(repo *repository.Users) *UsersHandler {
	return &UsersHandler{repo: repo}
}

// Register mounts the user routes on the router.
func (h *UsersHandler) Register(r chi.Router) {
	r.Get("/users", h.List)
	r.Post("/users", h.Create)
	r.Get("/users/{id}", h.Get)
	r.Put("/users/{id}", h.Replace)
	r.Patch("/users/{id}", h.Patch)
	r.Delete("/users/{id}", h.Delete)
}

// List handles GET /users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

// Create handles POST /users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	user, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, user)
}

// Get handles GET /users/{id}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

// Replace handles PUT /users/{id}.
func (h *UsersHandler) Replace(w http.ResponseWriter, r *http.Request) {
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	user, err := h.repo.Replace(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

// Patch handles PATCH /users/{id}.
func (h *UsersHandler) Patch(w http.ResponseWriter, r *http.Request) {
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	user, err := h.repo.Patch(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}
	respond.NoContent(w)
}
