// Package httpapi exposes the user collection over HTTP: a JSON CRUD
// API under /api/users, plus the registration form and the HTML user
// listing.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/userbook/internal/common"
	"github.com/dmitrijs2005/userbook/internal/logging"
	"github.com/dmitrijs2005/userbook/internal/server/users"
)

type Handler struct {
	mux    *http.ServeMux
	repo   users.Repository
	logger logging.Logger
}

// NewHandler builds the route table and wraps it with the
// request-logging middleware.
func NewHandler(repo users.Repository, l logging.Logger) http.Handler {
	h := &Handler{
		mux:    http.NewServeMux(),
		repo:   repo,
		logger: l.With("module", "httpapi"),
	}
	h.routes()
	return requestLogger(h.logger, h.mux)
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /register", h.registerForm)
	h.mux.HandleFunc("GET /users", h.usersPage)
	h.mux.HandleFunc("POST /submit-registration", h.submitRegistration)

	h.mux.HandleFunc("GET /api/users", h.listUsers)
	h.mux.HandleFunc("POST /api/users", h.createUser)
	h.mux.HandleFunc("GET /api/users/{id}", h.getUser)
	h.mux.HandleFunc("PATCH /api/users/{id}", h.updateUser)
	h.mux.HandleFunc("DELETE /api/users/{id}", h.deleteUser)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	collection := h.repo.List(r.Context())
	if collection == nil {
		collection = []users.User{}
	}
	writeJSON(w, http.StatusOK, collection)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		h.logger.Error(r.Context(), "create user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "Success", "user": user})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error(r.Context(), "update user failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "Updated", "user": user})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error(r.Context(), "delete user failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "Deleted", "id": id})
}

func (h *Handler) submitRegistration(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	password := r.PostFormValue("password")
	if password != r.PostFormValue("confirmPassword") {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Passwords do not match. Please try again."))
		return
	}

	fields := map[string]any{
		"fullName": r.PostFormValue("fullName"),
		"email":    r.PostFormValue("email"),
		"phone":    r.PostFormValue("phone"),
		"password": password,
	}
	if _, err := h.repo.Create(r.Context(), fields); err != nil {
		h.logger.Error(r.Context(), "registration failed", "error", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/users", http.StatusFound)
}

// parseID reads the {id} path segment. A non-numeric id is treated the
// same as an id that matches no record.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
