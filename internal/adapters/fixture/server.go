package fixture

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	User    *domain.Session `json:"user,omitempty"`
}

// NewRouter serves the DCMS mobile endpoints from data.
func NewRouter(data Dataset, logger *log.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if logger != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	}

	r.Route("/Mobile", func(api chi.Router) {
		api.Post("/Login", func(w http.ResponseWriter, r *http.Request) {
			var req loginRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondJSON(w, http.StatusBadRequest, loginResponse{Message: "malformed login request"})
				return
			}

			account, ok := data.account(strings.TrimSpace(req.Username), req.Password)
			if !ok {
				respondJSON(w, http.StatusOK, loginResponse{Message: "username or password is incorrect"})
				return
			}

			session := account.Session
			respondJSON(w, http.StatusOK, loginResponse{Success: true, User: &session})
		})

		api.Get("/GetData", func(w http.ResponseWriter, r *http.Request) {
			raw := r.URL.Query().Get("userId")
			if raw == "" {
				respondJSON(w, http.StatusOK, data.bundleFor(nil))
				return
			}

			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				respondJSON(w, http.StatusBadRequest, map[string]string{"message": "userId must be numeric"})
				return
			}

			session, ok := data.session(domain.UserID(id))
			if !ok {
				respondJSON(w, http.StatusNotFound, map[string]string{"message": "user not found"})
				return
			}

			respondJSON(w, http.StatusOK, data.bundleFor(&session))
		})
	})

	return r
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[fixture] failed to encode response: %v", err)
	}
}
