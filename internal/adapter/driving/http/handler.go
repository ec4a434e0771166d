// Package httphandler is the HTTP driving adapter that serves the vault's JSON API.
package httphandler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/passvault/internal/application"
	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// MasterPasswordHeader carries the master password for gated endpoints. It is
// preferred over the query parameter, which may end up in proxy logs.
const MasterPasswordHeader = "X-Master-Password"

const masterPasswordParam = "master_password"

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	auth       *application.AuthService
	categories *application.CategoryService
	secrets    *application.SecretService
	generator  *application.PasswordGenerator
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	auth *application.AuthService,
	categories *application.CategoryService,
	secrets *application.SecretService,
	generator *application.PasswordGenerator,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		auth:       auth,
		categories: categories,
		secrets:    secrets,
		generator:  generator,
		logger:     logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with request id, CORS, logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/setup", h.SetupPassphrase)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /categories", h.CreateCategory)
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("POST /passwords", h.CreateSecret)
	mux.HandleFunc("GET /passwords", h.ListSecrets)
	mux.HandleFunc("DELETE /passwords/{id}", h.DeleteSecret)
	mux.HandleFunc("GET /generate-password", h.GeneratePassword)
	mux.HandleFunc("GET /health", h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = corsMiddleware(allowedOrigins, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// SetupPassphrase stores the master password if none is set yet.
func (h *Handler) SetupPassphrase(w http.ResponseWriter, r *http.Request) {
	var req MasterPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MasterPassword == nil {
		writeError(w, http.StatusBadRequest, "master_password is required")
		return
	}

	if err := h.auth.Setup(r.Context(), *req.MasterPassword); err != nil {
		h.writeServiceError(w, r, "setup master password", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Master password set successfully"})
}

// Login checks a candidate master password.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req MasterPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MasterPassword == nil {
		writeError(w, http.StatusBadRequest, "master_password is required")
		return
	}

	if err := h.auth.Login(r.Context(), *req.MasterPassword); err != nil {
		h.writeServiceError(w, r, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Login successful"})
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == nil {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	passphrase, ok := masterPassword(r, req.MasterPassword)
	if !ok {
		writeUnauthorized(w)
		return
	}

	category, err := h.categories.Create(r.Context(), *req.Name, passphrase)
	if err != nil {
		h.writeServiceError(w, r, "create category", err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// ListCategories returns all categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	passphrase, ok := masterPassword(r, nil)
	if !ok {
		writeUnauthorized(w)
		return
	}

	categories, err := h.categories.List(r.Context(), passphrase)
	if err != nil {
		h.writeServiceError(w, r, "list categories", err)
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, toCategoryResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateSecret stores a new secret and echoes it without the master password.
func (h *Handler) CreateSecret(w http.ResponseWriter, r *http.Request) {
	var req CreateSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.Name == nil:
		writeError(w, http.StatusBadRequest, "name is required")
		return
	case req.Email == nil:
		writeError(w, http.StatusBadRequest, "email is required")
		return
	case req.Password == nil:
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}

	passphrase, ok := masterPassword(r, req.MasterPassword)
	if !ok {
		writeUnauthorized(w)
		return
	}

	secret, err := h.secrets.Create(r.Context(), application.NewSecret{
		Name:       *req.Name,
		Email:      *req.Email,
		URL:        req.URL,
		CategoryID: req.CategoryID,
		Password:   *req.Password,
	}, passphrase)
	if err != nil {
		h.writeServiceError(w, r, "create secret", err)
		return
	}

	writeJSON(w, http.StatusOK, toCreatedSecretResponse(secret))
}

// ListSecrets returns every secret with its category name.
func (h *Handler) ListSecrets(w http.ResponseWriter, r *http.Request) {
	passphrase, ok := masterPassword(r, nil)
	if !ok {
		writeUnauthorized(w)
		return
	}

	secrets, err := h.secrets.List(r.Context(), passphrase)
	if err != nil {
		h.writeServiceError(w, r, "list secrets", err)
		return
	}

	resp := make([]SecretResponse, 0, len(secrets))
	for _, s := range secrets {
		resp = append(resp, toSecretResponse(s))
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeleteSecret removes a secret by id. Unknown ids still report success.
func (h *Handler) DeleteSecret(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid secret id")
		return
	}

	// The body is optional when the password travels in the header or query.
	var req MasterPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	passphrase, ok := masterPassword(r, req.MasterPassword)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.secrets.Delete(r.Context(), id, passphrase); err != nil {
		h.writeServiceError(w, r, "delete secret", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Password deleted successfully"})
}

// GeneratePassword returns a random password. It is not gated.
func (h *Handler) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	policy, err := parsePasswordPolicy(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	password, err := h.generator.Generate(policy)
	if err != nil {
		h.writeServiceError(w, r, "generate password", err)
		return
	}

	writeJSON(w, http.StatusOK, PasswordResponse{Password: password})
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// writeServiceError maps application and port errors to HTTP status codes.
// Anything unrecognized is logged and reported as a 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, application.ErrUnauthorized):
		writeUnauthorized(w)
	case errors.Is(err, driven.ErrPassphraseAlreadySet):
		writeError(w, http.StatusBadRequest, "Master password already set")
	case errors.Is(err, application.ErrInvalidPasswordLength):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed",
			"op", op,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Invalid master password")
}

// masterPassword resolves the candidate master password from the header, the
// query string, or the request body, in that order. ok is false when the
// request carries none of them.
func masterPassword(r *http.Request, fromBody *string) (string, bool) {
	if values := r.Header.Values(MasterPasswordHeader); len(values) > 0 {
		return values[0], true
	}
	if query := r.URL.Query(); query.Has(masterPasswordParam) {
		return query.Get(masterPasswordParam), true
	}
	if fromBody != nil {
		return *fromBody, true
	}
	return "", false
}

// parsePasswordPolicy reads generator options from the query string, falling
// back to model.DefaultPasswordPolicy for absent parameters.
func parsePasswordPolicy(r *http.Request) (model.PasswordPolicy, error) {
	policy := model.DefaultPasswordPolicy()
	query := r.URL.Query()

	if v := query.Get("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return policy, errors.New("length must be an integer")
		}
		policy.Length = n
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"include_uppercase", &policy.IncludeUppercase},
		{"include_numbers", &policy.IncludeNumbers},
		{"include_symbols", &policy.IncludeSymbols},
	}
	for _, f := range flags {
		v := query.Get(f.name)
		if v == "" {
			continue
		}
		b, ok := parseBool(v)
		if !ok {
			return policy, errors.New(f.name + " must be a boolean")
		}
		*f.dst = b
	}

	return policy, nil
}

// parseBool accepts strconv.ParseBool forms plus yes/no and on/off.
func parseBool(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
