package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/passvault/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirms an operation that returns no record.
type MessageResponse struct {
	Message string `json:"message"`
}

// MasterPasswordRequest is the body of setup, login and delete requests.
type MasterPasswordRequest struct {
	MasterPassword *string `json:"master_password"`
}

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name           *string `json:"name"`
	MasterPassword *string `json:"master_password"`
}

// CreateSecretRequest is the body of POST /passwords. Pointer fields
// distinguish a missing field from an empty string.
type CreateSecretRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	URL            *string `json:"url"`
	CategoryID     *int64  `json:"category_id"`
	Password       *string `json:"password"`
	MasterPassword *string `json:"master_password"`
}

// CategoryResponse is the JSON representation of a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreatedSecretResponse echoes a newly stored secret without the master password.
type CreatedSecretResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	URL        *string `json:"url"`
	CategoryID *int64  `json:"category_id"`
	Password   string  `json:"password"`
}

// SecretResponse is the JSON representation of a listed secret.
type SecretResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	URL          *string `json:"url"`
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Password     string  `json:"password"`
	CreatedAt    string  `json:"created_at"`
}

// PasswordResponse carries a generated password.
type PasswordResponse struct {
	Password string `json:"password"`
}

// HealthResponse is the JSON response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func toCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func toCreatedSecretResponse(s model.Secret) CreatedSecretResponse {
	return CreatedSecretResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		URL:        s.URL,
		CategoryID: s.CategoryID,
		Password:   s.Password,
	}
}

func toSecretResponse(v model.SecretView) SecretResponse {
	return SecretResponse{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		URL:          v.URL,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
		Password:     v.Password,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
