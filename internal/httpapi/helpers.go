package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"trivia-app/internal/trivia"
)

const (
	messageNotFound         = "Not found"
	messageMethodNotAllowed = "Method not allowed"
	messageUnprocessable    = "unprocessable"
	messageInternal         = "Internal server error"
	messageTooManyRequests  = "Too many requests"

	maxBodyBytes = 1 << 20
)

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trivia.ErrUnprocessable):
		writeError(w, http.StatusUnprocessableEntity, messageUnprocessable)
	case errors.Is(err, trivia.ErrNotFound):
		writeError(w, http.StatusNotFound, messageNotFound)
	default:
		writeError(w, http.StatusInternalServerError, messageInternal)
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{
		Success: false,
		Error:   statusCode,
		Message: message,
	})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethods ...string) {
	w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
	writeError(w, http.StatusMethodNotAllowed, messageMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// parsePage reads the 1-based page query parameter. Absent or non-numeric
// values fall back to the first page; other integers pass through unchanged.
func parsePage(r *http.Request) int {
	value := strings.TrimSpace(r.URL.Query().Get("page"))
	if value == "" {
		return 1
	}

	page, err := strconv.Atoi(value)
	if err != nil {
		return 1
	}
	return page
}

// parsePathID reads an integer path wildcard. ok is false for anything that
// is not a base-10 integer.
func parsePathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into target. An empty body leaves
// target at its zero value.
func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(target)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func formatCategories(categories []trivia.Category) map[string]string {
	formatted := make(map[string]string, len(categories))
	for _, category := range categories {
		formatted[strconv.Itoa(category.ID)] = category.Type
	}
	return formatted
}
