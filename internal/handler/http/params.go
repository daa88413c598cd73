package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// intURLParam parses a numeric path segment.
func intURLParam(r *http.Request, key string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil {
		return 0, validator.ValidationErrors{{Field: key, Message: key + " must be a number"}}
	}
	return id, nil
}

// dayParam resolves "today": the date query parameter when given, otherwise now.
func dayParam(r *http.Request, now func() time.Time) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return now(), nil
	}
	t, ok := validator.IsValidDate(raw)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	return t, nil
}
