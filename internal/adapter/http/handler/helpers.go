package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/dto"
	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFabricNotFound),
		errors.Is(err, domain.ErrBatchNotFound),
		errors.Is(err, domain.ErrSaleNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidUnitCost),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidFabric),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrInvalidEntry),
		errors.Is(err, domain.ErrInvalidPayment):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrExportUnavailable):
		return http.StatusNotImplemented
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseRangeQuery parses the from and to query parameters. A date-only "to"
// covers the whole day.
func parseRangeQuery(r *http.Request) (time.Time, time.Time, error) {
	var from, to time.Time

	if val := strings.TrimSpace(r.URL.Query().Get("from")); val != "" {
		t, err := parseTimeQuery(val)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}

	if val := strings.TrimSpace(r.URL.Query().Get("to")); val != "" {
		t, err := parseTimeQuery(val)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if len(val) == len(domain.DateLayout) {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = t
	}

	return from, to, nil
}

func parseTimeQuery(val string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.UTC(), nil
	}
	return domain.ParseDate(val)
}

// reportFilterFromQuery reads the cashbook report filter.
func reportFilterFromQuery(r *http.Request) domain.ReportFilter {
	return domain.ReportFilter{
		Date:   r.URL.Query().Get("date"),
		Search: r.URL.Query().Get("search"),
	}
}
