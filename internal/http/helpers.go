package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"financeiro/internal/core"
	"financeiro/internal/report"
	"financeiro/internal/services"
)

type apiError struct {
	status  int
	message string
}

func (e apiError) Error() string { return e.message }

func errBadRequest(msg string) error {
	return apiError{status: http.StatusBadRequest, message: msg}
}

// validationErrors are surfaced to the caller as 400 with their
// human-readable reason; everything else is an internal failure.
var validationErrors = []error{
	core.ErrInvalidTipo,
	core.ErrNegativeAmount,
	core.ErrInvalidAmount,
	core.ErrEmptyDescricao,
	core.ErrInvalidDate,
	core.ErrEmptyPeriod,
	report.ErrUnknownReport,
	report.ErrMissingOrderColumn,
	report.ErrInvalidTimestamp,
	report.ErrInvalidNumber,
	report.ErrEmptyTable,
	services.ErrNoFiles,
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr apiError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.status, map[string]string{"erro": apiErr.message})
		return
	}

	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"erro": err.Error()})
			return
		}
	}

	slog.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"erro": "erro interno"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
