package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

const dateLayout = "2006-01-02"

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	resp := ResponseError{Message: msg}
	if err != nil && code < http.StatusInternalServerError {
		resp.Error = err.Error()
	}

	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		slog.ErrorContext(ctx, "encode error response", "error", err)
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

var clientErrors = []struct {
	err  error
	code int
}{
	{entity.ErrMissingInput, http.StatusBadRequest},
	{entity.ErrInvalidType, http.StatusBadRequest},
	{entity.ErrInvalidInput, http.StatusBadRequest},
	{entity.ErrNotFound, http.StatusNotFound},
	{entity.ErrUnauthorized, http.StatusUnauthorized},
	{entity.ErrForbidden, http.StatusForbidden},
}

// handleErr maps a service error to a status code. Client errors carry the
// message that follows the sentinel text.
func handleErr(ctx context.Context, w http.ResponseWriter, err error) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			SendErr(ctx, w, ce.code, err, errorMessage(err, ce.err))
			return
		}
	}

	SendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
}

func errorMessage(err, sentinel error) string {
	msg := err.Error()

	if i := strings.Index(msg, sentinel.Error()+": "); i != -1 {
		return msg[i+len(sentinel.Error())+2:]
	}

	switch {
	case errors.Is(sentinel, entity.ErrNotFound):
		return entity.ErrMsgNotFound
	case errors.Is(sentinel, entity.ErrUnauthorized):
		return entity.ErrMsgUnauthorized
	case errors.Is(sentinel, entity.ErrForbidden):
		return entity.ErrMsgForbidden
	default:
		return entity.ErrMsgBadRequest
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidType("vacation id must be a positive integer")
	}

	return id, nil
}

func invalidType(msg string) error {
	return fmt.Errorf("%w: %s", entity.ErrInvalidType, msg)
}

// parseVacationForm reads the vacation fields of a multipart form. Empty
// fields stay zero so the service reports them as missing.
func parseVacationForm(r *http.Request) (entity.VacationInput, error) {
	var (
		in  entity.VacationInput
		err error
	)

	if v := strings.TrimSpace(r.FormValue("country_id")); v != "" {
		in.CountryID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return entity.VacationInput{}, invalidType("country id must be an integer")
		}
	}

	in.Description = strings.TrimSpace(r.FormValue("description"))

	if v := strings.TrimSpace(r.FormValue("start_date")); v != "" {
		in.StartDate, err = time.Parse(dateLayout, v)
		if err != nil {
			return entity.VacationInput{}, invalidType("start date must be in YYYY-MM-DD format")
		}
	}

	if v := strings.TrimSpace(r.FormValue("end_date")); v != "" {
		in.EndDate, err = time.Parse(dateLayout, v)
		if err != nil {
			return entity.VacationInput{}, invalidType("end date must be in YYYY-MM-DD format")
		}
	}

	if v := strings.TrimSpace(r.FormValue("price")); v != "" {
		in.Price, err = decimal.NewFromString(v)
		if err != nil {
			return entity.VacationInput{}, invalidType("price must be a number")
		}
	}

	return in, nil
}
