// Package v1handler serves the /v1 REST API of the garage. Payloads are
// encoded with go-faster/jx; errors are rendered as {"code", "message"}.
package v1handler

import (
	"carlot/internal/garage"
	"carlot/pkg/logger"
	"carlot/pkg/serrors"
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type Deps struct {
	Garage garage.Garage
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError maps a semantic error to its HTTP representation. Errors without a
// known kind are logged and reported as internal errors.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	var (
		status int
		msg    string
	)

	kind := serrors.KindOf(err)
	switch {
	case errors.Is(kind, serrors.ErrNotFound):
		status, msg = http.StatusNotFound, "resource not found"
	case errors.Is(kind, serrors.ErrBadRequest):
		status, msg = http.StatusBadRequest, "bad request"
	case errors.Is(kind, serrors.ErrConflict):
		status, msg = http.StatusConflict, "resource already exists"
	case errors.Is(kind, serrors.ErrTimeout):
		status, msg = http.StatusGatewayTimeout, "request timed out"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: serrors.MessageOf(err, msg)},
	}
}

// Routes returns the v1 endpoints mounted under prefix, e.g. "/v1".
func (h Handler) Routes(prefix string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+prefix+"/cars", h.ListCars)
	mux.HandleFunc("GET "+prefix+"/cars/{id}", h.GetCar)
	mux.HandleFunc("POST "+prefix+"/cars", h.AddCar)
	mux.HandleFunc("POST "+prefix+"/license-plates", h.GenerateLicensePlate)

	return mux
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, encodeError(res.Response))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}
