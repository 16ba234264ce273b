package errors

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"ethocli/internal/infrastructure"
)

// ErrorHandler provides centralized error handling for HTTP handlers
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: infrastructure.WithComponent(logger, "error_handler"),
	}
}

// HandleError logs the error and writes the structured error response.
// Non-APIError values are wrapped as internal server errors so no raw
// error text leaks to clients.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	infrastructure.LoggerWithContext(r.Context(), h.logger).ErrorContext(
		r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	apiErr, ok := err.(*APIError)
	if !ok {
		apiErr = ErrInternalServer
	}

	render.Render(w, r, NewErrorResponse(apiErr))
}
