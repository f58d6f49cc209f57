package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
// A malformed stored value is reported as 502: the shared store handed back something no instance should have written.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
		ErrMalformedValue:      http.StatusBadGateway,
	}
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       log.WithPrefix(logger, "component", "HTTPErrorHandler"),
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
// Errors produced by the OpenAPI request validator arrive as *echo.HTTPError with an openapi3filter.RequestError inside.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		myErr      *MyError
		statusCode int
		he         *echo.HTTPError
	)
	if errors.As(err, &he) {
		code := ErrInternalServerError
		if he.Code < http.StatusInternalServerError {
			code = ErrBadParameter
		}
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			code = ErrEntityNotFound
		}
		var requestError *openapi3filter.RequestError
		if errors.As(he.Internal, &requestError) {
			code = ErrBadParameter
		}
		m, _ := he.Message.(string)
		myErr = NewMyError(code, m, err)
		statusCode = he.Code
	} else {
		myErr = ToMyError(err)
		if myErr == nil {
			myErr = NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
		}
		statusCode = h.getStatusCode(myErr.Code)
	}

	logLevel := level.Error
	if statusCode < http.StatusInternalServerError {
		logLevel = level.Warn
	}
	logLevel(h.logger).Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Path(),
		"status", statusCode,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Error: myErr})
}

// ErrResponse from server.
type ErrResponse struct {
	Error *MyError `json:"error,omitempty"`
}
