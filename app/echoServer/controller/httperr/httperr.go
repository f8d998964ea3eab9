// Package httperr turns service errors into JSON responses.
package httperr

import (
	"log/slog"
	"net/http"
	"strconv"

	"boardcamp/service/apperr"

	"github.com/labstack/echo/v4"
)

func Status(code apperr.ErrCode) int {
	switch code {
	case apperr.ErrInvalidInput, apperr.ErrUnavailable, apperr.ErrInvalidState:
		return http.StatusBadRequest
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write answers with the status for err's code and {"message": ...}.
// 5xx responses are logged with the request id and never echo the cause.
func Write(c echo.Context, log *slog.Logger, op string, err error) error {
	code := apperr.Code(err)
	status := Status(code)
	rid := c.Response().Header().Get(echo.HeaderXRequestID)

	if status >= http.StatusInternalServerError {
		log.Error(op, "err", err, "req_id", rid)
		return c.JSON(status, echo.Map{"message": "internal error"})
	}
	log.Warn(op, "code", string(code), "err", err, "req_id", rid)
	return c.JSON(status, echo.Map{"message": apperr.Message(err)})
}

// ParamID reads a positive int64 path parameter.
func ParamID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
