// Package controller carries helpers shared by the builder (owner-facing)
// and public (respondent-facing) handler packages.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thanhvu/formforge/internal/dto"
	"github.com/thanhvu/formforge/internal/service"
)

// RespondError maps the service error classes onto HTTP statuses.
func RespondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotOwned), errors.Is(err, service.ErrNotPublished):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrExternalService):
		status = http.StatusBadGateway
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

// UintParam parses a numeric path parameter, writing the 400 response itself
// when the value is malformed.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}
