package response

import (
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func Fail(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: err.Error()})
}

// Error maps domain errors to HTTP statuses.
func Error(c *gin.Context, err error) {
	Fail(c, StatusFor(err), err)
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRequisiteNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccessDenied), errors.Is(err, domain.ErrUnknownRole):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrEmptyRequisiteID),
		errors.Is(err, domain.ErrFullnameRequired),
		errors.Is(err, domain.ErrBankRequired),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidCard),
		errors.Is(err, domain.ErrAccountRequired),
		errors.Is(err, domain.ErrInvalidRequisitesType),
		errors.Is(err, domain.ErrInvalidOperationType),
		errors.Is(err, domain.ErrInvalidNumber):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
