package handler

import (
	"gamestore/backend/internal/dto"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// ValidationErrorResponse lists the rejected fields of a request body.
type ValidationErrorResponse struct {
	Error  string              `json:"error" example:"One or more validation errors occurred."`
	Errors map[string][]string `json:"errors"`
}

func respondValidation(c *gin.Context, errs dto.FieldErrors) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  "One or more validation errors occurred.",
		Errors: errs,
	})
}

// respondStoreFault logs err and answers 500 with msg.
func respondStoreFault(c *gin.Context, log logrus.FieldLogger, err error, msg string) {
	_ = c.Error(err)
	log.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

// parseID reads the :id path parameter. Ids that are not positive integers
// cannot name a game, so they answer 404 like any other unknown id.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}
