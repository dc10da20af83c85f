package api

import (
	"context"
	"errors"
	"net/http"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/config"

	"github.com/gin-gonic/gin"
)

// statusCode maps service errors onto HTTP codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes {"error": ...} and logs 5xx.
func errorResponse(c *gin.Context, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		config.LogError("api", c.HandlerName(), c.Request.Method+" "+c.Request.URL.Path, nil, err)
	}
	_ = c.Error(err)
	c.JSON(code, gin.H{
		"error": err.Error(),
	})
}
