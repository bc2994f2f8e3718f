package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/01moynul/inventory-golang/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respond writes the uniform success envelope: {success, message?, data?}.
func respond(c *gin.Context, status int, message string, data any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError maps a domain error kind to its HTTP status and serializes
// the failure envelope. Unexpected errors are logged and reported as 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Kind {
		case apperrors.KindValidation:
			status = http.StatusBadRequest
		case apperrors.KindNotFound:
			status = http.StatusNotFound
		case apperrors.KindConflict:
			status = http.StatusConflict
		}
	} else {
		log.Printf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}

// parseID reads a numeric path parameter. On failure it writes a 400
// envelope and reports false.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid " + param + " parameter",
		})
		return 0, false
	}
	return id, true
}
