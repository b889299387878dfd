package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorResponse{Error: message})
}

// respondFailure reports a recoverable business failure: the kind is
// machine-readable, the message is the localized user-facing text.
func respondFailure(c *gin.Context, kind, message string) {
	c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: message, Kind: kind})
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

func respondNotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "resource not found")
}

func respondInternalError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, "internal server error")
}
