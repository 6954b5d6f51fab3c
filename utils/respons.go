package utils

import "github.com/gin-gonic/gin"

type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// RespondError writes a JSON error body. Success bodies are written directly
// by the handlers since their shapes are part of the API contract.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{
		Status:  false,
		Message: err.Error(),
	})
}
