package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// FieldErrors são erros de validação de formulário, por campo.
// Nunca entram no slot de erro do store.
type FieldErrors struct {
	Code   string            `json:"error_code"`
	Fields map[string]string `json:"fields"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Fields(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, FieldErrors{
		Code:   "validation_failed",
		Fields: fields,
	})
}
