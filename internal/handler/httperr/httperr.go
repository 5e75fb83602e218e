package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *Detail `json:"detail,omitempty"`
}

// Detail carries a machine-readable code and whether re-issuing the same request may succeed.
type Detail struct {
	Code      string `json:"code"`
	Retryable bool   `json:"retryable"`
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, msg string, detail *Detail) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
