package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	// State carries the synthetic "canceled" shape for not-found and
	// expired session lookups. It is never a stored session status.
	State string `json:"status,omitempty"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	abort(c, status, err, code, msg, "")
}

// AbortCanceled is AbortWithError plus the synthetic canceled state used
// for missing or expired checkout sessions.
func AbortCanceled(c *gin.Context, status int, err error, code, msg string) {
	abort(c, status, err, code, msg, "canceled")
}

func abort(c *gin.Context, status int, err error, code, msg, state string) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := Response{Status: status, State: state}
	resp.Error.Code = code
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
