package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// AbortWithError writes the error body and keeps err on the context for logging.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := newResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Rule maps a sentinel error to the response it should produce.
type Rule struct {
	Target  error
	Status  int
	Message string
	// WithDetail exposes err.Error() as the detail field.
	WithDetail bool
}

// AbortWithRules answers with the first rule whose Target matches err, or
// with fallback when none does.
func AbortWithRules(c *gin.Context, err error, is func(err, target error) bool, fallback Rule, rules ...Rule) {
	for _, r := range rules {
		if is(err, r.Target) {
			abortWithRule(c, err, r)
			return
		}
	}
	abortWithRule(c, err, fallback)
}

func abortWithRule(c *gin.Context, err error, r Rule) {
	var detail any
	if r.WithDetail {
		detail = err.Error()
	}
	AbortWithError(c, r.Status, err, r.Message, detail)
}
