package httpapi

import "github.com/gin-gonic/gin"

// Result is a tagged success-or-failure response mapped to exactly one
// transport status. Handlers build a Result and write it once, so a
// route can never mix a success payload with an error status.
type Result struct {
	status  int
	payload any
	message string
}

// OK wraps a success payload.
func OK(payload any) Result {
	return Result{status: 200, payload: payload}
}

// Message wraps a success acknowledged only by a message.
func Message(msg string) Result {
	return Result{status: 200, message: msg}
}

// Fail wraps a rejection. The message is the full client-visible
// detail; internal error text never goes through here.
func Fail(status int, message string) Result {
	return Result{status: status, message: message}
}

// Write emits the result to the transport.
func (r Result) Write(c *gin.Context) {
	if r.message != "" {
		c.JSON(r.status, gin.H{"message": r.message})
		return
	}
	c.JSON(r.status, r.payload)
}

// IsFailure reports whether the result carries an error status.
func (r Result) IsFailure() bool { return r.status >= 400 }
