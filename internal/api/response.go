package api

import (
	"encoding/json"
	"strings"

	errx "github.com/trendify-core/client/internal/core/error"
)

// enveloped is satisfied by every model.Envelope instantiation.
type enveloped interface {
	OK() bool
}

// Response carries the HTTP status and, for 2xx answers, the decoded body.
type Response[T any] struct {
	StatusCode int
	Body       *T
	Raw        string // undecoded body when Body could not be filled
	RequestID  string
}

// Successful reports a 2xx status with a decoded body.
func (r *Response[T]) Successful() bool {
	return r != nil && errx.IsSuccess(r.StatusCode) && r.Body != nil
}

// Err converts a non-success response into an error. A 2xx answer whose
// envelope carries status=false is reported as errx.ErrRejected.
func (r *Response[T]) Err() error {
	if r == nil {
		return errx.FromStatus(0, errx.SystemErrorMessage)
	}
	if !errx.IsSuccess(r.StatusCode) {
		return errx.FromStatus(r.StatusCode, r.message())
	}
	if r.Body == nil {
		return errx.FromStatus(r.StatusCode, "empty response body")
	}
	if env, ok := any(r.Body).(enveloped); ok && !env.OK() {
		return errx.FromStatus(r.StatusCode, r.message())
	}
	return nil
}

func (r *Response[T]) message() string {
	if r.Body != nil {
		if m, ok := any(r.Body).(interface{ ServerMessage() string }); ok {
			return m.ServerMessage()
		}
	}
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(r.Raw), &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(r.Raw)
}
