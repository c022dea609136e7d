package errx

import (
	"net/http"
	"strings"
)

// FromStatus maps a non-success API answer to an AppError. message is the
// server supplied text, if any.
func FromStatus(status int, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = SystemErrorMessage
	}

	var kind error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrUnauthorized
	case status == http.StatusNotFound:
		kind = ErrNotFound
	case status >= 500:
		kind = ErrServer
	case status >= 400:
		kind = ErrClient
	case status >= 200 && status < 300:
		kind = ErrRejected
		if message == http.StatusText(status) {
			message = RejectedMessage
		}
	}
	return New(kind, status, message)
}

// IsSuccess reports whether status is a 2xx code.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
