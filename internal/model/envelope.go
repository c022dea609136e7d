package model

// Envelope is the wrapper every Trendify endpoint answers with.
type Envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// OK reports whether the server accepted the request.
func (e *Envelope[T]) OK() bool {
	return e != nil && e.Status
}

// ServerMessage returns the human readable message sent by the server.
func (e *Envelope[T]) ServerMessage() string {
	if e == nil {
		return ""
	}
	return e.Message
}
