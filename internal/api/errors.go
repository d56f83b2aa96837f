package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is the single failure shape every backend call is normalized into.
// Status is zero when no HTTP status was received (transport failure).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// newError extracts a usable message from an error response. The backend mixes
// JSON {"message": ...} and {"error": ...} payloads with plain-string bodies
// (its validation errors are raw text), so all of them are handled.
func newError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		}
	}
	if msg == "" {
		var s string
		if err := json.Unmarshal(body, &s); err == nil {
			msg = s
		} else if t := strings.TrimSpace(string(body)); t != "" && !strings.HasPrefix(t, "{") {
			msg = t
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}
