package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"event-calendar/internal/event"
)

// DefaultErrorMessage is used when neither the response nor the failure says anything useful.
const DefaultErrorMessage = "An unexpected error occurred"

// TransportError is the single error shape callers of Transport deal with.
type TransportError struct {
	Status  int
	Message string
	Errors  []string
	Cause   error
}

func (e *TransportError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("transport error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("transport error %d: %s (%s)", e.Status, e.Message, strings.Join(e.Errors, "; "))
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Is makes a 404 match event.ErrEventNotFound.
func (e *TransportError) Is(target error) bool {
	return target == event.ErrEventNotFound && e.Status == http.StatusNotFound
}

// IsNotFound reports whether err is a TransportError with status 404.
func IsNotFound(err error) bool {
	return errors.Is(err, event.ErrEventNotFound)
}

// errorBody accepts both shapes the backend has used: errors as a string list
// or as a field -> message object, and message or error as the summary.
type errorBody struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

// NormalizeResponse builds a TransportError from a non-2xx response.
// A zero status becomes 500, a missing message becomes DefaultErrorMessage and
// missing errors become an empty list.
func NormalizeResponse(status int, body []byte) *TransportError {
	if status == 0 {
		status = http.StatusInternalServerError
	}

	te := &TransportError{
		Status:  status,
		Message: DefaultErrorMessage,
		Errors:  []string{},
	}

	var eb errorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return te
	}

	switch {
	case strings.TrimSpace(eb.Message) != "":
		te.Message = eb.Message
	case strings.TrimSpace(eb.Error) != "":
		te.Message = eb.Error
	}
	te.Errors = decodeErrors(eb.Errors)
	return te
}

// NormalizeFailure builds a TransportError for a request that never produced a
// usable response (network failure, timeout, undecodable body).
func NormalizeFailure(cause error) *TransportError {
	var te *TransportError
	if errors.As(cause, &te) {
		return te
	}

	msg := DefaultErrorMessage
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &TransportError{
		Status:  http.StatusInternalServerError,
		Message: msg,
		Errors:  []string{},
		Cause:   cause,
	}
}

func decodeErrors(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 || string(raw) == "null" {
		return out
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return append(out, list...)
	}

	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, k+": "+fields[k])
		}
		return out
	}

	var anyList []any
	if err := json.Unmarshal(raw, &anyList); err == nil {
		for _, v := range anyList {
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}
