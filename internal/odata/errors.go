package odata

import (
	"encoding/json"
	"fmt"
)

// QueryError is returned for any failure of a remote query: destination
// lookup, transport, a non-2xx status or a payload that cannot be read.
type QueryError struct {
	Status  int
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// serviceError is the OData V2 JSON error body.
type serviceError struct {
	Error struct {
		Code    string          `json:"code"`
		Message json.RawMessage `json:"message"`
	} `json:"error"`
}

// errorMessage extracts a readable message from an error response body,
// falling back to the HTTP status text.
func errorMessage(body []byte, status string) string {
	var se serviceError
	if err := json.Unmarshal(body, &se); err != nil || (se.Error.Code == "" && len(se.Error.Message) == 0) {
		if len(body) == 0 {
			return status
		}
		return fmt.Sprintf("%s: %s", status, body)
	}

	var text string
	var localized struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(se.Error.Message, &localized); err == nil && localized.Value != "" {
		text = localized.Value
	} else if err := json.Unmarshal(se.Error.Message, &text); err != nil {
		text = string(se.Error.Message)
	}

	if se.Error.Code == "" {
		return fmt.Sprintf("%s: %s", status, text)
	}
	return fmt.Sprintf("%s: %s (%s)", status, text, se.Error.Code)
}
