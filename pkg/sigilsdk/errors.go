package sigilsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the service. The engine
// reports failures as a flat {"errors": [...]} body; Messages carries that
// list verbatim.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Messages is the error list from the response body.
	Messages []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("sigil: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("sigil: HTTP %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// ParamError reports a request the SDK refuses to send because a required
// parameter is missing. The server enforces the same rule; failing locally
// just saves the round trip.
type ParamError struct {
	Param string
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	return "sigil: missing required parameter: " + e.Param
}

// apiErrorWithStatus extracts an *APIError with the given status from err.
func apiErrorWithStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsInvalidRequest reports whether err is a 400 from the service: duplicate
// key name, unknown key type, missing or malformed parameter, operation on
// a key that does not exist.
func IsInvalidRequest(err error) bool {
	return apiErrorWithStatus(err, http.StatusBadRequest)
}

// IsNotFound reports whether err is a 404 from the service: reading an
// absent key or subkey, or listing an empty key store.
func IsNotFound(err error) bool {
	return apiErrorWithStatus(err, http.StatusNotFound)
}

// IsForbidden reports whether err is a 403 from the service: exporting a
// key created without exportable=true.
func IsForbidden(err error) bool {
	return apiErrorWithStatus(err, http.StatusForbidden)
}

// IsUnsupportedParam reports whether err is the rejection of a parameter
// the operation does not accept. It is a subset of IsInvalidRequest.
func IsUnsupportedParam(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		return false
	}
	for _, msg := range apiErr.Messages {
		if strings.Contains(msg, "unsupported parameter") {
			return true
		}
	}
	return false
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
// Bodies that do not decode as an error list still produce a usable error
// from the status line.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 {
		return &APIError{StatusCode: resp.StatusCode, Messages: errResp.Errors}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Messages:   []string{fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))},
	}
}
