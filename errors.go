package authinfo

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable machine-readable subcodes for decode failures. Callers branch on
// these rather than parsing messages.
const (
	// SubcodeBadSignedHeader is reported when the -signed header is
	// present but not "0" or "1".
	SubcodeBadSignedHeader = "REQ-AUTH-BAD-SIGNED-HEADER"

	// SubcodeUnsupportedAlgorithm is reported when the -algorithm header
	// names an algorithm outside the supported set.
	SubcodeUnsupportedAlgorithm = "REQ-AUTH-UNSUPPORTED-ALGORITHM"

	// SubcodeNoHeader is reported when the primary header is absent or blank.
	SubcodeNoHeader = "REQ-AUTH-NO-HEADER"

	// SubcodeInvalidToken is reported when the token is malformed or fails
	// signature verification.
	SubcodeInvalidToken = "REQ-AUTH-INVALID-JWT"

	// SubcodeExpiredToken is reported when the token verified but has expired.
	SubcodeExpiredToken = "REQ-AUTH-EXPIRED-JWT"
)

// Error represents a decode failure with enough structure for a caller to
// branch programmatically: an HTTP-equivalent status, a stable subcode, and
// a human-readable message.
type Error struct {
	Status  int    `json:"status"`
	Subcode string `json:"subcode,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("auth header error (%s): %s", e.Subcode, e.Message)
}

// NewError creates a new Error.
func NewError(status int, subcode, message string) *Error {
	return &Error{
		Status:  status,
		Subcode: subcode,
		Message: message,
	}
}

// badSignedHeader builds the error for a malformed -signed header.
func badSignedHeader(header, value string) *Error {
	return NewError(
		http.StatusBadRequest,
		SubcodeBadSignedHeader,
		fmt.Sprintf("%s-signed must be %q or %q, got %q", header, "0", "1", value),
	)
}

// unsupportedAlgorithm builds the error for an algorithm outside the
// supported set.
func unsupportedAlgorithm(name string, valid []string) *Error {
	return NewError(
		http.StatusBadRequest,
		SubcodeUnsupportedAlgorithm,
		fmt.Sprintf("unsupported algorithm %q, must be one of %v", name, valid),
	)
}

// missingHeader builds the error for an absent or blank primary header.
func missingHeader(header string) *Error {
	return NewError(
		http.StatusUnauthorized,
		SubcodeNoHeader,
		fmt.Sprintf("missing %s header", header),
	)
}

// invalidToken builds the error for a token that is malformed or fails
// verification, embedding the verifier's detail.
func invalidToken(detail string) *Error {
	return NewError(http.StatusBadRequest, SubcodeInvalidToken, detail)
}

// expiredToken builds the error for a verified but expired token.
func expiredToken(detail string) *Error {
	return NewError(http.StatusUnauthorized, SubcodeExpiredToken, detail)
}

// IsDecodeError checks if an error is a typed decode error.
func IsDecodeError(err error) bool {
	var de *Error
	return errors.As(err, &de)
}

// SubcodeOf returns the subcode carried by an error, or "" for untyped
// errors such as the unsigned-mode JSON parse pass-through.
func SubcodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Subcode
	}
	return ""
}

// StatusOf returns the HTTP-equivalent status carried by an error, or
// http.StatusBadRequest for untyped errors.
func StatusOf(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.Status
	}
	return http.StatusBadRequest
}
