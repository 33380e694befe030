package lnd

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

var (
	ErrInvalidHostFormat   = errors.New("Invalid host. Use host:port syntax.")
	ErrCredentialNotFound  = errors.New("Macaroon not found")
	ErrCredentialEmpty     = errors.New("Macaroon data is empty")
	ErrCertificateNotFound = errors.New("TLS Certificate not found")
	ErrHostUnreachable     = errors.New("Host Unreachable")
	ErrAliasUnavailable    = errors.New("Alias Unavailable")
	ErrInvalidPubkey       = errors.New("invalid node pubkey")
	ErrInvalidPaymentHash  = errors.New("invalid payment hash")
	ErrInvalidChannelPoint = errors.New("invalid channel point, use txid:index")
	ErrQRUnavailable       = errors.New("no QR codec configured")
)

// APIError is an application level failure reported by lnd inside an
// otherwise successful round trip.
type APIError struct {
	Code       codes.Code
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Error: %s", e.Message)
}

// IsAPIError reports whether err carries an error returned by the node itself.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
