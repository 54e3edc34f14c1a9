package domain

import "errors"

var ErrInvalidToken = errors.New("token is invalid")
var ErrExpiredToken = errors.New("token has expired")

// Claims is the identity payload embedded in an access token. Validity is
// determined entirely by signature and expiry; nothing is stored server-side.
type Claims struct {
	Email string
	Role  string
}
