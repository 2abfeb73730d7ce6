// Package jwt provides signing and verification of the identity tokens
// NextHire carries in its auth cookie.
//
// Tokens are HMAC-SHA256 JWTs built on github.com/golang-jwt/jwt/v5. The
// payload is a typed Claims value: a required email plus an open extension
// map that is flattened into the token, so callers may attach arbitrary
// claims at issuance without the token layer interpreting them.
//
// Tokens are stateless. There is no revocation list; a token stays valid
// until its embedded expiry (7 days by default) regardless of logout.
//
// Verification failures collapse into three errors: ErrTokenExpired,
// ErrInvalidSignature, and ErrInvalidToken for anything else malformed.
// Callers that surface auth failures over HTTP should not distinguish
// between them in responses.
package jwt
