package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a token does not have the
// header.payload.signature shape.
var ErrMalformedToken = errors.New("malformed token")

// DecodeClaimsUnverified returns the claims carried in the payload segment of
// a JWT without verifying its signature.
//
// The client has no signing key and uses the claims for display only, so
// the result must never be treated as proof of identity. The payload is
// decoded as base64url with or without padding.
//
// Example usage:
//
//	claims, err := utils.DecodeClaimsUnverified(token)
//	if err != nil {
//	    // fall back to an anonymous profile
//	}
//	name, _ := claims["name"].(string)
func DecodeClaimsUnverified(tokenString string) (jwt.MapClaims, error) {
	parts := strings.Split(strings.TrimSpace(tokenString), ".")
	if len(parts) != 3 || parts[1] == "" {
		return nil, ErrMalformedToken
	}

	payload, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("error decoding token payload: %w", err)
	}

	claims := jwt.MapClaims{}
	if err = json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("error parsing token claims: %w", err)
	}

	return claims, nil
}
