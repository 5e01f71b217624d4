// Package otp generates the six-digit one-time codes returned by the
// stub verification endpoint. The endpoint logs and echoes the code to
// the caller; it is not a security boundary.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generate returns a random code in [100000, 999999].
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
