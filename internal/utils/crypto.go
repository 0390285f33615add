package utils

import (
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/blake2b"
)

var ErrEmptyFingerprintKey = errors.New("fingerprint key is empty")

// FingerprintCard returns a keyed BLAKE2b-256 digest of a card number so
// equal cards can be matched without storing the number. An unkeyed digest
// of a card number is reversible by enumeration, so an empty key is refused.
func FingerprintCard(key []byte, cardNumber string) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyFingerprintKey
	}
	h, err := blake2b.New256(key)
	if err != nil {
		return "", err
	}
	h.Write([]byte(digitsOnly(cardNumber)))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MaskCardNumber keeps the last four digits.
func MaskCardNumber(cardNumber string) string {
	digits := digitsOnly(cardNumber)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
