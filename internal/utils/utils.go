package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// passwordSpecials is the special-character set the password policy accepts.
const passwordSpecials = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

var (
	scriptSchemeRe = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	swiftCodeRe    = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
)

// Sanitize trims the input and strips characters and patterns that could be
// read as markup or script: angle brackets, javascript: URIs and inline
// event-handler attributes. A syntactically valid email or SWIFT code passes
// through unchanged.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = scriptSchemeRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	return s
}

// HashPassword hashes a password using bcrypt. Each call salts independently,
// so hashing the same password twice yields different digests. The cost is
// supplied by configuration.
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrHashingFailure, err)
	}
	return string(bytes), nil
}

// CheckPassword reports whether the password matches the stored digest.
// A malformed digest reports false rather than an error.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword enforces the provisioning policy: minimum 8 characters
// with at least one uppercase letter, one lowercase letter, one digit and one
// special character. The returned error names every failed clause.
func ValidatePassword(password string) error {
	var missing []string
	if len(password) < 8 {
		missing = append(missing, "at least 8 characters")
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !upper {
		missing = append(missing, "an uppercase letter")
	}
	if !lower {
		missing = append(missing, "a lowercase letter")
	}
	if !digit {
		missing = append(missing, "a digit")
	}
	if !special {
		missing = append(missing, "a special character")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: needs %s", apperrors.ErrWeakPassword, strings.Join(missing, ", "))
	}
	return nil
}

// GenerateTransactionID returns a process-unique payment identifier. The
// millisecond timestamp keeps IDs roughly time-ordered; the 10-character
// random suffix carries ~59 bits of entropy, enough that birthday collisions
// are negligible even under concurrent high-rate issuance.
func GenerateTransactionID() string {
	const length = 10
	suffix := make([]byte, length)
	for i := range suffix {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(idCharset))))
		suffix[i] = idCharset[num.Int64()]
	}
	return fmt.Sprintf("txn-%d-%s", time.Now().UnixMilli(), string(suffix))
}

// ValidSwiftCode reports whether the (already uppercased) code matches the
// SWIFT/BIC shape: 6 letters, 2 alphanumerics, optional 3-alphanumeric branch.
func ValidSwiftCode(code string) bool {
	return swiftCodeRe.MatchString(code)
}
