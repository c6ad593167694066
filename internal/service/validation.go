package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dtroode/seeseehome-users/internal/model"
)

const (
	usernameMaxLen = 30
	emailMaxLen    = 64
	emailLocalMax  = 64
	passwordMinLen = 6
	passwordMaxLen = 255

	// PasswordSpecialChars lists the characters that satisfy the special character rule.
	PasswordSpecialChars = `$&+,:;=?@#|'"<>.^*()%!-`
)

// User-facing validation messages.
const (
	MsgUsernameRequired  = "username must be set"
	MsgUsernameTooLong   = "username must be at most 30 characters"
	MsgUsernameInvalid   = "username may contain only letters, digits, underscores and hyphens"
	MsgEmailInvalid      = "enter a valid email address"
	MsgEmailTooLong      = "email must be at most 64 characters"
	MsgPasswordTooShort  = "password must be at least 6 characters"
	MsgPasswordTooLong   = "password must be at most 255 characters"
	MsgPasswordNoDigit   = "password must contain at least one digit"
	MsgPasswordNoLetter  = "password must contain at least one letter"
	MsgPasswordNoSpecial = "password must contain at least one special character (" + PasswordSpecialChars + ")"
	MsgUserPermTooLow    = "userperm must be at least 1"
	MsgUserPermTooHigh   = "userperm must be at most 31"
)

var (
	usernamePattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailLocalPattern = regexp.MustCompile("^[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+(\\.[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]+)*$")
	domainLabel       = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)
	topLevelLabel     = regexp.MustCompile(`^[A-Za-z]{2,63}$`)
)

// ValidateUsername checks that username is set, at most 30 characters long
// and built only from ASCII letters, digits, '_' and '-'.
func ValidateUsername(username string) error {
	if username == "" {
		return model.NewInvalidInputError("username", MsgUsernameRequired)
	}
	if utf8.RuneCountInString(username) > usernameMaxLen {
		return model.NewValidationError("username", MsgUsernameTooLong)
	}
	if !usernamePattern.MatchString(username) {
		return model.NewValidationError("username", MsgUsernameInvalid)
	}
	return nil
}

// ValidatePassword checks length bounds and the digit, letter and special
// character rules, in that order.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	switch {
	case n < passwordMinLen:
		return model.NewValidationError("password", MsgPasswordTooShort)
	case n > passwordMaxLen:
		return model.NewValidationError("password", MsgPasswordTooLong)
	}

	if !strings.ContainsAny(password, "0123456789") {
		return model.NewValidationError("password", MsgPasswordNoDigit)
	}
	if !strings.ContainsFunc(password, isASCIILetter) {
		return model.NewValidationError("password", MsgPasswordNoLetter)
	}
	if !strings.ContainsAny(password, PasswordSpecialChars) {
		return model.NewValidationError("password", MsgPasswordNoSpecial)
	}
	return nil
}

// ValidateUserPerm checks that perm lies within [PermUser, PermAll].
func ValidateUserPerm(perm model.Perm) error {
	if perm < model.PermUser {
		return model.NewValidationError("userperm", MsgUserPermTooLow)
	}
	if perm > model.PermAll {
		return model.NewValidationError("userperm", MsgUserPermTooHigh)
	}
	return nil
}

// NormalizeEmail trims surrounding whitespace and lower-cases the domain part.
// The local part is kept as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// ValidateEmail accepts a dot-atom local part and a dotted host name whose
// last label is alphabetic.
func ValidateEmail(email string) error {
	if len(email) > emailMaxLen {
		return model.NewValidationError("email", MsgEmailTooLong)
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return model.NewValidationError("email", MsgEmailInvalid)
	}
	if local == "" || len(local) > emailLocalMax || !emailLocalPattern.MatchString(local) {
		return model.NewValidationError("email", MsgEmailInvalid)
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return model.NewValidationError("email", MsgEmailInvalid)
	}
	for _, label := range labels[:len(labels)-1] {
		if !domainLabel.MatchString(label) {
			return model.NewValidationError("email", MsgEmailInvalid)
		}
	}
	if !topLevelLabel.MatchString(labels[len(labels)-1]) {
		return model.NewValidationError("email", MsgEmailInvalid)
	}
	return nil
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
