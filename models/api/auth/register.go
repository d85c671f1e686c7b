package authapimodels

import (
	"net/mail"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type RegisterRequest struct {
	Username string `json:"username"` // 3-20 characters
	Password string `json:"password"` // at least 8 characters, letters and digits
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	nameLen := utf8.RuneCountInString(r.Username)
	if nameLen < 3 || nameLen > 20 {
		return errors.New("username must be between 3 and 20 characters")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, ch := range r.Password {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain letters and numbers")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has invalid format")
	}
	return nil
}
