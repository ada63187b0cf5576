package handler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/barchasb-io/barchasb/internal/middleware"
	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/gin-gonic/gin"
)

// passwordSymbols is the punctuation set a password must draw at least one
// character from.
const passwordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// validatePassword enforces the signup password policy at the boundary:
// 8-128 characters with at least one letter, one digit and one symbol.
func validatePassword(pw string) error {
	if len(pw) < 8 || len(pw) > 128 {
		return errors.New("password must be 8-128 characters long")
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasLetter || !hasDigit || !hasSymbol {
		return errors.New("password must contain a letter, a digit and a symbol")
	}
	return nil
}

// currentUser pulls the user the auth middleware resolved from the bearer
// token. All mutations are attributed to this user.
func currentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(middleware.CurrentUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok
}
