// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"swapmarket/config"
	domainerrors "swapmarket/internal/domain/errors"
	"swapmarket/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var defaultForbiddenWords = []string{"password", "admin", "qwerty", "letmein", "swapmarket"}

type passwordRules struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
	forbiddenWords   []string
}

func defaultPasswordRules() passwordRules {
	return passwordRules{
		minLength:        8,
		maxLength:        72,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
		forbiddenWords:   defaultForbiddenWords,
	}
}

type bcryptHasher struct {
	cost  int
	rules passwordRules
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and passwordStrength.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	rules := defaultPasswordRules()
	if ps := cfg.PasswordStrength; ps != nil {
		if ps.MinLength > 0 {
			rules.minLength = ps.MinLength
		}
		if ps.MaxLength > 0 {
			rules.maxLength = ps.MaxLength
		}
		rules.requireUppercase = ps.RequireUppercase
		rules.requireLowercase = ps.RequireLowercase
		rules.requireNumbers = ps.RequireNumbers
		rules.requireSpecial = ps.RequireSpecial
	}

	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost, rules: rules}
}

// NewBcryptHasherWithCost uses the default strength rules with a custom cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, rules: defaultPasswordRules()}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(hashed), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	if length < h.rules.minLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at least %d characters long", h.rules.minLength)
	}
	if h.rules.maxLength > 0 && len(password) > h.rules.maxLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at most %d bytes long", h.rules.maxLength)
	}
	if h.rules.requireLowercase && !h.hasLowercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one lowercase letter")
	}
	if h.rules.requireUppercase && !h.hasUppercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one uppercase letter")
	}
	if h.rules.requireNumbers && !h.hasNumbers(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one number")
	}
	if h.rules.requireSpecial && !h.hasSpecialChars(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, h.rules.forbiddenWords) {
		return errors.Wrap(domainerrors.ErrPasswordForbiddenWords, "password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
