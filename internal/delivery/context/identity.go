package context

import (
	"swapmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key for the authenticated identity in echo.Context.
const KeyUser ContextKey = "user"

// SetUser stores the authenticated identity in echo.Context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated identity, nil for anonymous requests.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(string(KeyUser)).(*entity.User)

	return user
}
