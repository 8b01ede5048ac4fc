package helpers

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are issued by the external identity provider. The subject is the
// numeric user id.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return id, nil
}

func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

func (c *Claims) HasRole(roles ...string) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

func (c *Claims) IsOwner(userID int64) bool {
	id, err := c.UserID()
	return err == nil && id == userID
}

func (c *Claims) GetSafeRole() string {
	if c.Role == "" {
		return "guest"
	}
	return c.Role
}
