package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"

	principalKey = "principal"
)

// Principal is the caller identity resolved from a bearer token for one request.
type Principal struct {
	AccountID uuid.UUID
	Email     string
	Name      string
	Role      string
}

func (p Principal) IsTeacher() bool { return p.Role == RoleTeacher }
func (p Principal) IsStudent() bool { return p.Role == RoleStudent }

func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
	c.Set("user_id", p.AccountID.String())
	c.Set("Role", p.Role)
}

// CurrentPrincipal returns the principal stored by the JWT middleware. Routes
// mounted behind the middleware can rely on it being present.
func CurrentPrincipal(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// ParseID parses a path or body identifier.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return id, nil
}
