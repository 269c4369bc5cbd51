package osuser

import (
	"fmt"
	"os/user"

	"github.com/bnema/logdata/internal/ports"
)

// Resolver reports the login name of the user running the process.
type Resolver struct {
	current func() (*user.User, error)
}

var _ ports.UserResolver = Resolver{}

func NewResolver() Resolver {
	return Resolver{current: user.Current}
}

func (r Resolver) CurrentUsername() (string, error) {
	current := r.current
	if current == nil {
		current = user.Current
	}

	u, err := current()
	if err != nil {
		return "", fmt.Errorf("look up current user: %w", err)
	}

	return u.Username, nil
}
