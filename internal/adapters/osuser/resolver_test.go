package osuser

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverReturnsUsername(t *testing.T) {
	t.Parallel()

	resolver := Resolver{current: func() (*user.User, error) {
		return &user.User{Username: "alice", Uid: "1000"}, nil
	}}

	name, err := resolver.CurrentUsername()
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestResolverWrapsLookupError(t *testing.T) {
	t.Parallel()

	lookupErr := errors.New("unknown userid 4242")
	resolver := Resolver{current: func() (*user.User, error) {
		return nil, lookupErr
	}}

	_, err := resolver.CurrentUsername()
	assert.ErrorIs(t, err, lookupErr)
	assert.Contains(t, err.Error(), "look up current user")
}

func TestZeroResolverUsesProcessUser(t *testing.T) {
	t.Parallel()

	want, err := user.Current()
	if err != nil {
		t.Skipf("current user unavailable: %v", err)
	}

	got, err := Resolver{}.CurrentUsername()
	require.NoError(t, err)
	assert.Equal(t, want.Username, got)
}
