package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSetAndMatches(t *testing.T) {
	var user User

	err := user.Password.Set("Sup3rSecret!")
	require.NoError(t, err)
	require.NotEmpty(t, user.Password.Hash)

	matches, err := user.Password.Matches("Sup3rSecret!")
	require.NoError(t, err)
	assert.True(t, matches)

	matches, err = user.Password.Matches("wrong-password")
	require.NoError(t, err)
	assert.False(t, matches)
}
