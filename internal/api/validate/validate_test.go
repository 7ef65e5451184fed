package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresent(t *testing.T) {
	assert.NoError(t, Present("username", "alice", "password", "pw1"))

	err := Present("username", " ", "email", "a@x.com", "password", "")
	require.Error(t, err)
	assert.Equal(t, "username: required; password: required", err.Error())

	var errs Errs
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}
