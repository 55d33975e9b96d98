package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken("ella@staff.campus.test", "Bu Ella Kantin", "staff-1", "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, msg := ValidateToken(token)
	require.Empty(t, msg)
	assert.Equal(t, "ella@staff.campus.test", claims.Email)
	assert.Equal(t, "Bu Ella Kantin", claims.Username)
	assert.Equal(t, "staff-1", claims.Uid)
	assert.Equal(t, "staff", claims.Role)
}

func TestValidateGarbageToken(t *testing.T) {
	claims, msg := ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.NotEmpty(t, msg)
}
