package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/auth"
	"github.com/Emerchan23/sisvendas1-sub004/db/dbtest"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	token, expires, err := issuer.GenerateToken("u1", "ana", models.RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	_, err = auth.NewIssuer("other-secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Nanosecond)
	token, _, err := issuer.GenerateToken("u1", "ana", models.RoleUser)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)
}

func TestDisabledIssuer(t *testing.T) {
	issuer := auth.NewIssuer("", 0)
	assert.False(t, issuer.Enabled())
	_, _, err := issuer.GenerateToken("u1", "ana", models.RoleUser)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(hash, "s3cret!"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
}

func TestClaimsContext(t *testing.T) {
	_, ok := auth.FromContext(context.Background())
	assert.False(t, ok)

	ctx := auth.WithClaims(context.Background(), &auth.Claims{Username: "ana"})
	c, ok := auth.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "ana", c.Username)
}

func TestUsers(t *testing.T) {
	users := auth.NewUsers(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, users.EnsureAdmin(ctx, "admin", "admin123"))
	require.NoError(t, users.EnsureAdmin(ctx, "other", "other123"))

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.RoleAdmin, list[0].Role)

	u, err := users.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	_, err = users.Authenticate(ctx, "admin", "nope")
	assert.True(t, apperr.IsValidation(err))
	_, err = users.Authenticate(ctx, "ghost", "admin123")
	assert.True(t, apperr.IsValidation(err))

	_, err = users.Create(ctx, models.UserInput{Username: "admin", Password: "another1"})
	assert.True(t, apperr.IsConflict(err))
}
