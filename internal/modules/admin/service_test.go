package admin

import (
	"testing"
	"time"

	"mentorloop/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, email, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService(email, string(hash), jwt.New("test-secret", time.Hour), nil, nil, nil)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t, "ops@mentorloop.dev", "hunter2hunter2")

	token, err := svc.Login("ops@mentorloop.dev", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwt.New("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@mentorloop.dev", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t, "Ops@MentorLoop.dev", "hunter2hunter2")

	_, err := svc.Login("  ops@mentorloop.dev  ", "hunter2hunter2")
	require.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t, "ops@mentorloop.dev", "hunter2hunter2")

	_, err := svc.Login("ops@mentorloop.dev", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongEmail(t *testing.T) {
	svc := newTestService(t, "ops@mentorloop.dev", "hunter2hunter2")

	_, err := svc.Login("someone@else.dev", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Unconfigured(t *testing.T) {
	svc := NewService("", "", jwt.New("test-secret", time.Hour), nil, nil, nil)

	_, err := svc.Login("ops@mentorloop.dev", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
