package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"symbols", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 128)},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.Equal(t, "m=19456,t=2,p=1", parts[3])

			require.NoError(t, VerifyPassword(tt.password, hash))
			require.ErrorIs(t, VerifyPassword(tt.password+"x", hash), ErrPasswordMismatch)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestVerifyPassword_InvalidHashFormat(t *testing.T) {
	for _, bad := range []string{
		"",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456",
		"$argon2id$v=19$invalid$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	} {
		require.ErrorIs(t, VerifyPassword("pw", bad), ErrInvalidHash, "hash %q", bad)
	}
}

func TestPepperIsPersisted(t *testing.T) {
	first := GetPepper()
	require.NotEmpty(t, first)

	onDisk, err := os.ReadFile(pepperFile)
	require.NoError(t, err)
	require.Equal(t, first, string(onDisk))

	// Re-pointing at the same file must load the same value
	SetPepperPath(pepperFile)
	require.Equal(t, first, GetPepper())
}
