package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	u, err := s.users.Register(ctx, "  jane@example.com ", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", u.Username)
	require.Equal(t, "jane", u.Name)
	require.Equal(t, service.DefaultJobTitle, u.JobTitle)
	require.False(t, u.LinkedInConnected)

	prefs, err := s.prefs.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, prefs.JobTitles)

	_, err = s.users.Register(ctx, "JANE@example.com", "another password")
	require.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.users.Register(ctx, "ab", "short")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "username")
	require.Contains(t, verr.Fields, "password")
}

func TestAuthenticate(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	u := s.register(t, "jane")

	got, err := s.users.Authenticate(ctx, "Jane", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.users.Authenticate(ctx, "jane", "wrong password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = s.users.Authenticate(ctx, "nobody", "correct horse battery")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	u := s.register(t, "jane")

	got, err := s.users.UpdateProfile(ctx, u.ID, service.ProfileUpdate{JobTitle: ptr("Product Lead")})
	require.NoError(t, err)
	require.Equal(t, "Product Lead", got.JobTitle)
	require.Equal(t, "jane", got.Name)

	_, err = s.users.UpdateProfile(ctx, u.ID, service.ProfileUpdate{Name: ptr("   ")})
	requireFieldError(t, err, "name")

	_, err = s.users.UpdateProfile(ctx, u.ID, service.ProfileUpdate{PhotoURL: ptr("ftp://x")})
	requireFieldError(t, err, "photoUrl")
}

func TestLinkedInConnectDisconnect(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	u := s.register(t, "jane")

	_, err := s.users.ConnectLinkedIn(ctx, u.ID, " ")
	requireFieldError(t, err, "sessionCookie")

	got, err := s.users.ConnectLinkedIn(ctx, u.ID, "li_at=abc")
	require.NoError(t, err)
	require.True(t, got.LinkedInConnected)
	require.NotNil(t, got.LinkedInSession)
	require.Equal(t, "li_at=abc", *got.LinkedInSession)

	got, err = s.users.DisconnectLinkedIn(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.LinkedInConnected)
	require.Nil(t, got.LinkedInSession)
}

func TestSavePreferences(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	u := s.register(t, "jane")

	p, created, err := s.prefs.Save(ctx, u.ID,
		[]string{" Product Manager ", "product manager", ""},
		[]string{"Remote"},
		nil,
	)
	require.NoError(t, err)
	// Register already created the empty row
	require.False(t, created)
	require.Equal(t, []string{"Product Manager"}, p.JobTitles)
	require.Equal(t, []string{"Remote"}, p.Locations)
	require.Empty(t, p.Industries)

	many := make([]string, 21)
	for i := range many {
		many[i] = string(rune('a' + i))
	}
	_, _, err = s.prefs.Save(ctx, u.ID, many, nil, nil)
	requireFieldError(t, err, "jobTitles")
}
