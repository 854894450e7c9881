package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/pkg/cryptox"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 64
	minPasswordLen = 8
	maxPasswordLen = 128

	DefaultJobTitle = "Job Seeker"
)

type UserService struct {
	Store store.Store
}

// Register creates the account and its empty job preferences. Opening a
// session is left to the caller.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	username = strings.TrimSpace(username)

	var v validator
	v.check(utf8.RuneCountInString(username) >= minUsernameLen && utf8.RuneCountInString(username) <= maxUsernameLen,
		"username", "must be between 3 and 64 characters")
	v.check(len(password) >= minPasswordLen && len(password) <= maxPasswordLen,
		"password", "must be between 8 and 128 characters")
	if err := v.err(); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// Name defaults to the local part when people sign up with an email
	name, _, _ := strings.Cut(username, "@")

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		JobTitle:     DefaultJobTitle,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrUsernameTaken
	}
	if err != nil {
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	if _, _, err := s.Store.Preferences().UpsertPreferences(ctx, domain.JobPreferences{UserID: user.ID}); err != nil {
		// The account is usable without preferences, GET just 404s until saved
		log.Error("failed to create empty job preferences", slog.Int64("user_id", user.ID), slog.Any("error", err))
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

// Authenticate checks a username and password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		log.Info("login for unknown user")
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash unusable", slog.Int64("user_id", user.ID), slog.Any("error", err))
		}
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	return user, mapStoreErr(err)
}

// ProfileUpdate holds the user editable profile fields, nil = unchanged.
type ProfileUpdate struct {
	Name        *string
	JobTitle    *string
	PhotoURL    *string
	LinkedInURL *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, in ProfileUpdate) (domain.User, error) {
	var v validator
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
		v.check(trimmed != "", "name", "must not be empty")
		v.check(utf8.RuneCountInString(trimmed) <= 128, "name", "must be at most 128 characters")
	}
	if in.JobTitle != nil {
		v.check(utf8.RuneCountInString(*in.JobTitle) <= 128, "jobTitle", "must be at most 128 characters")
	}
	if in.PhotoURL != nil {
		v.check(*in.PhotoURL == "" || isHTTPURL(*in.PhotoURL), "photoUrl", "must be an http(s) URL")
	}
	if in.LinkedInURL != nil {
		trimmed := strings.TrimSpace(*in.LinkedInURL)
		in.LinkedInURL = &trimmed
		v.check(trimmed == "" || isHTTPURL(trimmed), "linkedInUrl", "must be an http(s) URL")
	}
	if err := v.err(); err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().UpdateUser(ctx, userID, store.UserPatch{
		Name:        in.Name,
		JobTitle:    in.JobTitle,
		PhotoURL:    in.PhotoURL,
		LinkedInURL: in.LinkedInURL,
	})
	return user, mapStoreErr(err)
}

// ConnectLinkedIn stores the session marker from the account link step.
func (s *UserService) ConnectLinkedIn(ctx context.Context, userID int64, sessionCookie string) (domain.User, error) {
	sessionCookie = strings.TrimSpace(sessionCookie)
	if sessionCookie == "" {
		return domain.User{}, invalid("sessionCookie", "is required")
	}

	connected := true
	user, err := s.Store.Users().UpdateUser(ctx, userID, store.UserPatch{
		LinkedInConnected: &connected,
		LinkedInSession:   &sessionCookie,
	})
	if err != nil {
		return domain.User{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("linkedin account connected", slog.Int64("user_id", userID))
	return user, nil
}

func (s *UserService) DisconnectLinkedIn(ctx context.Context, userID int64) (domain.User, error) {
	connected := false
	user, err := s.Store.Users().UpdateUser(ctx, userID, store.UserPatch{
		LinkedInConnected:    &connected,
		ClearLinkedInSession: true,
	})
	return user, mapStoreErr(err)
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
