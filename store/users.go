package store

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/omarkhayat/nutrigo"
)

// Users is the user directory and session holder. Avatars come from the
// assistant on a best-effort basis; a nil generator disables them entirely.
type Users struct {
	kv      nutrigo.KeyValueStore
	avatars nutrigo.AvatarGenerator
	l       nutrigo.Logger
}

func NewUsers(kv nutrigo.KeyValueStore, avatars nutrigo.AvatarGenerator, logger nutrigo.Logger) *Users {
	if logger == nil {
		logger = nutrigo.NopLogger{}
	}
	return &Users{kv: kv, avatars: avatars, l: logger}
}

// Signup creates a new account. Usernames are unique case-insensitively.
// Avatar generation failure is swallowed: the account is created without one
// and login retries later.
func (s *Users) Signup(ctx context.Context, username, password string) (nutrigo.User, error) {
	var users []nutrigo.User
	load(s.kv, nutrigo.KeyUsers, &users, s.l)

	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return nutrigo.User{}, nutrigo.ErrDuplicateUsername
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nutrigo.User{}, err
	}

	user := nutrigo.User{
		ID:           nutrigo.NewID(),
		Username:     username,
		PasswordHash: string(hash),
		Avatar:       s.generateAvatar(ctx, username),
	}

	users = append(users, user)
	if err := save(s.kv, nutrigo.KeyUsers, users, s.l); err != nil {
		return nutrigo.User{}, err
	}
	return user, nil
}

// Login checks credentials against the directory. A user that still lacks an
// avatar gets one more generation attempt, persisted on success and ignored
// on failure.
func (s *Users) Login(ctx context.Context, username, password string) (nutrigo.User, error) {
	var users []nutrigo.User
	load(s.kv, nutrigo.KeyUsers, &users, s.l)

	for i, u := range users {
		if !strings.EqualFold(u.Username, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}

		if u.Avatar == "" {
			if avatar := s.generateAvatar(ctx, u.Username); avatar != "" {
				users[i].Avatar = avatar
				u.Avatar = avatar
				if err := save(s.kv, nutrigo.KeyUsers, users, s.l); err != nil {
					s.l.Warn("could not persist backfilled avatar", "user", u.Username, "error", err)
				}
			}
		}
		return u, nil
	}

	return nutrigo.User{}, nutrigo.ErrInvalidCredentials
}

func (s *Users) generateAvatar(ctx context.Context, seed string) string {
	if s.avatars == nil {
		return ""
	}
	avatar, err := s.avatars.GenerateAvatar(ctx, seed)
	if err != nil {
		s.l.Warn("avatar generation failed, continuing without", "seed", seed, "error", err)
		return ""
	}
	return avatar
}

// CurrentSession returns the logged-in user, or ok=false when nobody is.
func (s *Users) CurrentSession() (nutrigo.User, bool) {
	raw, err := s.kv.Get(nutrigo.KeyCurrentUser)
	if err != nil || raw == nil {
		return nutrigo.User{}, false
	}
	var u nutrigo.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.l.Warn("corrupt session record, treating as logged out", "error", err)
		return nutrigo.User{}, false
	}
	return u, true
}

func (s *Users) SetCurrentSession(u nutrigo.User) error {
	return save(s.kv, nutrigo.KeyCurrentUser, u, s.l)
}

func (s *Users) ClearCurrentSession() error {
	return s.kv.Remove(nutrigo.KeyCurrentUser)
}
