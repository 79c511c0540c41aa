// Package authstore implements the simulated sign-in layer. There is no
// identity provider behind it: every call waits out an artificial network
// delay and then accepts any well-formed credentials, creating a fresh user
// record. The only checks are email format and minimum password length.
package authstore

import (
	"context"
	"errors"
	"log"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultDelay approximates one network round trip to a login provider.
const DefaultDelay = time.Second

// Store holds the single current user. At most one user is signed in; any
// login/register/social-login call replaces it.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	delay   time.Duration
	current *models.User
}

// New restores any remembered user from storage. A value that fails to
// parse is discarded and removed. delay <= 0 selects DefaultDelay.
func New(st storage.Store, delay time.Duration) *Store {
	if delay <= 0 {
		delay = DefaultDelay
	}
	s := &Store{storage: st, delay: delay}

	var saved models.User
	err := st.Get(storage.KeyCurrentUser, &saved)
	switch {
	case err == nil:
		s.current = &saved
	case errors.Is(err, storage.ErrNotFound):
		// nobody remembered
	default:
		log.Printf("WARNING: failed to parse stored user, resetting: %v", err)
		_ = st.Remove(storage.KeyCurrentUser)
	}
	return s
}

// Login signs the shopper in after the simulated delay. It returns false
// (not an error) when the email format is bad or the password is shorter
// than 6 characters. The user is persisted only when remember is set.
func (s *Store) Login(ctx context.Context, email, password string, remember bool) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	if !emailPattern.MatchString(email) || len(password) < minPasswordLen {
		return false, nil
	}

	user := models.User{
		ID:    "user-" + uuid.NewString(),
		Name:  localPart(email),
		Email: email,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	if remember {
		s.persist(user)
	}
	return true, nil
}

// Register creates an account after the simulated delay, with the same
// validation as Login. The name falls back to the email's local part. The
// new user is always persisted.
func (s *Store) Register(ctx context.Context, email, password, name string) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	if !emailPattern.MatchString(email) || len(password) < minPasswordLen {
		return false, nil
	}
	if name == "" {
		name = localPart(email)
	}

	user := models.User{
		ID:    "user-" + uuid.NewString(),
		Name:  name,
		Email: email,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	s.persist(user)
	return true, nil
}

// SocialLogin signs in with a fixed per-provider identity after the
// simulated delay. Unknown providers return false.
func (s *Store) SocialLogin(ctx context.Context, provider string) (bool, error) {
	var name, email string
	switch provider {
	case "facebook":
		name, email = "Facebook User", "user@facebook.com"
	case "gmail":
		name, email = "Gmail User", "user@gmail.com"
	case "twitter":
		name, email = "Twitter User", "user@twitter.com"
	default:
		return false, nil
	}

	if err := s.wait(ctx); err != nil {
		return false, err
	}

	user := models.User{
		ID:     provider + "-user-" + uuid.NewString(),
		Name:   name,
		Email:  email,
		Avatar: "/placeholder.svg",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	s.persist(user)
	return true, nil
}

// Logout destroys the current user, in memory and in storage. It is the
// only synchronous auth operation.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := s.storage.Remove(storage.KeyCurrentUser); err != nil {
		log.Printf("WARNING: failed to clear stored user: %v", err)
	}
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// wait blocks for the simulated network delay, honoring cancellation.
func (s *Store) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

// persist writes the user record. Callers hold s.mu.
func (s *Store) persist(u models.User) {
	if err := s.storage.Set(storage.KeyCurrentUser, u); err != nil {
		log.Printf("WARNING: failed to persist user: %v", err)
	}
}

func localPart(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}
