// Package credstore persists the user's federated password in the OS
// keyring (Keychain on macOS, Credential Manager on Windows, Secret Service
// on Linux), so the CLI never writes it to disk in the clear.
package credstore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/secret"
)

// ErrCredentialNotFound is returned by Get when no password is stored for
// the given username.
var ErrCredentialNotFound = errors.New("credential not found in OS keyring")

// Keyring abstracts the OS keyring for testing
type Keyring interface {
	Set(service, user, password string) error
	Get(service, user string) (string, error)
	Delete(service, user string) error
}

// systemKeyring is the default keyring implementation
type systemKeyring struct{}

func (systemKeyring) Set(service, user, password string) error {
	return keyring.Set(service, user, password)
}
func (systemKeyring) Get(service, user string) (string, error) {
	return keyring.Get(service, user)
}
func (systemKeyring) Delete(service, user string) error {
	return keyring.Delete(service, user)
}

// Store reads and writes passwords keyed by service name and username.
type Store struct {
	service string
	keyring Keyring
}

// New creates a store bound to the given keyring service name.
func New(service string) *Store {
	return &Store{
		service: service,
		keyring: systemKeyring{},
	}
}

// WithKeyring swaps the keyring implementation, for tests.
func (s *Store) WithKeyring(k Keyring) *Store {
	s.keyring = k
	return s
}

// Set stores the password for username. The buffer is consumed: it is wiped
// before Set returns, whether storage succeeded or not. The keyring API
// takes a string, whose copy cannot be wiped; that copy is owned by the OS
// secret service from this point on.
func (s *Store) Set(username string, password *secret.Buffer) error {
	defer password.Wipe()

	if err := s.keyring.Set(s.service, username, string(password.Bytes())); err != nil {
		return fmt.Errorf("storing credential for %s: %w", username, err)
	}
	return nil
}

// Get retrieves the stored password for username as a wipeable buffer.
func (s *Store) Get(username string) (*secret.Buffer, error) {
	value, err := s.keyring.Get(s.service, username)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCredentialNotFound, username)
		}
		return nil, fmt.Errorf("loading credential for %s: %w", username, err)
	}
	return secret.FromString(value), nil
}

// Clear removes the stored password for username. Clearing an absent entry
// is not an error.
func (s *Store) Clear(username string) error {
	if err := s.keyring.Delete(s.service, username); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("clearing credential for %s: %w", username, err)
	}
	return nil
}
