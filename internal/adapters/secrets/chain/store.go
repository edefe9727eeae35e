package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/digital-prison-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/digital-prison-cli/internal/adapters/secrets/pass"
	"github.com/bnema/digital-prison-cli/internal/ports"
)

var errNoBackends = errors.New("secret chain has no backends")

// Store tries its backends in order. Reads and writes stop at the first
// backend that succeeds; deletes reach every backend so a cleared key cannot
// resurface from a later one.
type Store struct {
	backends []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(backends ...ports.SecretStore) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend == nil {
			return nil, fmt.Errorf("secret chain backend %d is nil", i)
		}
	}

	return &Store{backends: backends}, nil
}

func NewPassFirstWithFileFallback(credentialsPath string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(credentialsPath))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for i, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextErr(err) {
			return "", err
		}
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	return "", fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for i, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if isContextErr(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

// Delete fails only when no backend could delete the key.
func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	deleted := false
	for i, backend := range s.backends {
		err := backend.Delete(ctx, key)
		if err == nil {
			deleted = true
			continue
		}
		if isContextErr(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	if deleted {
		return nil
	}
	return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
