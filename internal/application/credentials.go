package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/bnema/digital-prison-cli/internal/ports"
)

// CredentialKey is the secret-store key of the game server API key.
const CredentialKey = "digital-prison/gemini_api_key"

type CredentialService struct {
	store ports.SecretStore
}

func NewCredentialService(store ports.SecretStore) *CredentialService {
	return &CredentialService{store: store}
}

// Credential returns the stored API key, or "" when none was set.
func (s *CredentialService) Credential(ctx context.Context) (string, error) {
	value, err := s.store.Get(ctx, CredentialKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load credential: %w", err)
	}

	return value, nil
}

func (s *CredentialService) SetCredential(ctx context.Context, value string) error {
	if err := s.store.Put(ctx, CredentialKey, value); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

func (s *CredentialService) ClearCredential(ctx context.Context) error {
	if err := s.store.Delete(ctx, CredentialKey); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}
