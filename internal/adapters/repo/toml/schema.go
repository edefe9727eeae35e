package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Saves   []saveSchema `toml:"saves"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported saves schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type saveSchema struct {
	Slot    string `toml:"slot"`
	SavedAt string `toml:"saved_at"`
	// State is the server blob as JSON text.
	State string `toml:"state"`
}
