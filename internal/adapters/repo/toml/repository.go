package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/bnema/digital-prison-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	SavesPathKey    = "saves.path"
	savesFileMode   = 0o600
	savesDirMode    = 0o700
	ConfigDir       = ".digital-prison"
	savesConfigFile = "saves.toml"
	tempFilePattern = ".saves-*.toml.tmp"
)

// Repository keeps save slots in a single TOML file.
type Repository struct {
	savesPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SaveStore = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, ConfigDir, savesConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ConfigDir))
	cfg.SetDefault(SavesPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	savesPath := cfg.GetString(SavesPathKey)
	if savesPath == "" {
		return nil, errors.New("saves path is empty")
	}
	savesPath, err = normalizeSavesPath(savesPath)
	if err != nil {
		return nil, err
	}

	return &Repository{savesPath: savesPath, mu: lockForPath(savesPath)}, nil
}

func (r *Repository) Path() string {
	return r.savesPath
}

func (r *Repository) Put(ctx context.Context, record domain.SaveRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(record.Slot) == "" {
		return errors.New("save slot is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(record)
	updated := false
	for i := range file.Saves {
		if file.Saves[i].Slot == encoded.Slot {
			file.Saves[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Saves = append(file.Saves, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Get(ctx context.Context, slot string) (domain.SaveRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SaveRecord{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.SaveRecord{}, err
	}

	for _, entry := range file.Saves {
		if entry.Slot == slot {
			return fromSchema(entry), nil
		}
	}

	return domain.SaveRecord{}, domain.ErrNoSavedState
}

func (r *Repository) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Saves[:0]
	for _, entry := range file.Saves {
		if entry.Slot != slot {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Saves) {
		return nil
	}
	file.Saves = kept

	return r.writeSchema(file)
}

// readSchema treats a missing file as empty. An undecodable file is reported
// as a malformed save rather than an I/O failure.
func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.savesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read saves file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, &domain.SessionError{
			Kind:    domain.ErrorKindMalformedResponse,
			Op:      "read saves",
			Message: "saves file is corrupted",
			Err:     err,
		}
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeSavesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve saves path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.savesPath), savesDirMode); err != nil {
		return fmt.Errorf("create saves directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode saves file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.savesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp saves file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp saves file: %w", err)
	}

	if err := tempFile.Chmod(savesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp saves file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp saves file: %w", err)
	}

	if err := os.Rename(tempName, r.savesPath); err != nil {
		return fmt.Errorf("replace saves file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.savesPath, savesFileMode); err != nil {
		return fmt.Errorf("chmod saves file: %w", err)
	}

	return nil
}

func toSchema(record domain.SaveRecord) saveSchema {
	return saveSchema{
		Slot:    record.Slot,
		SavedAt: formatTime(record.SavedAt),
		State:   string(record.State),
	}
}

func fromSchema(entry saveSchema) domain.SaveRecord {
	record := domain.SaveRecord{
		Slot:    entry.Slot,
		SavedAt: parseTime(entry.SavedAt),
	}
	if entry.State != "" {
		record.State = domain.SaveBlob(entry.State)
	}

	return record
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
