package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// stateDirName and stateFileName make up the default persisted
// instance record location under the user's home directory.
const (
	stateDirName  = ".tidb-cloud-zero-mcp"
	stateFileName = "instance.json"
)

// Store persists a Descriptor to disk so a provisioned instance is
// reused across process restarts. The file is owned exclusively by the
// process that wrote it; there is no concurrent-writer protection.
type Store struct {
	path string
}

// NewStore creates a store at path. Empty path means the default
// per-user location.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, stateDirName, stateFileName)
	}
	return &Store{path: path}, nil
}

// Path returns the on-disk location of the instance record.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted instance record. It returns (nil, nil) when
// the file is absent, unreadable, or holds a descriptor that is not
// configured or has expired. A stale record is treated the same as no
// record.
func (s *Store) Load() (*Descriptor, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read instance record: %w", err)
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, nil
	}
	if !d.IsConfigured() || d.IsExpired() {
		return nil, nil
	}
	return &d, nil
}

// Save writes the instance record, creating the parent directory as
// needed. Callers treat failures as non-fatal: a lost record only
// costs a re-provision on the next start.
func (s *Store) Save(d Descriptor) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal instance record: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write instance record: %w", err)
	}
	return nil
}
