package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// suiteFile is the on-disk structure for a check suite (YAML or JSON).
type suiteFile struct {
	Version string       `json:"version" yaml:"version"`
	Checks  []Definition `json:"checks" yaml:"checks"`
}

// Suite holds a collection of check definitions. It is safe for
// concurrent use.
type Suite struct {
	mu      sync.RWMutex
	checks  []Definition
	sources []string
}

// New creates an empty suite.
func New() *Suite {
	return &Suite{}
}

// Add registers definitions programmatically. Each definition is
// validated by building its predicate; the first invalid definition
// aborts the call.
func (s *Suite) Add(defs ...Definition) error {
	for _, def := range defs {
		if _, err := Build(def); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = append(s.checks, defs...)
	return nil
}

// LoadFile loads check definitions from a .yaml/.yml or .json file.
// Every definition is validated at load time so that malformed checks
// are rejected before any evaluation runs.
func (s *Suite) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read suite file %s: %w", path, err)
	}

	var file suiteFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse suite file %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse suite file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("suite file %s: unsupported extension", path)
	}

	for i := range file.Checks {
		if _, err := Build(file.Checks[i]); err != nil {
			return fmt.Errorf("suite file %s: %w", path, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = append(s.checks, file.Checks...)
	s.sources = append(s.sources, path)
	return nil
}

// LoadDir loads all .yaml, .yml and .json suite files from a
// directory. It does not recurse into subdirectories.
func (s *Suite) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read suite directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}
		if err := s.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Checks returns a copy of the loaded definitions.
func (s *Suite) Checks() []Definition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Definition, len(s.checks))
	copy(out, s.checks)
	return out
}

// Sources returns the paths the suite was loaded from.
func (s *Suite) Sources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.sources))
	copy(out, s.sources)
	return out
}
