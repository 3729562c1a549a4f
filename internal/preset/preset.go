package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/harbormaster-dev/harbormaster/internal/accent"
	"github.com/harbormaster-dev/harbormaster/internal/log"
)

var ErrNotFound = errors.New("preset not found")

// file is the on-disk layout: preset name to flattened accent fields.
type file struct {
	Presets map[string]map[string]any `yaml:"presets"`
}

// Store keeps named accent presets in a single YAML file.
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

func (s *Store) Path() string { return s.path }

func (s *Store) load() (file, error) {
	f := file{Presets: map[string]map[string]any{}}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if f.Presets == nil {
		f.Presets = map[string]map[string]any{}
	}
	return f, nil
}

func (s *Store) save(f file) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(s.path), err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("preset name must not be empty")
	}
	return name, nil
}

// Save stores the reusable part of cfg under name, replacing any preset with
// the same name.
func (s *Store) Save(name string, cfg accent.Config) error {
	name, err := validName(name)
	if err != nil {
		return err
	}
	p := accent.PresetOf(cfg)
	if p.IsEmpty() {
		return fmt.Errorf("preset %q would be empty", name)
	}

	f, err := s.load()
	if err != nil {
		return err
	}
	f.Presets[name] = accent.Flatten(p)
	if err := s.save(f); err != nil {
		return err
	}
	log.Debugf("saved preset %q to %s", name, s.path)
	return nil
}

// Get returns the preset named name.
func (s *Store) Get(name string) (accent.Config, error) {
	f, err := s.load()
	if err != nil {
		return accent.Config{}, err
	}
	raw, ok := f.Presets[strings.TrimSpace(name)]
	if !ok {
		return accent.Config{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return accent.PresetOf(accent.Normalize(raw)), nil
}

// List returns preset names in lexical order.
func (s *Store) List() ([]string, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	names := maps.Keys(f.Presets)
	slices.Sort(names)
	return names, nil
}

func (s *Store) Delete(name string) error {
	f, err := s.load()
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if _, ok := f.Presets[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(f.Presets, name)
	return s.save(f)
}
