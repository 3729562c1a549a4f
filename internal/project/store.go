package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v6"
	"github.com/spf13/afero"

	"github.com/harbormaster-dev/harbormaster/internal/log"
)

// ErrCorrupt marks a project file that exists but is not a JSON object.
var ErrCorrupt = errors.New("project file is not a JSON object")

// FindRoot returns the root of the git worktree enclosing dir, or dir itself
// when dir is not inside a repository.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			log.Debugf("no git repository above %s, using it as workspace root", abs)
			return abs, nil
		}
		return "", fmt.Errorf("open repository at %s: %w", abs, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		log.Debugf("repository at %s has no worktree: %v", abs, err)
		return abs, nil
	}
	return wt.Filesystem.Root(), nil
}

// Store reads and writes the project object of one workspace.
type Store struct {
	fs     afero.Fs
	root   string
	file   string
	legacy string
}

// NewStore binds a store to root. file and legacy are relative to root.
func NewStore(fs afero.Fs, root, file, legacy string) *Store {
	return &Store{fs: fs, root: root, file: file, legacy: legacy}
}

func (s *Store) Root() string { return s.root }

// Path is the absolute location of the project file.
func (s *Store) Path() string { return filepath.Join(s.root, s.file) }

func (s *Store) legacyPath() string { return filepath.Join(s.root, s.legacy) }

// Exists reports whether the project file is present.
func (s *Store) Exists() (bool, error) {
	return afero.Exists(s.fs, s.Path())
}

// Read returns the project object. A missing file reads as an empty object.
func (s *Store) Read() (map[string]any, error) {
	return readObject(s.fs, s.Path())
}

func readObject(fs afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrCorrupt, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrCorrupt)
	}
	return raw, nil
}

// Write stores raw as indented JSON, replacing the file atomically.
func (s *Store) Write(raw map[string]any) error {
	path := s.Path()
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	log.Debugf("wrote %s", path)
	return nil
}

// Update reads the object, applies fn and writes the result.
func (s *Store) Update(fn func(map[string]any) map[string]any) (map[string]any, error) {
	raw, err := s.Read()
	if err != nil {
		return nil, err
	}
	next := fn(raw)
	if err := s.Write(next); err != nil {
		return nil, err
	}
	return next, nil
}

// MigrateLegacy moves the legacy project file to the current location when
// only the legacy one exists. It reports whether a migration happened.
func (s *Store) MigrateLegacy() (bool, error) {
	if s.legacy == "" || s.legacy == s.file {
		return false, nil
	}
	if exists, err := s.Exists(); err != nil || exists {
		return false, err
	}
	legacy := s.legacyPath()
	exists, err := afero.Exists(s.fs, legacy)
	if err != nil || !exists {
		return false, err
	}

	raw, err := readObject(s.fs, legacy)
	if err != nil {
		return false, err
	}
	if err := s.Write(raw); err != nil {
		return false, err
	}
	if err := s.fs.Remove(legacy); err != nil {
		return true, fmt.Errorf("remove %s: %w", legacy, err)
	}
	log.Infof("migrated %s to %s", legacy, s.Path())
	return true, nil
}
