// Package file provides a flat-file HeroStore implementation.
//
// Layout under the data directory:
//
//	catalog.json    whole catalog as one JSON array, rewritten on every save
//	logs/<id>.txt   append-only narrative log, entries separated by a blank line
//	images/<id>.*   portrait bytes, extension from sniffed content type
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/herodex/herodex/internal/domain/entities"
)

const (
	catalogFile = "catalog.json"
	logsDir     = "logs"
	imagesDir   = "images"
)

// Store persists heroes, narrative logs, and portraits as flat files. No
// locking: single-user single-process usage is assumed.
type Store struct {
	root string
}

// New creates a Store rooted at the given data directory, creating it and its
// subdirectories if needed.
func New(root string) (*Store, error) {
	for _, dir := range []string{root, filepath.Join(root, logsDir), filepath.Join(root, imagesDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	return &Store{root: root}, nil
}

// Root returns the data directory path.
func (s *Store) Root() string {
	return s.root
}

// ImagesDir returns the portrait directory path, for static file serving.
func (s *Store) ImagesDir() string {
	return filepath.Join(s.root, imagesDir)
}

// LoadCatalog reads the full catalog. A missing file is an empty catalog; an
// unparseable file is entities.ErrCorruptCatalog.
func (s *Store) LoadCatalog(_ context.Context) ([]entities.Hero, error) {
	data, err := os.ReadFile(filepath.Join(s.root, catalogFile))
	if os.IsNotExist(err) {
		return []entities.Hero{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var heroes []entities.Hero
	if err := json.Unmarshal(data, &heroes); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrCorruptCatalog, err)
	}

	return heroes, nil
}

// SaveCatalog overwrites the whole catalog. The write goes to a temp file in
// the same directory and is renamed into place, so a crash mid-write cannot
// leave a half-written catalog behind.
func (s *Store) SaveCatalog(_ context.Context, heroes []entities.Hero) error {
	data, err := json.MarshalIndent(heroes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	tmp, err := os.CreateTemp(s.root, catalogFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp catalog: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp catalog: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.root, catalogFile)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing catalog: %w", err)
	}

	return nil
}

// LoadLog returns the full narrative log text for a hero, empty when no log
// exists yet.
func (s *Store) LoadLog(_ context.Context, heroID string) (string, error) {
	data, err := os.ReadFile(s.logPath(heroID))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading narrative log: %w", err)
	}
	return string(data), nil
}

// AppendLog appends an entry plus a separating blank line to the hero's log.
// Log growth is unbounded; the full text is replayed as context on every
// chapter generation.
func (s *Store) AppendLog(_ context.Context, heroID string, entry string) error {
	f, err := os.OpenFile(s.logPath(heroID), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening narrative log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry + "\n\n"); err != nil {
		return fmt.Errorf("appending to narrative log: %w", err)
	}

	return nil
}

// SaveImage persists portrait bytes named by the hero id, picking the file
// extension from the sniffed content type. Bytes that do not look like an
// image are rejected.
func (s *Store) SaveImage(_ context.Context, heroID string, data []byte) (string, error) {
	ext, err := imageExtension(data)
	if err != nil {
		return "", err
	}

	relPath := filepath.Join(imagesDir, heroID+ext)
	if err := os.WriteFile(filepath.Join(s.root, relPath), data, 0644); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}

	return relPath, nil
}

func (s *Store) logPath(heroID string) string {
	return filepath.Join(s.root, logsDir, heroID+".txt")
}

// imageExtension sniffs the content type of image bytes and maps it to a
// file extension.
func imageExtension(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}

	switch contentType := http.DetectContentType(data); contentType {
	case "image/png":
		return ".png", nil
	case "image/jpeg":
		return ".jpg", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("unexpected image content type: %s", contentType)
	}
}
