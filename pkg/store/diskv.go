package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv is a Backend storing one file per key under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// Load creates a Diskv backend using the provided config. A nil config is
// read from the environment and config files.
func Load(cfg Config) (*Diskv, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return Open(cfg.BasePath())
}

// Open creates a Diskv backend rooted at basePath.
func Open(basePath string) (*Diskv, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Other processes rewrite the document; reads must hit the disk.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

const tempDir = ".tmp"

// BasePath is the directory holding the stored values.
func (p *Diskv) BasePath() string {
	return p.basePath
}

// PathFor is the file backing key.
func (p *Diskv) PathFor(key string) string {
	pk := keyToPathTransform(key)
	return filepath.Join(append(append([]string{p.basePath}, pk.Path...), pk.FileName)...)
}

func (p *Diskv) Get(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *Diskv) Set(key string, value []byte) error {
	if err := p.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Erase removes key. Missing keys are not an error.
func (p *Diskv) Erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

// Keys lists every stored key.
func (p *Diskv) Keys() []string {
	var keys []string
	for k := range p.d.Keys(nil) {
		if strings.HasPrefix(k, tempDir) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Keys are flat: a key is a file name directly under the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(append(pathKey.Path, pathKey.FileName), "/")
}
