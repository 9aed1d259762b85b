// Package levels reads level maps from a filesystem.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lafriks/go-tiled"

	"github.com/younwookim/codewave/internal/infrastructure/config"
	"github.com/younwookim/codewave/internal/infrastructure/tmx"
)

// Loader loads TMX maps from an fs.FS. It takes an fs.FS so callers can pass
// assets.Maps or os.DirFS.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report decoder fallbacks.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{fsys: fsys, logger: log.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadMap parses the map at p. Maps whose layers use base64 or compressed
// data are decoded with go-tiled instead.
func (l *Loader) LoadMap(p string) (*tmx.Map, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", p, err)
	}

	m, err := tmx.ParseBytes(data)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, tmx.ErrUnsupportedEncoding) {
		return nil, fmt.Errorf("load map %s: %w", p, err)
	}

	l.logger.Debug("falling back to go-tiled decoder", "map", p, "reason", err)
	tm, terr := tiled.LoadFile(p, tiled.WithFileSystem(l.fsys))
	if terr != nil {
		return nil, fmt.Errorf("load map %s: %w", p, terr)
	}
	m, err = tmx.FromTiled(tm)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", p, err)
	}
	return m, nil
}

// LoadLevel loads the map of one catalog entry.
func (l *Loader) LoadLevel(level config.LevelConfig) (*tmx.Map, error) {
	m, err := l.LoadMap(level.Map)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", level.Number, err)
	}
	return m, nil
}

// LoadAll loads every level, keyed by level number. It stops at the first
// failure.
func (l *Loader) LoadAll(levels []config.LevelConfig) (map[int]*tmx.Map, error) {
	maps := make(map[int]*tmx.Map, len(levels))
	for _, level := range levels {
		m, err := l.LoadLevel(level)
		if err != nil {
			return nil, err
		}
		maps[level.Number] = m
	}
	return maps, nil
}

// Discover lists the .tmx files directly inside dir, sorted by name with
// numeric runs compared by value so level10 follows level9.
func (l *Loader) Discover(dir string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("discover maps in %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".tmx") {
			continue
		}
		paths = append(paths, path.Join(dir, e.Name()))
	}
	sort.Slice(paths, func(i, j int) bool {
		return naturalLess(paths[i], paths[j])
	})
	return paths, nil
}

func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		da, db := digitPrefix(a), digitPrefix(b)
		if da != "" && db != "" {
			na, nb := strings.TrimLeft(da, "0"), strings.TrimLeft(db, "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			a, b = a[len(da):], b[len(db):]
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func digitPrefix(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}
