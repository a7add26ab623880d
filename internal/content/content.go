// Package content reads corpus files once and serves their text to every
// analysis stage.
package content

import (
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Content is the result of reading a corpus file: either Ok text or
// Unreadable. An Unreadable result has empty Text.
type Content struct {
	Text     string
	Readable bool
}

// Unreadable is the result for a file that could not be read or decoded.
var Unreadable = Content{}

// Ok wraps successfully decoded text.
func Ok(text string) Content {
	return Content{Text: text, Readable: true}
}

// ReadFunc reads the raw bytes of a file.
type ReadFunc func(name string) ([]byte, error)

// Cache memoizes file contents keyed by corpus path.
// It is not safe for concurrent use.
type Cache struct {
	base    string
	read    ReadFunc
	logger  *slog.Logger
	entries map[string]Content
}

// NewCache returns a cache that resolves corpus paths against base.
// A nil logger discards log output.
func NewCache(base string, logger *slog.Logger) *Cache {
	return NewCacheWithReader(base, os.ReadFile, logger)
}

// NewCacheWithReader is NewCache with a custom file reader.
func NewCacheWithReader(base string, read ReadFunc, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{
		base:    base,
		read:    read,
		logger:  logger,
		entries: make(map[string]Content),
	}
}

// Load returns the content of path, reading it on first use. Read and decode
// failures are logged and cached as Unreadable; they never abort the scan.
func (c *Cache) Load(path string) Content {
	if ct, ok := c.entries[path]; ok {
		return ct
	}

	ct := c.load(path)
	c.entries[path] = ct
	return ct
}

// Text returns the text of path, or "" when the file is unreadable.
func (c *Cache) Text(path string) string {
	return c.Load(path).Text
}

func (c *Cache) load(path string) Content {
	data, err := c.read(filepath.Join(c.base, filepath.FromSlash(path)))
	if err != nil {
		c.logger.Debug("unreadable file", slog.String("path", path), slog.String("error", err.Error()))
		return Unreadable
	}
	if !utf8.Valid(data) {
		c.logger.Debug("unreadable file", slog.String("path", path), slog.String("error", "invalid UTF-8"))
		return Unreadable
	}
	return Ok(string(data))
}
