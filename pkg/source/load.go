package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rosterctl/pkg/logger"
	"rosterctl/pkg/roster"
)

// ErrUnsupported is returned for export formats that must be converted to
// CSV before they can be read.
var ErrUnsupported = errors.New("source: unsupported export format")

var binaryExtensions = map[string]bool{
	".xls":  true,
	".xlsx": true,
	".pdf":  true,
}

// ReadFile reads a local export. HTML exports are flattened to text.
func ReadFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if binaryExtensions[ext] {
		return "", fmt.Errorf("%s: %w", path, ErrUnsupported)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open export: %w", err)
	}
	defer f.Close()

	if ext == ".html" || ext == ".htm" {
		return HTMLToText(f)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read export: %w", err)
	}
	return string(data), nil
}

// Load returns the text of ref, which is either a URL or a local path.
func (c *Client) Load(ctx context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return c.Fetch(ctx, ref)
	}
	return ReadFile(ref)
}

// Parse loads ref and extracts its roster. Results are cached by export
// content unless useCache is false.
func (c *Client) Parse(ctx context.Context, ref string, useCache bool) (*roster.Roster, error) {
	log := logger.WithField("source", ref)

	text, err := c.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("bytes", len(text)).Msg("export loaded")

	if useCache {
		if r, ok := readCache(text); ok {
			log.Debug().Msg("using cached roster")
			return r, nil
		}
	}

	r, ok := roster.Parse(text)
	if !ok {
		log.Warn().Msg("course code, subject or student rows missing")
		return nil, fmt.Errorf("%s: %w", ref, roster.ErrUnrecognized)
	}

	log.Debug().
		Str("section", r.Section).
		Str("course", r.CourseCode).
		Int("students", len(r.Students)).
		Int("schedules", len(r.Schedules)).
		Msg("roster parsed")

	if useCache {
		writeCache(text, r)
	}
	return r, nil
}
