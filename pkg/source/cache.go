package source

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rosterctl/pkg/roster"
)

// cacheDuration determines how long a parsed roster is reused
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Roster    *roster.Roster `json:"roster"`
}

// cacheKey identifies an export by its content, so the same file fetched
// from different places shares one entry.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func getCachePath(key string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".rosterctl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, key+".json"), nil
}

// readCache checks if a valid, unexpired parse result exists for this export
func readCache(text string) (*roster.Roster, bool) {
	path, err := getCachePath(cacheKey(text))
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Roster == nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Roster, true
}

// writeCache saves the parse result to disk
func writeCache(text string, r *roster.Roster) {
	path, err := getCachePath(cacheKey(text))
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Roster:    r,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
