package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/julianstephens/laughmeter/internal/models"
	"github.com/julianstephens/laughmeter/internal/storage/sqlite"
)

// JSONSuffix selects the single-file JSON backend.
const JSONSuffix = ".json"

// New returns the backend for path: JSON when it ends in .json, SQLite
// otherwise. The store is not opened; call Init or Load.
func New(path string) Provider {
	path = ExpandPath(path)
	if IsJSONPath(path) {
		return NewJSONStore(path)
	}
	return sqlite.NewStore(path)
}

// IsJSONPath reports whether path selects the JSON backend.
func IsJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), JSONSuffix)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// SortNewestFirst orders entries by timestamp descending, breaking ties by
// ID so listings are stable.
func SortNewestFirst(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].ID > entries[j].ID
	})
}
