// Package backup keeps rolling snapshots of the journal store next to it.
// SQLite stores are snapshotted with VACUUM INTO; JSON stores are copied and
// checked for well-formed JSON.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/logger"
)

// stampLayout is embedded in every backup file name.
const stampLayout = "20060102-150405"

// Info describes one backup file.
type Info struct {
	Name      string
	Path      string
	Timestamp time.Time
	Size      int64

	seq int
}

// Manager creates, lists, rotates and restores backups of one store file.
type Manager struct {
	storePath string
	dir       string
	ext       string
	keep      int
	clock     func() time.Time
}

// NewManager returns a manager writing to a backups directory beside
// storePath. Backup files share the store's extension.
func NewManager(storePath string) *Manager {
	ext := strings.ToLower(filepath.Ext(storePath))
	if ext == "" {
		ext = ".db"
	}
	return &Manager{
		storePath: storePath,
		dir:       filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		ext:       ext,
		keep:      constants.MaxBackups,
		clock:     time.Now,
	}
}

// Dir returns the backup directory.
func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) isJSON() bool {
	return m.ext == ".json"
}

// Create writes a new backup and prunes the oldest beyond the retention
// limit. Rotation failures are logged, not returned.
func (m *Manager) Create() (Info, error) {
	info, err := m.create()
	if err != nil {
		return Info{}, err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "dir", m.dir, "error", err)
	}
	return info, nil
}

func (m *Manager) create() (Info, error) {
	if _, err := os.Stat(m.storePath); err != nil {
		if os.IsNotExist(err) {
			return Info{}, apperrors.NewNotFound("store", m.storePath)
		}
		return Info{}, fmt.Errorf("failed to stat store: %w", err)
	}
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return Info{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, stamp, err := m.nextPath()
	if err != nil {
		return Info{}, err
	}
	if m.isJSON() {
		err = copyFile(m.storePath, path)
	} else {
		err = vacuumInto(m.storePath, path)
	}
	if err != nil {
		os.Remove(path)
		return Info{}, fmt.Errorf("failed to back up %s: %w", m.storePath, err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat backup: %w", err)
	}
	logger.Info("Created backup", "path", path, "size", st.Size())
	return Info{Name: filepath.Base(path), Path: path, Timestamp: stamp, Size: st.Size()}, nil
}

// nextPath picks laughmeter-YYYYMMDD-HHMMSS[-N]<ext> that does not exist yet.
func (m *Manager) nextPath() (string, time.Time, error) {
	now := m.clock().Local()
	base := constants.BackupFilePrefix + now.Format(stampLayout)
	for n := 0; n < 100; n++ {
		name := base + m.ext
		if n > 0 {
			name = fmt.Sprintf("%s-%d%s", base, n, m.ext)
		}
		path := filepath.Join(m.dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, now.Truncate(time.Second), nil
		}
	}
	return "", time.Time{}, fmt.Errorf("failed to generate unique backup filename in %s", m.dir)
}

// parseName extracts the timestamp and collision counter from a backup
// file name.
func (m *Manager) parseName(name string) (time.Time, int, bool) {
	rest, ok := strings.CutPrefix(name, constants.BackupFilePrefix)
	if !ok {
		return time.Time{}, 0, false
	}
	rest, ok = strings.CutSuffix(rest, m.ext)
	if !ok || len(rest) < len(stampLayout) {
		return time.Time{}, 0, false
	}
	seq := 0
	if tail := rest[len(stampLayout):]; tail != "" {
		counter, ok := strings.CutPrefix(tail, "-")
		if !ok {
			return time.Time{}, 0, false
		}
		n, err := strconv.Atoi(counter)
		if err != nil || n < 1 {
			return time.Time{}, 0, false
		}
		seq = n
	}
	ts, err := time.ParseInLocation(stampLayout, rest[:len(stampLayout)], time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}
	return ts, seq, true
}

// List returns backups newest first. A missing directory means no backups.
func (m *Manager) List() ([]Info, error) {
	dirEntries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ts, seq, ok := m.parseName(de.Name())
		if !ok {
			continue
		}
		fi, err := de.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Name:      de.Name(),
			Path:      filepath.Join(m.dir, de.Name()),
			Timestamp: ts,
			Size:      fi.Size(),
			seq:       seq,
		})
	}

	slices.SortFunc(backups, func(a, b Info) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return b.seq - a.seq
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), m.keep):] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Name, err)
		}
		logger.Debug("Removed old backup", "name", old.Name)
	}
	return nil
}

// Resolve accepts a backup file name or a path and returns its path.
func (m *Manager) Resolve(nameOrPath string) string {
	if strings.ContainsRune(nameOrPath, os.PathSeparator) {
		return nameOrPath
	}
	return filepath.Join(m.dir, nameOrPath)
}

// Restore replaces the store with a verified backup. The current store, if
// any, is saved first as a backup exempt from rotation; its info is
// returned so callers can report it.
func (m *Manager) Restore(nameOrPath string) (*Info, error) {
	src := m.Resolve(nameOrPath)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFound("backup", nameOrPath)
		}
		return nil, fmt.Errorf("failed to stat backup: %w", err)
	}
	if err := m.Verify(src); err != nil {
		return nil, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var safety *Info
	if _, err := os.Stat(m.storePath); err == nil {
		info, err := m.create()
		if err != nil {
			return nil, fmt.Errorf("failed to back up current store before restore: %w", err)
		}
		safety = &info
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(src, tmp); err != nil {
		os.Remove(tmp)
		return safety, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary restore file", "path", tmp, "error", rmErr)
		}
		return safety, fmt.Errorf("failed to restore store: %w", err)
	}
	logger.Info("Restored backup", "from", src, "to", m.storePath)
	return safety, nil
}

// Verify checks that path is a readable store of the manager's kind.
func (m *Manager) Verify(path string) error {
	if m.isJSON() {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(raw) {
			return apperrors.NewInvalidInput("%s is not valid JSON", filepath.Base(path))
		}
		return nil
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	var result string
	if err := db.QueryRow("PRAGMA quick_check").Scan(&result); err != nil {
		return err
	}
	if result != "ok" {
		return apperrors.NewInvalidInput("integrity check failed: %s", result)
	}
	return nil
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&n); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		logger.Debug("VACUUM INTO failed, falling back to file copy", "error", err)
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
