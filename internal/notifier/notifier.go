// Package notifier delivers desktop notifications through the tray
// companion app. The tray writes a lockfile "port|pid|secret"; we check the
// pid really is the tray and POST the message to its loopback port.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/laughmeter/internal/achievements"
	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/logger"
)

// SecretHeader carries the lockfile secret on every request.
const SecretHeader = "X-Laughmeter-Secret"

// ErrTrayNotRunning means no live tray app could be found.
var ErrTrayNotRunning = errors.New(constants.TrayAppExecutable + " is not running")

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Payload is the body POSTed to the tray.
type Payload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// Notifier sends messages to the tray app.
type Notifier struct {
	client *http.Client
}

func New() *Notifier {
	return &Notifier{client: &http.Client{Timeout: constants.NotifyTimeout}}
}

// Notify sends text to the running tray app.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	lock, err := n.Locate()
	if err != nil {
		return err
	}
	if err := n.send(ctx, lock, Payload{Text: text, DurationMs: constants.NotificationDurationMs}); err != nil {
		return err
	}
	logger.Debug("Notification sent", "port", lock.Port)
	return nil
}

// Locate finds and validates the tray app's lockfile.
func (n *Notifier) Locate() (Lock, error) {
	dir, err := TrayConfigDir()
	if err != nil {
		return Lock{}, err
	}
	return readLock(filepath.Join(dir, constants.NotifierLockfileName))
}

// TrayConfigDir returns the tray's config directory, honouring a custom
// lockfile_dir in its settings.json.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	dir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		return dir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err != nil {
		logger.Warn("Ignoring unreadable tray settings", "error", err)
		return dir, nil
	}
	if custom := store.Settings.LockfileDir; custom != nil && *custom != "" {
		return *custom, nil
	}
	return dir, nil
}

// Lock is a parsed tray lockfile.
type Lock struct {
	Port   int
	PID    int
	Secret string
}

// ParseLock parses "port|pid|secret".
func ParseLock(content string) (Lock, error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 3 {
		return Lock{}, errors.New("lockfile is malformed")
	}
	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Lock{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return Lock{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Lock{}, errors.New("invalid process ID in lockfile")
	}
	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return Lock{}, errors.New("secret in lockfile is empty")
	}
	return Lock{Port: port, PID: pid, Secret: secret}, nil
}

func readLock(path string) (Lock, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Lock{}, ErrTrayNotRunning
	}
	lock, err := ParseLock(string(content))
	if err != nil {
		return Lock{}, err
	}

	process, err := findProcessFunc(lock.PID)
	if err != nil || process == nil {
		return Lock{}, ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayAppExecutable) {
		return Lock{}, fmt.Errorf("process with PID %d is not %s (is %s)", lock.PID, constants.TrayAppExecutable, process.Executable())
	}
	return lock, nil
}

func (n *Notifier) send(ctx context.Context, lock Lock, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("http://127.0.0.1:%d", lock.Port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SecretHeader, lock.Secret)

	res, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", constants.TrayAppExecutable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}

// BadgeMessage is the text announcing a newly unlocked badge.
func BadgeMessage(b achievements.BadgeStatus) string {
	return fmt.Sprintf("%s Achievement unlocked: %s. %s", b.Icon, b.Title, b.Description)
}

// ReminderMessage is the daily nudge, carrying the quote of the day.
func ReminderMessage(quote string) string {
	return "No laughs logged yet today. " + quote
}
