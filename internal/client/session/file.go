package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const tokenFileName = "token.json"

// tokenFile is the on-disk layout of the durable tier.
type tokenFile struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	SavedAt   time.Time `json:"saved_at"`
}

// fileTier stores the token as a JSON file with 0600 permissions.
type fileTier struct {
	path string
}

func newFileTier(dataDir string) *fileTier {
	return &fileTier{path: filepath.Join(dataDir, tokenFileName)}
}

func (f *fileTier) get() string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}
	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return ""
	}
	if !tf.ExpiresAt.IsZero() && time.Now().After(tf.ExpiresAt) {
		return ""
	}
	return tf.Token
}

func (f *fileTier) set(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenFile{
		Token:     token,
		ExpiresAt: tokenExpiry(token),
		SavedAt:   time.Now(),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *fileTier) clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
