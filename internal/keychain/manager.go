// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for grocer.
// It owns every interaction with the OS credential store. The only secret grocer
// keeps is the API session cookie; everything else lives in plain config.
//
// macOS Keychain, Windows Credential Manager, the freedesktop Secret Service,
// KWallet and pass are used when available. An encrypted file under the XDG
// state dir is the last resort on Linux.
package keychain

import (
	"errors"
	"os"
	"runtime"
	"sync"

	"grocer/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "grocer"

// Keys used for storing secrets in the OS keychain.
const (
	KeySessionCookie = "session_cookie"
)

// PasswordEnv unlocks the file backend without an interactive prompt.
const PasswordEnv = "GROCER_KEYRING_PASSWORD"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("keychain: item not found")

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an already opened keyring. Tests pass
// keyring.NewArrayKeyring here.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring, preferring native backends per platform.
func openRing() (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends(),
		PassPrefix:      ServiceName,
		// Hint prefixes where supported to minimize namespace collisions
		WinCredPrefix:            ServiceName,
		KeychainTrustApplication: true,
		LibSecretCollectionName:  ServiceName,
		KWalletAppID:             ServiceName,
		KWalletFolder:            ServiceName,
	}

	if runtime.GOOS == "linux" {
		dir, err := xdg.StateDir()
		if err != nil {
			return nil, err
		}
		cfg.FileDir = dir
		if pw := os.Getenv(PasswordEnv); pw != "" {
			cfg.FilePasswordFunc = keyring.FixedStringPrompt(pw)
		} else {
			cfg.FilePasswordFunc = keyring.TerminalPrompt
		}
	}

	return keyring.Open(cfg)
}

func allowedBackends() []keyring.BackendType {
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend}
	default:
		return []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}
}

// SaveSessionCookie stores the API session cookie value.
// This method is thread-safe.
func (m *Manager) SaveSessionCookie(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{
		Key:   KeySessionCookie,
		Data:  []byte(value),
		Label: "grocer session",
	})
}

// LoadSessionCookie retrieves the session cookie value.
// Returns ErrNotFound when nothing is stored.
// This method is thread-safe.
func (m *Manager) LoadSessionCookie() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeySessionCookie)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if len(it.Data) == 0 {
		return "", ErrNotFound
	}
	return string(it.Data), nil
}

// ClearSessionCookie removes the stored session cookie. Missing keys are not
// an error.
// This method is thread-safe.
func (m *Manager) ClearSessionCookie() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeySessionCookie); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
