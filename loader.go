package pulley

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadLedger opens and decodes a ledger file. A missing file is not an
// error: it returns an empty ledger so a fresh workspace works without
// any setup.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger persists the ledger to a file, creating parent directories
// as needed.
func SaveLedger(path string, ledger *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer file.Close()

	return EncodeLedger(file, ledger)
}

// LoadClients opens and decodes a client book file. A missing file
// returns an empty book.
func LoadClients(path string) (*ClientBook, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewClientBook(), nil
		}
		return nil, fmt.Errorf("could not open clients file %q: %w", path, err)
	}
	defer f.Close()

	book, err := DecodeClients(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode clients file %q: %w", path, err)
	}
	return book, nil
}

// SaveClients persists the client book to a file.
func SaveClients(path string, book *ClientBook) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for clients %q: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening clients file %q for writing: %w", path, err)
	}
	defer file.Close()

	return EncodeClients(file, book)
}

// LoadSettings opens and decodes a settings file. A missing file returns
// the built-in defaults.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("could not open settings file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeSettings(f)
	if err != nil {
		return Settings{}, fmt.Errorf("could not decode settings file %q: %w", path, err)
	}
	return s, nil
}

// SaveSettings persists the settings to a file.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for settings %q: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening settings file %q for writing: %w", path, err)
	}
	defer file.Close()

	return EncodeSettings(file, s)
}
