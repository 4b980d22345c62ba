package pulley

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes entries from a stream of JSONL data, one entry per
// line. Every decoded entry is revalued from its stored inputs, so derived
// amounts in a data file can never diverge from the quantities and rates
// they were computed from.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var e Entry
		if err := json.Unmarshal(lineBytes, &e); err != nil {
			return nil, fmt.Errorf("could not decode entry on line %d: %w", line, err)
		}
		if err := ledger.Append(e.Revalue()); err != nil {
			return nil, fmt.Errorf("could not append entry on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeEntry marshals a single entry to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEntry(w io.Writer, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry %q: %w", e.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", e.ID, err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, one
// entry per line, in insertion order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, e := range ledger.Entries() {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeClients decodes a client book from a stream of JSONL data, one
// client per line.
func DecodeClients(r io.Reader) (*ClientBook, error) {
	book := NewClientBook()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var c Client
		if err := json.Unmarshal(lineBytes, &c); err != nil {
			return nil, fmt.Errorf("could not decode client on line %d: %w", line, err)
		}
		if err := book.Add(c); err != nil {
			return nil, fmt.Errorf("could not add client on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return book, nil
}

// EncodeClients persists the client book in JSONL format, sorted by name.
func EncodeClients(w io.Writer, book *ClientBook) error {
	for c := range book.All() {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal client %q: %w", c.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write client %q: %w", c.ID, err)
		}
	}
	return nil
}

// DecodeSettings decodes a settings object from JSON.
func DecodeSettings(r io.Reader) (Settings, error) {
	var s Settings
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("could not decode settings: %w", err)
	}
	return s, nil
}

// EncodeSettings persists the settings as indented JSON.
func EncodeSettings(w io.Writer, s Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}
	return nil
}
