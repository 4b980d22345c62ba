// Package pulley provides the ledger and valuation engine behind a small
// manufacturing stock tracker. Stock-keeping units ("pulleys") are identified
// by their physical specification (diameter, grooves, section, type), and
// every inward or outward movement is recorded as a priced, immutable entry
// in a ledger.
//
// The core functionalities include:
//   - Valuation: turning a raw transaction draft into a fully priced entry
//     (machine cost, bore cost, total) through a single factory, so derived
//     amounts can never drift from their inputs.
//   - Ledger Management: an ordered, id-indexed store of committed entries
//     with append, replace and delete; the single source of truth for every
//     derived view.
//   - Stock Projection: the hypothetical balance of a specification if a
//     not-yet-committed movement were applied, with support for excluding an
//     entry being edited.
//   - Aggregation: monthly tallies grouped by specification, client
//     statements with deterministic invoice identifiers, and activity
//     overviews.
//   - Data Persistence: encoding and decoding the ledger, clients and
//     settings to human-readable, version-controllable formats (JSONL).
//
// This package serves as the foundational logic for the `pmc` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package pulley
