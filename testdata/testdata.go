// Package testdata provides embedded EDI sample documents for testing the
// ediparse engine against realistic X12 healthcare and EDIFACT content.
//
// Fixture bodies are grounded in the reference Python implementation's own
// sample data (docs/parser.py's SAMPLE_835/SAMPLE_837), trimmed and
// adjusted field-for-field to satisfy this module's grammar catalog so the
// happy-path fixtures parse with zero diagnostics.
package testdata

import (
	"embed"
	"fmt"
	"path"
)

//go:embed *.edi malformed/*.edi
var FS embed.FS

// Fixture file names.
const (
	FileX12_835       = "x12_835.edi"
	FileX12_837       = "x12_837.edi"
	FileEDIFACTOrders = "edifact_orders.edi"
	FileMissingBPR    = "malformed/missing_bpr.edi"
	FileBadCount      = "malformed/bad_count.edi"
	FileUnterminated  = "malformed/unterminated.edi"
	FileEmpty         = "malformed/empty.edi"
)

// LoadX12_835 loads a minimal, internally consistent X12 835 (Health Care
// Claim Payment/Advice) document: one interchange, one functional group,
// one transaction set with two claims each carrying one service line.
func LoadX12_835() ([]byte, error) {
	return FS.ReadFile(FileX12_835)
}

// LoadX12_837 loads a minimal, internally consistent X12 837 (Health Care
// Claim, professional) document: one interchange, one functional group,
// one transaction set with a single HL billing-provider loop carrying one
// claim and one service line.
func LoadX12_837() ([]byte, error) {
	return FS.ReadFile(FileX12_837)
}

// LoadEDIFACTOrders loads a minimal EDIFACT ORDERS (D96A) document with an
// explicit UNA service string advice, one UNH message, and two NAD party
// segments.
func LoadEDIFACTOrders() ([]byte, error) {
	return FS.ReadFile(FileEDIFACTOrders)
}

// LoadMissingBPR loads the X12 835 fixture with its mandatory BPR segment
// removed, exercising the missing-mandatory-segment diagnostic path.
func LoadMissingBPR() ([]byte, error) {
	return FS.ReadFile(FileMissingBPR)
}

// LoadBadCount loads the X12 835 fixture with SE01 corrupted to a value
// that does not match the enclosed segment count, exercising the
// transaction-set count-mismatch diagnostic path.
func LoadBadCount() ([]byte, error) {
	return FS.ReadFile(FileBadCount)
}

// LoadUnterminated loads the X12 835 fixture with its final segment
// terminator removed, exercising the recoverable unterminated-segment
// diagnostic path.
func LoadUnterminated() ([]byte, error) {
	return FS.ReadFile(FileUnterminated)
}

// LoadEmpty loads a zero-byte document, exercising the empty-input
// boundary case.
func LoadEmpty() ([]byte, error) {
	return FS.ReadFile(FileEmpty)
}

// LoadFile loads any fixture by name from the embedded filesystem.
func LoadFile(name string) ([]byte, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("loading test file %s: %w", name, err)
	}
	return data, nil
}

// MustLoad loads a fixture and panics on error. Useful for test setup
// where failure should halt the test.
func MustLoad(name string) []byte {
	data, err := LoadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// ListFiles returns the names of every embedded fixture, valid and
// malformed alike.
func ListFiles() ([]string, error) {
	var files []string

	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			subEntries, err := FS.ReadDir(entry.Name())
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", entry.Name(), err)
			}
			for _, subEntry := range subEntries {
				if !subEntry.IsDir() {
					files = append(files, path.Join(entry.Name(), subEntry.Name()))
				}
			}
		} else {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// ListMalformedFiles returns the names of the malformed fixtures.
func ListMalformedFiles() ([]string, error) {
	entries, err := FS.ReadDir("malformed")
	if err != nil {
		return nil, fmt.Errorf("reading malformed directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, path.Join("malformed", entry.Name()))
		}
	}

	return files, nil
}

// ListValidFiles returns the names of the well-formed fixtures.
func ListValidFiles() ([]string, error) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
