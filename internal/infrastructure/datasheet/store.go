package datasheet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/productassistant/backend/internal/domain"
)

// Store resolves product attributes against a directory of JSON datasheet
// documents. The directory is re-read on every lookup so datasheet edits are
// visible immediately; there is no in-memory index to invalidate.
type Store struct {
	dir string
}

// NewStore creates a datasheet store reading from the given directory
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadAll reads and parses every *.json document in the datasheet directory,
// in directory enumeration order. A missing directory or a malformed document
// fails the whole load.
func (s *Store) LoadAll(ctx context.Context) ([]domain.ProductRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasheetLoad, err)
	}

	var records []domain.ProductRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatasheetLoad, entry.Name(), err)
		}

		var record domain.ProductRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatasheetLoad, entry.Name(), err)
		}

		records = append(records, record)
	}

	return records, nil
}

// FindAttribute resolves (product, attribute) to a formatted value string.
// Designation matching is case-sensitive and exact; attribute name matching
// is case-insensitive and exact. Within a matching record the dimensions
// group is searched first, then properties, performance, logistics and
// specifications in that fixed order.
func (s *Store) FindAttribute(ctx context.Context, product, attribute string) (string, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return "", err
	}

	for _, record := range records {
		if record.Designation != product {
			continue
		}

		if value, ok := searchGroup(record.Dimensions, attribute); ok {
			return value, nil
		}

		for _, group := range [][]domain.AttributeEntry{
			record.Properties,
			record.Performance,
			record.Logistics,
			record.Specifications,
		} {
			if value, ok := searchGroup(group, attribute); ok {
				return value, nil
			}
		}

		// A matching record without the attribute does not end the search;
		// a later record with the same designation may still carry it.
	}

	return "", domain.ErrAttributeNotFound
}

// searchGroup scans a group's entries in order for a case-insensitive name
// match and formats the first hit
func searchGroup(entries []domain.AttributeEntry, attribute string) (string, bool) {
	for _, entry := range entries {
		if strings.EqualFold(entry.Name, attribute) {
			return entry.Format(), true
		}
	}
	return "", false
}
