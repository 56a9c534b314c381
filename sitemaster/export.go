package sitemaster

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sitemasterhq/sitemaster/types"
)

// Backup is the portable envelope around an exported document.
type Backup struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Document  *types.Document `json:"document"`
}

// ExportJSON serializes the whole document into a backup envelope.
func (s *Store) ExportJSON() ([]byte, error) {
	backup := Backup{
		ID:        uuid.New().String(),
		CreatedAt: s.now(),
		Document:  s.Document(),
	}
	return json.MarshalIndent(backup, "", "  ")
}

// ImportJSON replaces the document with an externally supplied backup,
// applying the same merge-over-defaults tolerance as load. Accepts both the
// backup envelope and a bare legacy document. Anything unparseable is
// rejected before merging and the in-memory document stays untouched.
func (s *Store) ImportJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || !bytes.HasPrefix(trimmed, []byte("{")) {
		return ErrMalformedImport
	}

	var envelope Backup
	imported := &types.Document{}
	if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Document != nil {
		imported = envelope.Document
	} else if err := json.Unmarshal(trimmed, imported); err != nil {
		s.log.Warn().Err(err).Msg("rejected malformed backup import")
		return ErrMalformedImport
	}
	imported.Normalize()

	err := s.mutate(func(doc *types.Document) error {
		*doc = *imported
		return nil
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.lastID = maxID(s.doc)
	s.mu.Unlock()
	s.log.Info().Str("backupId", envelope.ID).Msg("imported backup document")
	return nil
}

// MaterialsCSV renders the materials collection as flat tabular text for
// spreadsheet import: one header row, then name, price and vendor per
// entry.
func (s *Store) MaterialsCSV() (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"name", "price", "vendor"}); err != nil {
		return "", err
	}
	for _, m := range s.ListMaterials("") {
		record := []string{m.Name, formatAmount(m.Price), m.Location}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// WorkersCSV renders the crew as flat tabular text: one header row, then
// name, role, daily wage and both running balances per worker.
func (s *Store) WorkersCSV() (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	header := []string{"name", "role", "daily wage", "accumulated wage", "advance payment"}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, worker := range s.ListWorkers() {
		record := []string{
			worker.Name,
			worker.Role,
			formatAmount(worker.Wage),
			formatAmount(worker.AccumulatedWage),
			formatAmount(worker.AdvancePayment),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
