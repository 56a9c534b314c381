package sitemaster

import (
	"sort"
	"strings"
	"time"

	"github.com/sitemasterhq/sitemaster/internal/validation"
	"github.com/sitemasterhq/sitemaster/types"
)

// MaterialInput carries the fields for creating a material. Image is an
// opaque pre-encoded payload supplied by an external capture collaborator.
type MaterialInput struct {
	Name     string
	Price    float64
	Location string
	Image    string
}

// AddMaterial appends a new material to the purchase ledger.
func (s *Store) AddMaterial(in MaterialInput) (types.Material, error) {
	name := validation.CleanText(in.Name)
	if name == "" {
		return types.Material{}, errRequired("name")
	}

	var created types.Material
	err := s.mutate(func(doc *types.Document) error {
		created = types.Material{
			ID:       s.nextID(),
			Name:     name,
			Price:    validation.NonNegative(in.Price),
			Location: vendorOrDefault(in.Location),
			Image:    in.Image,
			Date:     s.now().UTC().Format(time.RFC3339),
		}
		doc.Materials = append(doc.Materials, created)
		return nil
	})
	return created, err
}

// UpdateMaterial merges the patch into the material with the given id.
// Fields absent from the patch keep their current values, so editing the
// text fields never drops an attached image.
func (s *Store) UpdateMaterial(id int64, patch types.MaterialPatch) (types.Material, error) {
	var updated types.Material
	err := s.mutate(func(doc *types.Document) error {
		i := indexMaterial(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		m := &doc.Materials[i]
		if patch.Name != nil {
			name := validation.CleanText(*patch.Name)
			if name == "" {
				return errRequired("name")
			}
			m.Name = name
		}
		if patch.Price != nil {
			m.Price = validation.NonNegative(*patch.Price)
		}
		if patch.Location != nil {
			m.Location = vendorOrDefault(*patch.Location)
		}
		if patch.Image != nil {
			m.Image = *patch.Image
		}
		updated = *m
		return nil
	})
	return updated, err
}

// RemoveMaterial deletes the material with the given id. A no-op if the id
// is not present.
func (s *Store) RemoveMaterial(id int64) error {
	return s.mutate(func(doc *types.Document) error {
		out := doc.Materials[:0]
		for _, m := range doc.Materials {
			if m.ID != id {
				out = append(out, m)
			}
		}
		doc.Materials = out
		return nil
	})
}

// ListMaterials returns the ledger view: materials matching the search term
// (case-insensitive substring on name or vendor), ordered oldest first by
// creation timestamp. Legacy entries without a timestamp order by id, which
// is a monotonically increasing surrogate for creation order.
func (s *Store) ListMaterials(search string) []types.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]types.Material, 0, len(s.doc.Materials))
	for _, m := range s.doc.Materials {
		if term == "" ||
			strings.Contains(strings.ToLower(m.Name), term) ||
			strings.Contains(strings.ToLower(m.Location), term) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ledgerKey(out[i]) < ledgerKey(out[j])
	})
	return out
}

// MaterialsTotal sums the prices of the materials matching the search term.
func (s *Store) MaterialsTotal(search string) float64 {
	var total float64
	for _, m := range s.ListMaterials(search) {
		total += m.Price
	}
	return total
}

// ledgerKey is the chronological sort key: the creation timestamp when
// present, otherwise the id (also wall-clock millisecond derived).
func ledgerKey(m types.Material) int64 {
	if m.Date != "" {
		if t, err := time.Parse(time.RFC3339, m.Date); err == nil {
			return t.UnixMilli()
		}
	}
	return m.ID
}

func indexMaterial(doc *types.Document, id int64) int {
	for i, m := range doc.Materials {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func vendorOrDefault(v string) string {
	v = validation.CleanText(v)
	if v == "" {
		return types.UnspecifiedVendor
	}
	return v
}
