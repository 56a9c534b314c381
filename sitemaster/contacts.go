package sitemaster

import (
	"github.com/sitemasterhq/sitemaster/internal/validation"
	"github.com/sitemasterhq/sitemaster/types"
)

// StoreContactInput carries the fields for a vendor directory entry.
type StoreContactInput struct {
	Name     string
	Location string
	Phone    string
	Note     string
}

// AddStoreContact appends a vendor to the directory.
func (s *Store) AddStoreContact(in StoreContactInput) (types.StoreContact, error) {
	name := validation.CleanText(in.Name)
	if name == "" {
		return types.StoreContact{}, errRequired("name")
	}

	var created types.StoreContact
	err := s.mutate(func(doc *types.Document) error {
		created = types.StoreContact{
			ID:       s.nextID(),
			Name:     name,
			Location: validation.CleanText(in.Location),
			Phone:    validation.CleanText(in.Phone),
			Note:     validation.CleanText(in.Note),
		}
		doc.Stores = append(doc.Stores, created)
		return nil
	})
	return created, err
}

// UpdateStoreContact merges the patch into the vendor with the given id.
func (s *Store) UpdateStoreContact(id int64, patch types.StoreContactPatch) (types.StoreContact, error) {
	var updated types.StoreContact
	err := s.mutate(func(doc *types.Document) error {
		i := indexStoreContact(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		c := &doc.Stores[i]
		if patch.Name != nil {
			name := validation.CleanText(*patch.Name)
			if name == "" {
				return errRequired("name")
			}
			c.Name = name
		}
		if patch.Location != nil {
			c.Location = validation.CleanText(*patch.Location)
		}
		if patch.Phone != nil {
			c.Phone = validation.CleanText(*patch.Phone)
		}
		if patch.Note != nil {
			c.Note = validation.CleanText(*patch.Note)
		}
		updated = *c
		return nil
	})
	return updated, err
}

// RemoveStoreContact deletes the vendor with the given id. A no-op if not
// present.
func (s *Store) RemoveStoreContact(id int64) error {
	return s.mutate(func(doc *types.Document) error {
		out := doc.Stores[:0]
		for _, c := range doc.Stores {
			if c.ID != id {
				out = append(out, c)
			}
		}
		doc.Stores = out
		return nil
	})
}

// ListStoreContacts returns the vendor directory in insertion order.
func (s *Store) ListStoreContacts() []types.StoreContact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.StoreContact, len(s.doc.Stores))
	copy(out, s.doc.Stores)
	return out
}

func indexStoreContact(doc *types.Document, id int64) int {
	for i, c := range doc.Stores {
		if c.ID == id {
			return i
		}
	}
	return -1
}
