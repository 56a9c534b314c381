package sitemaster

import (
	"github.com/sitemasterhq/sitemaster/internal/validation"
	"github.com/sitemasterhq/sitemaster/types"
)

// Offer is one store's price for a given quantity of a product.
type Offer struct {
	Store string
	Price float64
	Qty   float64
	Unit  string
}

// Comparison is the outcome of normalizing two offers to cost per unit.
// SavingsPercent is computed at full precision; rounding to two decimals is
// a display concern.
type Comparison struct {
	Product        string
	UnitCostA      float64
	UnitCostB      float64
	WinnerName     string
	WinnerPrice    float64
	SavingsPercent float64
	Tie            bool
}

// Compare normalizes both offers to cost per unit and picks the cheaper
// one. Both offers need strictly positive price and quantity; otherwise the
// cached comparison result is cleared and a validation error returned. On
// an exact tie offer A is the nominal winner with zero reported savings.
// The winning offer is cached on the document so it can be promoted into a
// material by CommitComparison.
func (s *Store) Compare(product string, a, b Offer) (Comparison, error) {
	if a.Price <= 0 || a.Qty <= 0 || b.Price <= 0 || b.Qty <= 0 {
		err := s.mutate(func(doc *types.Document) error {
			doc.CompareResult = nil
			return nil
		})
		if err != nil {
			return Comparison{}, err
		}
		return Comparison{}, &ValidationError{Field: "offer", Reason: "price and quantity must be positive"}
	}

	nameA := defaultText(a.Store, "Store A")
	nameB := defaultText(b.Store, "Store B")
	product = defaultText(product, "compared product")

	cmp := Comparison{
		Product:   product,
		UnitCostA: a.Price / a.Qty,
		UnitCostB: b.Price / b.Qty,
	}
	switch {
	case cmp.UnitCostA < cmp.UnitCostB:
		cmp.WinnerName = nameA
		cmp.WinnerPrice = a.Price
		cmp.SavingsPercent = (cmp.UnitCostB - cmp.UnitCostA) / cmp.UnitCostB * 100
	case cmp.UnitCostB < cmp.UnitCostA:
		cmp.WinnerName = nameB
		cmp.WinnerPrice = b.Price
		cmp.SavingsPercent = (cmp.UnitCostA - cmp.UnitCostB) / cmp.UnitCostA * 100
	default:
		// Documented tie-break: A wins nominally, no savings claimed.
		cmp.WinnerName = nameA
		cmp.WinnerPrice = a.Price
		cmp.Tie = true
	}

	err := s.mutate(func(doc *types.Document) error {
		doc.CompareResult = &types.CompareResult{
			StoreName:   cmp.WinnerName,
			Price:       cmp.WinnerPrice,
			ProductName: product,
			Location:    nameA + " vs " + nameB,
		}
		return nil
	})
	if err != nil {
		return Comparison{}, err
	}
	return cmp, nil
}

// CommitComparison promotes the cached comparison winner into a material
// ledger entry.
func (s *Store) CommitComparison() (types.Material, error) {
	s.mu.RLock()
	cached := s.doc.CompareResult
	s.mu.RUnlock()
	if cached == nil {
		return types.Material{}, ErrNoComparison
	}
	return s.AddMaterial(MaterialInput{
		Name:     cached.ProductName,
		Price:    validation.NonNegative(cached.Price),
		Location: cached.StoreName,
	})
}
