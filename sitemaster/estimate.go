package sitemaster

import (
	"github.com/sitemasterhq/sitemaster/types"
)

// EstimateItem is one line of the static reference table of expected
// fence-building material quantities and prices.
type EstimateItem struct {
	Name         string
	Quantity     string
	PriceRange   string
	Unit         string
	AveragePrice float64
}

// estimatedVendor marks ledger entries created from the catalog.
const estimatedVendor = "preliminary estimate"

// fenceCatalog is the reference table for a standard perimeter-fence build.
// Quantities and prices are ranges observed on typical builds; the average
// price is the single figure promoted into the ledger.
var fenceCatalog = []EstimateItem{
	{Name: "1. Post footings / piles", Quantity: "27-32 posts", PriceRange: "500-1,500", Unit: "post", AveragePrice: 1000},
	{Name: "2. Concrete blocks / clay bricks", Quantity: "4,000-6,000 pcs", PriceRange: "4-8", Unit: "pc", AveragePrice: 6},
	{Name: "3. Cement (Portland/mortar)", Quantity: "150-250 bags", PriceRange: "180-250", Unit: "bag", AveragePrice: 215},
	{Name: "4. Coarse and fine sand", Quantity: "10-15 cu.m", PriceRange: "400-800", Unit: "cu.m", AveragePrice: 600},
	{Name: "5. Gravel no. 1-2 (concrete mix)", Quantity: "5-10 cu.m", PriceRange: "500-900", Unit: "cu.m", AveragePrice: 700},
	{Name: "6. Rebar (DB/RB)", Quantity: "1,000-2,000 kg", PriceRange: "25-40", Unit: "kg", AveragePrice: 32},
	{Name: "7. Tie wire", Quantity: "10-20 kg", PriceRange: "50-80", Unit: "kg", AveragePrice: 65},
	{Name: "8. Formwork (timber/steel)", Quantity: "1 set", PriceRange: "5,000-15,000", Unit: "set", AveragePrice: 10000},
	{Name: "9. Drainage pipes / weep holes", Quantity: "as needed", PriceRange: "50-200", Unit: "pc", AveragePrice: 125},
	{Name: "10. Paint / waterproofing", Quantity: "per area", PriceRange: "500-2,000", Unit: "can", AveragePrice: 1250},
}

// Catalog returns a copy of the estimation reference table.
func Catalog() []EstimateItem {
	out := make([]EstimateItem, len(fenceCatalog))
	copy(out, fenceCatalog)
	return out
}

// MaterializeEstimate converts one catalog row into a material ledger
// entry, suffixed so estimated figures stay distinguishable from real
// purchases.
func (s *Store) MaterializeEstimate(index int) (types.Material, error) {
	if index < 0 || index >= len(fenceCatalog) {
		return types.Material{}, &ValidationError{Field: "index", Reason: "no such catalog row"}
	}
	item := fenceCatalog[index]
	return s.AddMaterial(MaterialInput{
		Name:     item.Name + " (estimated)",
		Price:    item.AveragePrice,
		Location: estimatedVendor,
	})
}

// TemplateKind names a bulk workflow template.
type TemplateKind string

// TemplateFence is the standard perimeter-fence build.
const TemplateFence TemplateKind = "fence"

type templateStep struct {
	Step     string
	SubTasks []string
}

var fenceTemplate = []templateStep{
	{
		Step:     "1. Verify boundary markers and legal requirements",
		SubTasks: []string{"Locate survey pegs", "Check setback rules", "Confirm neighbor agreement"},
	},
	{
		Step:     "2. Design the structure and foundations",
		SubTasks: []string{"Sketch the elevation", "Size the footings", "Estimate materials"},
	},
	{
		Step:     "3. Prepare the site and dig footing holes",
		SubTasks: []string{"Clear vegetation", "Mark the post line", "Dig holes to depth"},
	},
	{
		Step:     "4. Set fence posts and pour the ground beam",
		SubTasks: []string{"Position the posts", "Brace and level", "Pour concrete"},
	},
	{
		Step:     "5. Lay wall blocks, render and paint",
		SubTasks: []string{"Lay block courses", "Apply render coat", "Apply finish paint"},
	},
	{
		Step:     "6. Final inspection and landscaping",
		SubTasks: []string{"Check alignment", "Touch up defects", "Restore the ground"},
	},
}

// ApplyStandardTemplate expands a named project type into its fixed ordered
// sequence of workflow steps, each pre-populated with an open checklist.
// Returns the number of steps inserted.
func (s *Store) ApplyStandardTemplate(kind TemplateKind) (int, error) {
	if kind != TemplateFence {
		return 0, &ValidationError{Field: "kind", Reason: "unknown template"}
	}
	err := s.mutate(func(doc *types.Document) error {
		for _, tpl := range fenceTemplate {
			subTasks := make([]types.SubTask, len(tpl.SubTasks))
			for i, text := range tpl.SubTasks {
				subTasks[i] = types.SubTask{Text: text}
			}
			doc.Workflow = append(doc.Workflow, types.WorkflowStep{
				ID:       s.nextID(),
				Step:     tpl.Step,
				Date:     types.DateUnset,
				Status:   types.StatusPending,
				SubTasks: subTasks,
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(fenceTemplate), nil
}
