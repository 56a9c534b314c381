package sitemaster_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

func TestAddMaterialDefaults(t *testing.T) {
	clock := newTestClock(time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))
	store := newTestStore(t, sitemaster.WithClock(clock.Now))

	m, err := store.AddMaterial(sitemaster.MaterialInput{Name: "  Cement  ", Price: -10})
	if err != nil {
		t.Fatalf("failed to add material: %v", err)
	}
	if m.Name != "Cement" {
		t.Errorf("expected trimmed name, got %q", m.Name)
	}
	if m.Price != 0 {
		t.Errorf("expected negative price clamped to 0, got %v", m.Price)
	}
	if m.Location != types.UnspecifiedVendor {
		t.Errorf("expected default vendor, got %q", m.Location)
	}
	if m.Date != "2025-11-20T09:00:00Z" {
		t.Errorf("expected creation timestamp, got %q", m.Date)
	}
}

func TestAddMaterialRequiresName(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.AddMaterial(sitemaster.MaterialInput{Name: "   "}); err == nil {
		t.Fatal("expected validation error for blank name")
	}
	if len(store.ListMaterials("")) != 0 {
		t.Error("rejected add must not change the ledger")
	}
}

func TestUpdateMaterialPreservesUnpatchedFields(t *testing.T) {
	store := newTestStore(t)
	m, err := store.AddMaterial(sitemaster.MaterialInput{Name: "Cement", Price: 145, Image: "data:image/png;base64,xyz"})
	if err != nil {
		t.Fatalf("failed to add material: %v", err)
	}

	price := 150.0
	updated, err := store.UpdateMaterial(m.ID, types.MaterialPatch{Price: &price})
	if err != nil {
		t.Fatalf("failed to update material: %v", err)
	}
	if updated.Price != 150 {
		t.Errorf("expected patched price 150, got %v", updated.Price)
	}
	if updated.Image != m.Image {
		t.Error("price edit must not drop the attached image")
	}
	if updated.Name != "Cement" || updated.Date != m.Date {
		t.Errorf("unpatched fields changed: %#v", updated)
	}
}

func TestUpdateMaterialRejectionRollsBack(t *testing.T) {
	store := newTestStore(t)
	m, err := store.AddMaterial(sitemaster.MaterialInput{Name: "Cement", Price: 145})
	if err != nil {
		t.Fatalf("failed to add material: %v", err)
	}

	blank := "   "
	price := 999.0
	if _, err := store.UpdateMaterial(m.ID, types.MaterialPatch{Name: &blank, Price: &price}); err == nil {
		t.Fatal("expected validation error for blank name")
	}

	got := store.ListMaterials("")
	if len(got) != 1 || got[0].Price != 145 || got[0].Name != "Cement" {
		t.Errorf("rejected patch must leave the material untouched, got %#v", got)
	}
}

func TestRemoveMaterialUnknownIDIsNoop(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.AddMaterial(sitemaster.MaterialInput{Name: "Cement"}); err != nil {
		t.Fatalf("failed to add material: %v", err)
	}
	if err := store.RemoveMaterial(424242); err != nil {
		t.Fatalf("remove of unknown id must not fail: %v", err)
	}
	if len(store.ListMaterials("")) != 1 {
		t.Error("remove of unknown id must not change the ledger")
	}
}

func TestListMaterialsSearchMatchesNameAndVendor(t *testing.T) {
	store := newTestStore(t)
	for _, in := range []sitemaster.MaterialInput{
		{Name: "Portland cement", Location: "Thai Watsadu"},
		{Name: "Rebar DB12", Location: "Global House"},
		{Name: "Tie wire", Location: "thai watsadu"},
	} {
		if _, err := store.AddMaterial(in); err != nil {
			t.Fatalf("failed to add material: %v", err)
		}
	}

	tests := []struct {
		search string
		want   int
	}{
		{"", 3},
		{"cement", 1},
		{"THAI", 2},
		{"nothing", 0},
	}
	for _, tt := range tests {
		if got := len(store.ListMaterials(tt.search)); got != tt.want {
			t.Errorf("search %q: expected %d materials, got %d", tt.search, tt.want, got)
		}
	}
}

func TestLedgerOrdersLegacyEntriesByID(t *testing.T) {
	// A legacy entry without a creation timestamp sorts by its id, which
	// predates every timestamped entry added afterwards.
	path := filepath.Join(t.TempDir(), "site.json")
	legacy := `{"materials":[{"id":1,"name":"Old cement","price":100,"location":"unspecified"}]}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	clock := newTestClock(time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))
	store, err := sitemaster.Open(path, sitemaster.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := store.AddMaterial(sitemaster.MaterialInput{Name: "New rebar"}); err != nil {
		t.Fatalf("failed to add material: %v", err)
	}

	got := store.ListMaterials("")
	if len(got) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(got))
	}
	if got[0].Name != "Old cement" || got[1].Name != "New rebar" {
		t.Errorf("expected oldest-first order [Old cement, New rebar], got [%s, %s]",
			got[0].Name, got[1].Name)
	}
}

func TestMaterialsTotal(t *testing.T) {
	store := newTestStore(t)
	for _, in := range []sitemaster.MaterialInput{
		{Name: "Cement", Price: 145, Location: "Thai Watsadu"},
		{Name: "Sand", Price: 600, Location: "Thai Watsadu"},
		{Name: "Rebar", Price: 32, Location: "Global House"},
	} {
		if _, err := store.AddMaterial(in); err != nil {
			t.Fatalf("failed to add material: %v", err)
		}
	}

	if got := store.MaterialsTotal(""); got != 777 {
		t.Errorf("expected total 777, got %v", got)
	}
	if got := store.MaterialsTotal("thai"); got != 745 {
		t.Errorf("expected filtered total 745, got %v", got)
	}
}
