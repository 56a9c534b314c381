package sitemaster_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

func TestOpenMissingFileYieldsDefaults(t *testing.T) {
	store := newTestStore(t)
	doc := store.Document()

	if doc.Materials == nil || len(doc.Materials) != 0 {
		t.Errorf("expected empty materials, got %#v", doc.Materials)
	}
	if doc.Stores == nil {
		t.Error("expected stores collection to default to empty, got nil")
	}
	if doc.Timer.IsActive {
		t.Error("expected idle timer")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	store, err := sitemaster.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	if _, err := store.AddMaterial(sitemaster.MaterialInput{Name: "Cement", Price: 145, Location: "Thai Watsadu"}); err != nil {
		t.Fatalf("failed to add material: %v", err)
	}
	if _, err := store.AddWorker(sitemaster.WorkerInput{Name: "Somchai", Role: "foreman", Wage: 600}); err != nil {
		t.Fatalf("failed to add worker: %v", err)
	}
	if _, err := store.AddStep(sitemaster.StepInput{Step: "Dig footings", Date: "21 Nov"}); err != nil {
		t.Fatalf("failed to add step: %v", err)
	}
	before := store.Document()
	_ = store.Close()

	reopened, err := sitemaster.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	after := reopened.Document()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("document changed across save/load:\nbefore: %#v\nafter:  %#v", before, after)
	}
}

func TestLoadToleratesMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	// A persisted value from an older schema, with no stores, rentals or
	// timer fields at all.
	legacy := `{"materials":[{"id":1,"name":"Cement","price":145,"location":"Thai Watsadu"}]}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := sitemaster.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	doc := store.Document()
	if doc.Stores == nil {
		t.Error("expected stores backfilled to empty, got nil")
	}
	if doc.Rentals == nil {
		t.Error("expected rentals backfilled to empty, got nil")
	}
	if doc.Timer.IsActive || doc.Timer.TotalSeconds != 0 || doc.Timer.StartTime != nil {
		t.Errorf("expected idle default timer, got %#v", doc.Timer)
	}
	if len(doc.Materials) != 1 || doc.Materials[0].Name != "Cement" {
		t.Errorf("expected legacy material preserved, got %#v", doc.Materials)
	}
}

func TestLoadFallsBackOnMalformedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := sitemaster.Open(path)
	if err != nil {
		t.Fatalf("expected fallback to defaults, got error: %v", err)
	}
	defer func() { _ = store.Close() }()

	doc := store.Document()
	if len(doc.Materials) != 0 || len(doc.Workers) != 0 {
		t.Errorf("expected default document, got %#v", doc)
	}
}

func TestIDAllocatorNeverRepeats(t *testing.T) {
	store := newTestStore(t)

	seen := map[int64]bool{}
	for i := 0; i < 20; i++ {
		m, err := store.AddMaterial(sitemaster.MaterialInput{Name: "Rebar"})
		if err != nil {
			t.Fatalf("failed to add material: %v", err)
		}
		if seen[m.ID] {
			t.Fatalf("id %d issued twice", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestIDAllocatorSeededPastLegacyIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	doc := types.DefaultDocument()
	doc.Materials = []types.Material{{ID: 9999999999999, Name: "Old"}}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	store, err := sitemaster.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	m, err := store.AddMaterial(sitemaster.MaterialInput{Name: "New"})
	if err != nil {
		t.Fatalf("failed to add material: %v", err)
	}
	if m.ID <= 9999999999999 {
		t.Errorf("expected fresh id above legacy max, got %d", m.ID)
	}
}
