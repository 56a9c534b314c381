package sitemaster_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitemasterhq/sitemaster/sitemaster"
	"github.com/sitemasterhq/sitemaster/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := newTestStore(t)
	_, err := source.AddMaterial(sitemaster.MaterialInput{Name: "Cement", Price: 145, Location: "Thai Watsadu"})
	require.NoError(t, err)
	_, err = source.AddWorker(sitemaster.WorkerInput{Name: "Somchai", Wage: 600})
	require.NoError(t, err)

	data, err := source.ExportJSON()
	require.NoError(t, err)

	target := newTestStore(t)
	require.NoError(t, target.ImportJSON(data))
	assert.Equal(t, source.Document(), target.Document())
}

func TestImportAcceptsBareDocument(t *testing.T) {
	store := newTestStore(t)
	bare := `{"materials":[{"id":1,"name":"Cement","price":145}]}`
	require.NoError(t, store.ImportJSON([]byte(bare)))

	doc := store.Document()
	require.Len(t, doc.Materials, 1)
	assert.Equal(t, "Cement", doc.Materials[0].Name)
	assert.NotNil(t, doc.Workers, "missing collections are backfilled on import")
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddMaterial(sitemaster.MaterialInput{Name: "Cement", Price: 145})
	require.NoError(t, err)
	before := store.Document()

	for _, payload := range []string{"", "not json at all", "[1,2,3]", "{broken"} {
		err := store.ImportJSON([]byte(payload))
		assert.ErrorIs(t, err, sitemaster.ErrMalformedImport, "payload %q", payload)
		assert.Equal(t, before, store.Document(), "payload %q must not change state", payload)
	}
}

func TestImportReplacesWholesale(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddMaterial(sitemaster.MaterialInput{Name: "Old entry", Price: 1})
	require.NoError(t, err)

	require.NoError(t, store.ImportJSON([]byte(`{"workers":[{"id":5,"name":"Somchai","wage":350}]}`)))
	doc := store.Document()
	assert.Empty(t, doc.Materials, "import replaces, never merges with, prior state")
	require.Len(t, doc.Workers, 1)
}

func TestMaterialsCSVColumns(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddMaterial(sitemaster.MaterialInput{Name: "Cement, grey", Price: 145.5, Location: "Thai Watsadu"})
	require.NoError(t, err)

	out, err := store.MaterialsCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"name", "price", "vendor"}, records[0])
	assert.Equal(t, []string{"Cement, grey", "145.5", "Thai Watsadu"}, records[1])
}

func TestWorkersCSVColumns(t *testing.T) {
	store := newTestStore(t)
	w, err := store.AddWorker(sitemaster.WorkerInput{Name: "Somchai", Role: "foreman", Wage: 600})
	require.NoError(t, err)
	advance := 500.0
	_, err = store.UpdateWorker(w.ID, types.WorkerPatch{AdvancePayment: &advance})
	require.NoError(t, err)

	out, err := store.WorkersCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"name", "role", "daily wage", "accumulated wage", "advance payment"}, records[0])
	assert.Equal(t, []string{"Somchai", "foreman", "600", "0", "500"}, records[1])
}
