package sitemaster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitemasterhq/sitemaster/sitemaster"
)

func TestCompareCheaperOfferWins(t *testing.T) {
	store := newTestStore(t)

	cmp, err := store.Compare("Cement",
		sitemaster.Offer{Store: "Thai Watsadu", Price: 145, Qty: 50},
		sitemaster.Offer{Store: "Global House", Price: 350, Qty: 100},
	)
	require.NoError(t, err)

	assert.InDelta(t, 2.9, cmp.UnitCostA, 1e-9)
	assert.InDelta(t, 3.5, cmp.UnitCostB, 1e-9)
	assert.Equal(t, "Thai Watsadu", cmp.WinnerName)
	assert.Equal(t, 145.0, cmp.WinnerPrice)
	assert.InDelta(t, (3.5-2.9)/3.5*100, cmp.SavingsPercent, 1e-9)
	assert.False(t, cmp.Tie)

	cached := store.Document().CompareResult
	require.NotNil(t, cached)
	assert.Equal(t, "Thai Watsadu", cached.StoreName)
	assert.Equal(t, "Cement", cached.ProductName)
	assert.Equal(t, "Thai Watsadu vs Global House", cached.Location)
}

func TestCompareTieFavorsOfferA(t *testing.T) {
	store := newTestStore(t)

	cmp, err := store.Compare("Sand",
		sitemaster.Offer{Store: "Store A", Price: 100, Qty: 10},
		sitemaster.Offer{Store: "Store B", Price: 200, Qty: 20},
	)
	require.NoError(t, err)

	assert.True(t, cmp.Tie)
	assert.Equal(t, "Store A", cmp.WinnerName)
	assert.Equal(t, 100.0, cmp.WinnerPrice)
	assert.Zero(t, cmp.SavingsPercent)
}

func TestCompareInvalidOfferClearsCache(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Compare("Cement",
		sitemaster.Offer{Price: 145, Qty: 50},
		sitemaster.Offer{Price: 350, Qty: 100},
	)
	require.NoError(t, err)
	require.NotNil(t, store.Document().CompareResult)

	_, err = store.Compare("Cement",
		sitemaster.Offer{Price: 145, Qty: 0},
		sitemaster.Offer{Price: 350, Qty: 100},
	)
	var verr *sitemaster.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Nil(t, store.Document().CompareResult, "invalid input must clear the cached result")
}

func TestCommitComparisonPromotesWinner(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CommitComparison()
	assert.ErrorIs(t, err, sitemaster.ErrNoComparison)

	_, err = store.Compare("Cement",
		sitemaster.Offer{Store: "Thai Watsadu", Price: 145, Qty: 50},
		sitemaster.Offer{Store: "Global House", Price: 350, Qty: 100},
	)
	require.NoError(t, err)

	m, err := store.CommitComparison()
	require.NoError(t, err)
	assert.Equal(t, "Cement", m.Name)
	assert.Equal(t, 145.0, m.Price)
	assert.Equal(t, "Thai Watsadu", m.Location)

	ledger := store.ListMaterials("")
	require.Len(t, ledger, 1)
	assert.Equal(t, m.ID, ledger[0].ID)
}
