package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemQuantity_ZeroAndNegativeRemove(t *testing.T) {
	item := BOMItem{Key: "k", Quantity: 5, ItemsPerUnit: 2, TotalUnits: 10}

	assert.Nil(t, UpdateItemQuantity(item, 0))
	assert.Nil(t, UpdateItemQuantity(item, -3))
}

func TestUpdateItemQuantity_RecomputesTotalUnits(t *testing.T) {
	item := BOMItem{Key: "k", Quantity: 5, ItemsPerUnit: 2, TotalUnits: 10}

	got := UpdateItemQuantity(item, 7)
	require.NotNil(t, got)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, 14, got.TotalUnits)
	// input is untouched
	assert.Equal(t, 5, item.Quantity)
}

func TestUpdateItemQuantity_MissingItemsPerUnitDefaultsToOne(t *testing.T) {
	item := BOMItem{Key: "k", Quantity: 1}

	got := UpdateItemQuantity(item, 3)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.TotalUnits)
}

func TestSplitByConfiguration(t *testing.T) {
	items := []BOMItem{
		{Key: "a", IsConfigured: true},
		{Key: "b"},
		{Key: "c", IsConfigured: true, IsManual: true},
		{Key: "d", IsManual: true},
	}

	configured, auto := SplitByConfiguration(items)

	require.Len(t, configured, 2)
	assert.Equal(t, "a", configured[0].Key)
	assert.Equal(t, "c", configured[1].Key)

	require.Len(t, auto, 2)
	assert.Equal(t, "b", auto[0].Key)
	assert.Equal(t, "d", auto[1].Key)
}

func TestSplitByConfiguration_Empty(t *testing.T) {
	configured, auto := SplitByConfiguration(nil)
	assert.NotNil(t, configured)
	assert.NotNil(t, auto)
	assert.Empty(t, configured)
	assert.Empty(t, auto)
}
