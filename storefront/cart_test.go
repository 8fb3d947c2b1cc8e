package storefront

import (
	"testing"

	"github.com/shophub-store/shophub-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func product(id uint, name string, price float64, stock int) models.Product {
	return models.Product{
		Model: gorm.Model{ID: id},
		Name:  name,
		Price: price,
		Image: name + ".jpg",
		Stock: stock,
	}
}

func TestAddItemMergesLines(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	mug := product(1, "Mug", 10.00, 5)

	cart.AddItem(mug, 2)
	cart.AddItem(mug, 3)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 10.00, lines[0].Price)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	cart.AddItem(product(1, "Mug", 10.00, 5), 1)
	cart.AddItem(product(2, "Coaster", 5.00, 5), 1)
	cart.AddItem(product(1, "Mug", 10.00, 5), 1)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, uint(2), lines[1].ProductID)
}

func TestSetQuantityFloorRemovesLine(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	mug := product(1, "Mug", 10.00, 5)

	cart.AddItem(mug, 2)
	cart.SetQuantity(mug.ID, 0)
	assert.Empty(t, cart.Lines())

	cart.AddItem(mug, 2)
	cart.SetQuantity(mug.ID, -3)
	assert.Empty(t, cart.Lines())

	cart.AddItem(mug, 2)
	cart.SetQuantity(mug.ID, 7)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)

	// a quantity below one can never survive
	for _, line := range cart.Lines() {
		assert.GreaterOrEqual(t, line.Quantity, 1)
	}
}

func TestStockIsAdvisoryOnly(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	scarce := product(1, "Limited", 99.00, 1)

	cart.AddItem(scarce, 50)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 50, lines[0].Quantity)
}

func TestRemoveItemAbsentIsNoOp(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	cart.AddItem(product(1, "Mug", 10.00, 5), 1)

	cart.RemoveItem(42)

	assert.Len(t, cart.Lines(), 1)
}

func TestSubtotal(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	assert.Equal(t, 0.0, cart.Subtotal())

	cart.AddItem(product(1, "Mug", 10.00, 5), 2)
	cart.AddItem(product(2, "Coaster", 5.00, 5), 1)
	assert.Equal(t, 25.00, cart.Subtotal())
}

func TestClear(t *testing.T) {
	cart := NewCartStore(NewMemoryStorage())
	cart.AddItem(product(1, "Mug", 10.00, 5), 2)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.Subtotal())
}

func TestCartPersistsAcrossSessions(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	cart := NewCartStore(storage)
	cart.AddItem(product(1, "Mug", 10.00, 5), 2)
	cart.AddItem(product(2, "Coaster", 5.00, 5), 1)

	restored := NewCartStore(storage)
	lines := restored.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 25.00, restored.Subtotal())

	restored.Clear()
	assert.True(t, NewCartStore(storage).IsEmpty())
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(25.00)
	assert.Equal(t, 25.00, totals.Subtotal)
	assert.Equal(t, 9.99, totals.Shipping)
	assert.InDelta(t, 2.50, totals.Tax, 1e-9)
	assert.InDelta(t, 37.49, totals.Total, 1e-9)

	// shipping is waived for an empty cart
	empty := ComputeTotals(0)
	assert.Equal(t, 0.0, empty.Shipping)
	assert.Equal(t, 0.0, empty.Total)
}
