package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janatafootwear/storefront/internal/models"
)

func intptr(v int) *int { return &v }

func TestNewCartView(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{
		{Name: "Nike Air Max 270", UnitPrice: 2499, Quantity: 1, Discount: intptr(10)},
		{Name: "Classic Leather Loafer", UnitPrice: 1599, Quantity: 2},
	}

	view := NewCartView(items)
	require.Len(t, view.Items, 2)
	require.EqualValues(t, 3, view.ItemCount)
	require.EqualValues(t, 2249, view.Items[0].EffectiveUnitPrice)
	require.EqualValues(t, 2249, view.Items[0].LineTotal)
	require.EqualValues(t, 1599, view.Items[1].EffectiveUnitPrice)
	require.EqualValues(t, 3198, view.Items[1].LineTotal)
	require.EqualValues(t, 5447, view.Subtotal)
	require.EqualValues(t, 0, view.DeliveryFee)
	require.EqualValues(t, 5447, view.Total)
}

func TestNewCartViewDeliveryFee(t *testing.T) {
	t.Parallel()

	// Empty cart owes nothing.
	empty := NewCartView(nil)
	require.EqualValues(t, 0, empty.DeliveryFee)
	require.EqualValues(t, 0, empty.Total)

	// At or below the threshold the flat fee applies.
	small := NewCartView([]models.CartItem{{UnitPrice: 1000, Quantity: 1}})
	require.EqualValues(t, 99, small.DeliveryFee)
	require.EqualValues(t, 1099, small.Total)

	// One rupee over rides free.
	large := NewCartView([]models.CartItem{{UnitPrice: 1001, Quantity: 1}})
	require.EqualValues(t, 0, large.DeliveryFee)
	require.EqualValues(t, 1001, large.Total)
}
