package transport

import "github.com/janatafootwear/storefront/internal/models"

// PageMeta is the pagination envelope shared by list endpoints.
type PageMeta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

func NewPageMeta(page, limit, offset int, total int64) PageMeta {
	return PageMeta{
		Page:       page,
		Size:       limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
		HasPrev:    page > 1,
		HasNext:    int64(offset+limit) < total,
	}
}

type ProductPage struct {
	Data []models.Product `json:"data"`
	Meta PageMeta         `json:"meta"`
}

type OrderPage struct {
	Data []models.Order `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// CartLineView decorates a cart line with its derived prices.
type CartLineView struct {
	models.CartItem
	EffectiveUnitPrice int64 `json:"effective_unit_price"`
	LineTotal          int64 `json:"line_total"`
}

// CartView is the whole-cart response. DeliveryFee is storefront
// display policy (free over the threshold, flat fee below); it never
// feeds order totals, which are store pickup.
type CartView struct {
	Items       []CartLineView `json:"items"`
	ItemCount   uint           `json:"item_count"`
	Subtotal    int64          `json:"subtotal"`
	DeliveryFee int64          `json:"delivery_fee"`
	Total       int64          `json:"total"`
}

const (
	freeDeliveryThreshold = 1000
	deliveryFee           = 99
)

func NewCartView(items []models.CartItem) CartView {
	view := CartView{Items: make([]CartLineView, 0, len(items))}
	for _, it := range items {
		unit := models.DiscountedPrice(it.UnitPrice, it.Discount)
		lineTotal := unit * int64(it.Quantity)
		view.Items = append(view.Items, CartLineView{
			CartItem:           it,
			EffectiveUnitPrice: unit,
			LineTotal:          lineTotal,
		})
		view.ItemCount += it.Quantity
		view.Subtotal += lineTotal
	}

	if view.Subtotal > 0 && view.Subtotal <= freeDeliveryThreshold {
		view.DeliveryFee = deliveryFee
	}
	view.Total = view.Subtotal + view.DeliveryFee
	return view
}

type ToggleWishlistResponse struct {
	ProductID string `json:"product_id"`
	Wished    bool   `json:"wished"`
}
