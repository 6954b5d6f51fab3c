package models

// OrderItem is embedded in an order document, not a table of its own.
// Name and Price are snapshots taken at order time; MenuItemID is not
// checked against the catalog and may point at a reseeded or deleted item.
// Name and Price carry no required binding: a free item (price 0) and an
// empty snapshot name are acceptable payloads, and required would reject
// those zero values as missing.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id" binding:"required"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity" binding:"required"`
	Price      float64 `json:"price"`
}

type OrderItems []OrderItem

// TotalPrice sums quantity*price over the items.
func (items OrderItems) TotalPrice() float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}
