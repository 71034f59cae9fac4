package model

// Item is a catalog entry referenced, never modified, by order placement.
// A nil Price means the item has no price yet and is charged as zero.
type Item struct {
	ID    int64
	Name  string
	Price *float64
}

// UnitPrice returns the effective price, treating a missing price as zero.
func (i Item) UnitPrice() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}
