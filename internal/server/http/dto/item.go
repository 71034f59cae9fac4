package dto

// ItemResponse represents a catalog entry.
type ItemResponse struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// ItemsResponse is the list envelope for catalog lookups.
type ItemsResponse struct {
	Data []ItemResponse `json:"data"`
}
