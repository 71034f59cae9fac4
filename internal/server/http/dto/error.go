package dto

// ErrorResponse is the common error body. Stock and Requested are only set
// for insufficient-stock rejections; Details carries the underlying message
// for store-level faults.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Details   string   `json:"details,omitempty"`
	Stock     *float64 `json:"stock,omitempty"`
	Requested *float64 `json:"requested,omitempty"`
}

// OrderNotFoundResponse keeps the list shape of the single-order lookup while
// reporting the miss.
type OrderNotFoundResponse struct {
	Data  []OrderResponse `json:"data"`
	Error string          `json:"error"`
}
