package models

// CartItem is one line in a shopper's cart. TotalPrice is fixed when the line
// is added and is not recomputed if the product price later changes.
type CartItem struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	PricePerKg float64 `json:"pricePerKg"`
	WeightKg   float64 `json:"weightKg"`
	TotalPrice float64 `json:"totalPrice"`
	ImageURL   string  `json:"imageUrl,omitempty"`
}
