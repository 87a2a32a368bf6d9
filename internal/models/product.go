package models

// Variant is one purchasable pack size of a product. MRP is the struck-through
// reference price; Price at or below MRP is expected but not enforced.
type Variant struct {
	Weight string  `json:"weight"`
	Price  float64 `json:"price"`
	MRP    float64 `json:"mrp"`
}

// Product is a catalog entry. Identity is ID; Variants is never empty for a
// well-formed product.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Variants    []Variant `json:"variants"`
	Discount    float64   `json:"discount"`
	Description string    `json:"description"`
	InStock     bool      `json:"inStock"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
}

// Clone returns a deep copy, so a stored copy cannot be altered through the
// caller's variant slice.
func (p Product) Clone() Product {
	cp := p
	cp.Variants = make([]Variant, len(p.Variants))
	copy(cp.Variants, p.Variants)
	return cp
}

// BasePrice is the price of the first variant, the one listing cards show and
// price-range filters compare against.
func (p Product) BasePrice() float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].Price
}
