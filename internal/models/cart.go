package models

// CartItem is a product frozen into the cart together with the chosen variant
// and a quantity. The pair (ID, SelectedVariantIndex) identifies a cart line:
// the same product at two pack sizes is two distinct lines.
type CartItem struct {
	Product
	SelectedVariantIndex int `json:"selectedVariantIndex"`
	Quantity             int `json:"quantity"`
}

// Matches reports whether this line has the given cart identity.
func (i CartItem) Matches(productID string, variantIndex int) bool {
	return i.ID == productID && i.SelectedVariantIndex == variantIndex
}

// UnitPrice is the price of the selected variant.
func (i CartItem) UnitPrice() float64 {
	if i.SelectedVariantIndex < 0 || i.SelectedVariantIndex >= len(i.Variants) {
		return 0
	}
	return i.Variants[i.SelectedVariantIndex].Price
}

// LineTotal is UnitPrice multiplied by the line quantity.
func (i CartItem) LineTotal() float64 {
	return i.UnitPrice() * float64(i.Quantity)
}

// Clone deep-copies the line including the embedded product variants.
func (i CartItem) Clone() CartItem {
	cp := i
	cp.Product = i.Product.Clone()
	return cp
}
