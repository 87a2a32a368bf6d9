package store

import (
	"sort"
	"strings"

	"freshmart/internal/models"
)

// Sort modes for product listings.
const (
	SortPopularity = "popularity"
	SortPriceLow   = "priceLow"
	SortPriceHigh  = "priceHigh"
)

// Filter is the read-side listing filter. Zero values mean "no constraint";
// MaxPrice 0 is unbounded.
type Filter struct {
	Query      string
	Categories []string
	MinPrice   float64
	MaxPrice   float64
	Sort       string
}

// FilterProducts applies a listing filter over a catalog snapshot: substring
// match on name (case-insensitive) AND category membership AND first-variant
// price range, then sorts. It is computed fresh on every call and never
// mutates its input.
func FilterProducts(products []models.Product, f Filter) []models.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if len(f.Categories) > 0 && !containsCategory(f.Categories, p.Category) {
			continue
		}
		price := p.BasePrice()
		if price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].BasePrice() < out[j].BasePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].BasePrice() > out[j].BasePrice()
		})
	case SortPopularity:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}

	return out
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if strings.EqualFold(strings.TrimSpace(c), category) {
			return true
		}
	}
	return false
}

// CartTotal sums selected-variant price times quantity over the given lines.
func CartTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, line := range items {
		total += line.LineTotal()
	}
	return total
}

// CartCount is the number of units in the cart, not the number of lines.
func CartCount(items []models.CartItem) int {
	count := 0
	for _, line := range items {
		count += line.Quantity
	}
	return count
}
