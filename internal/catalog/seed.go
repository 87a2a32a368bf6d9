package catalog

import "freshmart/internal/models"

// Category is a browsing bucket shown in the storefront sidebar.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Categories returns the fixed category list in display order.
func Categories() []Category {
	return []Category{
		{ID: "fruits", Name: "Fresh Fruits", Icon: "🍎"},
		{ID: "vegetables", Name: "Vegetables", Icon: "🥦"},
		{ID: "dairy", Name: "Dairy & Bakery", Icon: "🥛"},
		{ID: "staples", Name: "Staples", Icon: "🌾"},
		{ID: "snacks", Name: "Snacks", Icon: "🍪"},
		{ID: "beverages", Name: "Beverages", Icon: "🥤"},
	}
}

// Products returns the seed catalog used on first run, before any admin edit
// has been persisted. Callers receive a fresh slice on every call.
func Products() []models.Product {
	return []models.Product{
		{
			ID:       "1",
			Name:     "Red Apple (Kashmir)",
			Category: "Fresh Fruits",
			Image:    "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "500g", Price: 80, MRP: 100},
				{Weight: "1kg", Price: 150, MRP: 200},
			},
			Discount:    25,
			Description: "Sweet and crunchy apples directly from Kashmir orchards.",
			InStock:     true,
			Rating:      4.5,
			Reviews:     120,
		},
		{
			ID:       "2",
			Name:     "Farm Fresh Tomatoes",
			Category: "Vegetables",
			Image:    "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "500g", Price: 20, MRP: 30},
				{Weight: "1kg", Price: 35, MRP: 60},
			},
			Discount:    40,
			Description: "Locally grown, ripe red tomatoes perfect for curries.",
			InStock:     true,
			Rating:      4.2,
			Reviews:     85,
		},
		{
			ID:       "3",
			Name:     "Full Cream Milk",
			Category: "Dairy & Bakery",
			Image:    "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "500ml", Price: 32, MRP: 35},
				{Weight: "1L", Price: 62, MRP: 70},
			},
			Discount:    10,
			Description: "Pasteurized full cream milk, rich in calcium.",
			InStock:     true,
			Rating:      4.8,
			Reviews:     300,
		},
		{
			ID:       "4",
			Name:     "Whole Wheat Atta",
			Category: "Staples",
			Image:    "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "1kg", Price: 45, MRP: 60},
				{Weight: "5kg", Price: 210, MRP: 300},
			},
			Discount:    30,
			Description: "100% whole wheat flour with natural fiber.",
			InStock:     true,
			Rating:      4.6,
			Reviews:     150,
		},
		{
			ID:       "5",
			Name:     "Potato (New Crop)",
			Category: "Vegetables",
			Image:    "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "1kg", Price: 30, MRP: 40},
				{Weight: "2kg", Price: 55, MRP: 80},
			},
			Discount:    25,
			Description: "Fresh seasonal potatoes.",
			InStock:     true,
			Rating:      4.0,
			Reviews:     90,
		},
		{
			ID:       "6",
			Name:     "Premium Tea",
			Category: "Beverages",
			Image:    "https://images.unsplash.com/photo-1594631252845-29fc4cc8cde9?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "250g", Price: 120, MRP: 150},
				{Weight: "500g", Price: 230, MRP: 300},
			},
			Discount:    23,
			Description: "Aromatic tea blend for a refreshing morning.",
			InStock:     true,
			Rating:      4.7,
			Reviews:     200,
		},
		{
			ID:       "7",
			Name:     "Salted Potato Chips",
			Category: "Snacks",
			Image:    "https://images.unsplash.com/photo-1566478989037-eec170784d0b?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "50g", Price: 20, MRP: 20},
				{Weight: "100g", Price: 35, MRP: 40},
			},
			Discount:    12,
			Description: "Classic salted crunchy potato chips.",
			InStock:     true,
			Rating:      4.1,
			Reviews:     50,
		},
		{
			ID:       "8",
			Name:     "Basmati Rice",
			Category: "Staples",
			Image:    "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "1kg", Price: 90, MRP: 120},
				{Weight: "5kg", Price: 420, MRP: 600},
			},
			Discount:    30,
			Description: "Long grain aromatic basmati rice.",
			InStock:     false,
			Rating:      4.9,
			Reviews:     410,
		},
		{
			ID:       "9",
			Name:     "Orange Juice",
			Category: "Beverages",
			Image:    "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "1L", Price: 110, MRP: 140},
			},
			Discount:    21,
			Description: "No added sugar 100% orange juice.",
			InStock:     true,
			Rating:      4.4,
			Reviews:     65,
		},
		{
			ID:       "10",
			Name:     "Brown Bread",
			Category: "Dairy & Bakery",
			Image:    "https://images.unsplash.com/photo-1542834371-41b438a42146?w=500&q=80",
			Variants: []models.Variant{
				{Weight: "400g", Price: 40, MRP: 50},
			},
			Discount:    20,
			Description: "Healthy whole wheat brown bread.",
			InStock:     true,
			Rating:      4.3,
			Reviews:     112,
		},
	}
}
