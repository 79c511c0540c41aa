package catalog

import "github.com/trendycorner/storefront-golang/internal/models"

func nprPrice(v float64) *float64 { return &v }

var allSizes = []string{"S", "M", "L", "XL", "XXL"}

// seedProducts returns the static storefront catalog. The admin dashboard
// mutates an in-memory copy only; this source is never written back.
func seedProducts() []models.Product {
	return []models.Product{
		// --- T-Shirts ---
		{
			ID:            "t1",
			Name:          "Classic Cotton Tee",
			Brand:         "Trendy Corner",
			Category:      "tshirts",
			Series:        "Essentials",
			Price:         1299,
			OriginalPrice: nprPrice(1599),
			Image:         "/lovable-uploads/black-tshirt.webp",
			Description:   "Premium quality cotton t-shirt with comfortable fit and stylish design.",
			Features:      []string{"100% Cotton fabric", "Pre-shrunk material", "Machine washable"},
			Specs:         map[string]string{"Material": "100% Cotton", "Fit": "Regular", "Neck": "Round neck"},
			Rating:        4.5,
			ReviewCount:   156,
			InStock:       true,
			Sizes:         allSizes,
		},
		{
			ID:          "t2",
			Name:        "Premium Graphic Tee",
			Brand:       "Urban Style",
			Category:    "tshirts",
			Series:      "Graphics",
			Price:       1899,
			Image:       "/lovable-uploads/483be91a-5a75-41c2-be14-91e8e87c67b0.png",
			Description: "Trendy graphic t-shirt with modern design and superior comfort.",
			Features:    []string{"Premium cotton blend", "Unique graphic design", "Fade-resistant print"},
			Specs:       map[string]string{"Material": "Cotton blend", "Fit": "Slim fit", "Print": "Screen print"},
			Rating:      4.7,
			ReviewCount: 203,
			InStock:     true,
			Sizes:       allSizes,
		},
		{
			ID:            "t3",
			Name:          "Basic White Tee",
			Brand:         "Comfort Plus",
			Category:      "tshirts",
			Series:        "Basics",
			Price:         999,
			OriginalPrice: nprPrice(1299),
			Description:   "Essential white t-shirt perfect for everyday wear.",
			Features:      []string{"Soft cotton fabric", "Versatile styling", "Everyday comfort"},
			Specs:         map[string]string{"Material": "100% Cotton", "Fit": "Regular", "Color": "White"},
			Rating:        4.3,
			ReviewCount:   124,
			InStock:       true,
			Sizes:         allSizes,
		},

		// --- Pants ---
		{
			ID:          "p1",
			Name:        "Cargo Tactical Pants",
			Brand:       "Outdoor Pro",
			Category:    "pants",
			Series:      "Tactical",
			Price:       3499,
			Description: "Durable cargo pants with multiple pockets for outdoor activities.",
			Features:    []string{"Ripstop fabric", "Multiple cargo pockets", "Reinforced knees"},
			Specs:       map[string]string{"Material": "Ripstop cotton", "Fit": "Relaxed", "Pockets": "8"},
			Rating:      4.6,
			ReviewCount: 189,
			InStock:     true,
			Sizes:       allSizes,
		},
		{
			ID:            "p2",
			Name:          "Casual Chino Pants",
			Brand:         "Style Master",
			Category:      "pants",
			Series:        "Casual",
			Price:         2799,
			OriginalPrice: nprPrice(3299),
			Description:   "Versatile chino pants suitable for casual and semi-formal occasions.",
			Features:      []string{"Stretch cotton twill", "Tailored fit", "Wrinkle resistant"},
			Specs:         map[string]string{"Material": "Cotton twill", "Fit": "Tailored", "Closure": "Button & zip"},
			Rating:        4.4,
			ReviewCount:   167,
			InStock:       true,
			Sizes:         allSizes,
		},
		{
			ID:          "p3",
			Name:        "Comfortable Joggers",
			Brand:       "Trendy Corner",
			Category:    "pants",
			Series:      "Comfort",
			Price:       1999,
			Description: "Soft and comfortable joggers perfect for workouts and lounging.",
			Features:    []string{"Fleece-lined interior", "Elastic waistband", "Tapered fit"},
			Specs:       map[string]string{"Material": "Cotton fleece", "Fit": "Tapered", "Waist": "Drawstring"},
			Rating:      4.2,
			ReviewCount: 134,
			InStock:     true,
			Sizes:       allSizes,
		},

		// --- Shoes ---
		{
			ID:          "s1",
			Name:        "Classic Sneakers",
			Brand:       "SportMax",
			Category:    "shoes",
			Series:      "Classic",
			Price:       4999,
			Description: "Timeless sneakers that combine style and comfort.",
			Features:    []string{"Leather upper", "Cushioned insole", "Rubber outsole"},
			Specs:       map[string]string{"Upper": "Leather", "Sole": "Rubber", "Closure": "Lace-up"},
			Rating:      4.8,
			ReviewCount: 245,
			InStock:     true,
			Sizes:       allSizes,
		},
		{
			ID:            "s2",
			Name:          "Running Shoes",
			Brand:         "AthleticPro",
			Category:      "shoes",
			Series:        "Performance",
			Price:         5499,
			OriginalPrice: nprPrice(6299),
			Description:   "High-performance running shoes with advanced cushioning.",
			Features:      []string{"Breathable mesh upper", "Responsive cushioning", "Lightweight build"},
			Specs:         map[string]string{"Upper": "Mesh", "Sole": "EVA foam", "Weight": "280g"},
			Rating:        4.9,
			ReviewCount:   312,
			InStock:       true,
			Sizes:         allSizes,
		},
		{
			ID:          "s3",
			Name:        "Casual Sports Shoes",
			Brand:       "ComfortFit",
			Category:    "shoes",
			Series:      "Sports",
			Price:       3799,
			Description: "Versatile sports shoes for everyday casual wear.",
			Features:    []string{"Synthetic upper", "Memory foam insole", "Flexible sole"},
			Specs:       map[string]string{"Upper": "Synthetic", "Sole": "Rubber", "Insole": "Memory foam"},
			Rating:      4.5,
			ReviewCount: 198,
			InStock:     true,
			Sizes:       allSizes,
		},

		// --- Socks ---
		{
			ID:            "k1",
			Name:          "Premium Cotton Socks",
			Brand:         "Trendy Corner",
			Category:      "socks",
			Series:        "Premium",
			Price:         599,
			OriginalPrice: nprPrice(799),
			Description:   "Soft premium cotton socks for all-day comfort.",
			Features:      []string{"Combed cotton", "Reinforced heel and toe", "Breathable knit"},
			Specs:         map[string]string{"Material": "Combed cotton", "Length": "Crew", "Pack": "1 pair"},
			Rating:        4.4,
			ReviewCount:   89,
			InStock:       true,
			Sizes:         allSizes,
		},
		{
			ID:          "k2",
			Name:        "Athletic Sports Socks",
			Brand:       "SportMax",
			Category:    "socks",
			Series:      "Athletic",
			Price:       899,
			Description: "Performance socks with arch support and moisture wicking.",
			Features:    []string{"Moisture wicking", "Arch support", "Cushioned sole"},
			Specs:       map[string]string{"Material": "Poly-cotton blend", "Length": "Ankle", "Pack": "1 pair"},
			Rating:      4.6,
			ReviewCount: 156,
			InStock:     true,
			Sizes:       allSizes,
		},
		{
			ID:          "k3",
			Name:        "Casual Cotton Socks Pack",
			Brand:       "ComfortFit",
			Category:    "socks",
			Series:      "Casual",
			Price:       1299,
			Description: "Value pack of comfortable cotton socks in assorted colors.",
			Features:    []string{"Assorted colors", "Soft cotton blend", "Everyday wear"},
			Specs:       map[string]string{"Material": "Cotton blend", "Length": "Crew", "Pack": "3 pairs"},
			Rating:      4.3,
			ReviewCount: 112,
			InStock:     true,
			Sizes:       allSizes,
		},
	}
}
