// Package seed loads the demo footwear catalog so a fresh instance is
// browsable without admin work.
package seed

import (
	"context"

	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
)

// Run inserts the demo products unless the catalog already has rows.
func Run(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	products := Products()
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return 0, err
	}
	return len(products), nil
}

// Products returns the demo catalog.
func Products() []models.Product {
	return []models.Product{
		{
			Name:        "Classic Sports Sneakers",
			Description: "Comfortable and stylish sports sneakers perfect for everyday wear and light workouts.",
			Price:       2499,
			Stock:       15,
			Category:    "Sneakers",
			Brand:       "Janata",
			Color:       "White",
			Material:    "Synthetic",
			Sizes:       models.StringList{"7", "8", "9", "10", "11"},
			Tags:        models.StringList{"sports", "casual", "comfortable"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Formal Leather Shoes",
			Description: "Premium leather formal shoes suitable for office and business occasions.",
			Price:       3999,
			Stock:       8,
			Category:    "Formal",
			Brand:       "Janata",
			Color:       "Black",
			Material:    "Genuine Leather",
			Sizes:       models.StringList{"7", "8", "9", "10"},
			Tags:        models.StringList{"formal", "leather", "office"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1614252369475-531eba835eb1?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Running Shoes",
			Description: "Lightweight running shoes with excellent cushioning and breathability.",
			Price:       3499,
			Stock:       12,
			Category:    "Sports",
			Brand:       "Janata",
			Color:       "Blue",
			Material:    "Mesh",
			Sizes:       models.StringList{"6", "7", "8", "9", "10", "11", "12"},
			Tags:        models.StringList{"running", "sports", "lightweight"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Casual Loafers",
			Description: "Comfortable slip-on loafers for casual and semi-formal occasions.",
			Price:       2799,
			Stock:       20,
			Category:    "Casual",
			Brand:       "Janata",
			Color:       "Brown",
			Material:    "Suede",
			Sizes:       models.StringList{"7", "8", "9", "10", "11"},
			Tags:        models.StringList{"casual", "comfort", "slip-on"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1582897085656-c636d006a246?w=400&h=400&fit=crop"},
		},
		{
			Name:        "High-Top Basketball Shoes",
			Description: "High-performance basketball shoes with ankle support and superior grip.",
			Price:       4299,
			Stock:       6,
			Category:    "Sports",
			Brand:       "Janata",
			Color:       "Red",
			Material:    "Synthetic Leather",
			Sizes:       models.StringList{"8", "9", "10", "11", "12"},
			Tags:        models.StringList{"basketball", "sports", "high-top"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Elegant Heels",
			Description: "Stylish heels perfect for formal events and special occasions.",
			Price:       3299,
			Stock:       14,
			Category:    "Formal",
			Brand:       "Janata",
			Color:       "Black",
			Material:    "Patent Leather",
			Sizes:       models.StringList{"5", "6", "7", "8", "9"},
			Tags:        models.StringList{"formal", "heels", "elegant"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Hiking Boots",
			Description: "Durable hiking boots designed for outdoor adventures and rough terrain.",
			Price:       5499,
			Stock:       9,
			Category:    "Boots",
			Brand:       "Janata",
			Color:       "Brown",
			Material:    "Waterproof Leather",
			Sizes:       models.StringList{"7", "8", "9", "10", "11", "12"},
			Tags:        models.StringList{"outdoor", "hiking", "durable"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Canvas Sneakers",
			Description: "Classic canvas sneakers with a timeless design and comfortable fit.",
			Price:       1899,
			Stock:       25,
			Category:    "Sneakers",
			Brand:       "Janata",
			Color:       "White",
			Material:    "Canvas",
			Sizes:       models.StringList{"6", "7", "8", "9", "10", "11"},
			Tags:        models.StringList{"casual", "canvas", "lightweight"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Oxford Dress Shoes",
			Description: "Premium Oxford dress shoes crafted from finest leather for formal occasions.",
			Price:       4599,
			Stock:       7,
			Category:    "Formal",
			Brand:       "Janata",
			Color:       "Black",
			Material:    "Full Grain Leather",
			Sizes:       models.StringList{"7", "8", "9", "10", "11"},
			Tags:        models.StringList{"formal", "oxford", "premium"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Slip-On Sneakers",
			Description: "Easy-to-wear slip-on sneakers perfect for quick outings and casual wear.",
			Price:       2199,
			Stock:       18,
			Category:    "Sneakers",
			Brand:       "Janata",
			Color:       "Gray",
			Material:    "Knit",
			Sizes:       models.StringList{"7", "8", "9", "10", "11"},
			Tags:        models.StringList{"casual", "slip-on", "easy-wear"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1560769629-975ec94e6a86?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Athletic Running Shoes",
			Description: "Performance-focused athletic shoes designed for serious runners and fitness enthusiasts.",
			Price:       3799,
			Stock:       11,
			Category:    "Sports",
			Brand:       "Janata",
			Color:       "Blue",
			Material:    "Breathable Mesh",
			Sizes:       models.StringList{"6", "7", "8", "9", "10", "11", "12"},
			Tags:        models.StringList{"running", "athletic", "performance"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Chelsea Boots",
			Description: "Versatile Chelsea boots that pair well with both casual and smart-casual outfits.",
			Price:       4199,
			Stock:       13,
			Category:    "Boots",
			Brand:       "Janata",
			Color:       "Tan",
			Material:    "Suede",
			Sizes:       models.StringList{"7", "8", "9", "10", "11"},
			Tags:        models.StringList{"boots", "chelsea", "versatile"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1608256246200-53e8b47b2db8?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Minimalist Sneakers",
			Description: "Clean and modern minimalist sneakers with a sleek design for everyday wear.",
			Price:       2899,
			Stock:       22,
			Category:    "Sneakers",
			Brand:       "Janata",
			Color:       "White",
			Material:    "Leather",
			Sizes:       models.StringList{"6", "7", "8", "9", "10", "11"},
			Tags:        models.StringList{"minimalist", "clean", "modern"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Work Boots",
			Description: "Heavy-duty work boots with safety features for industrial and construction use.",
			Price:       5299,
			Stock:       8,
			Category:    "Boots",
			Brand:       "Janata",
			Color:       "Brown",
			Material:    "Steel Toe Leather",
			Sizes:       models.StringList{"7", "8", "9", "10", "11", "12"},
			Tags:        models.StringList{"work", "durable", "safety"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1605348532760-6753d2c43329?w=400&h=400&fit=crop"},
		},
		{
			Name:        "Summer Sandals",
			Description: "Breathable summer sandals perfect for hot weather and beach activities.",
			Price:       1599,
			Stock:       30,
			Category:    "Casual",
			Brand:       "Janata",
			Color:       "Tan",
			Material:    "Synthetic",
			Sizes:       models.StringList{"6", "7", "8", "9", "10", "11"},
			Tags:        models.StringList{"summer", "sandals", "breathable"},
			Images:      models.StringList{"https://images.unsplash.com/photo-1603487742131-4160ec999306?w=400&h=400&fit=crop"},
		},
	}
}
