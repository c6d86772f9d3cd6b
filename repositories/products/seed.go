package products

import (
	"github.com/shopspring/decimal"

	"github.com/smarttech/storefront/models"
)

// SeedCatalog returns the starter catalog installed when the products channel
// is empty on first access.
func SeedCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "MacBook Pro M3",
			Description: "The most advanced laptop for professional workflows with the M3 chip.",
			Price:       decimal.NewFromInt(1999),
			Category:    "Laptops",
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&q=80&w=800",
			Stock:       12,
		},
		{
			ID:          "2",
			Name:        "Sony A7 IV",
			Description: "A versatile full-frame mirrorless camera for photography and cinema.",
			Price:       decimal.NewFromInt(2499),
			Category:    "Cameras",
			Image:       "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&q=80&w=800",
			Stock:       8,
		},
		{
			ID:          "3",
			Name:        "Keychron Q1 Pro",
			Description: "Fully customizable wireless mechanical keyboard with aluminum body.",
			Price:       decimal.NewFromInt(199),
			Category:    "Keyboards",
			Image:       "https://images.unsplash.com/photo-1595225405013-98993544f85c?auto=format&fit=crop&q=80&w=800",
			Stock:       25,
		},
		{
			ID:          "4",
			Name:        "Logitech MX Master 3S",
			Description: "The ultimate performance mouse for creators and developers.",
			Price:       decimal.NewFromInt(99),
			Category:    "Mouse",
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?auto=format&fit=crop&q=80&w=800",
			Stock:       30,
		},
		{
			ID:          "5",
			Name:        "AirPods Max",
			Description: "High-fidelity audio with industry-leading active noise cancellation.",
			Price:       decimal.NewFromInt(549),
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1546435770-a3e426ff4731?auto=format&fit=crop&q=80&w=800",
			Stock:       15,
		},
		{
			ID:          "6",
			Name:        "ASUS ROG Swift OLED",
			Description: "Ultrafast 240Hz gaming monitor with stunning OLED depth.",
			Price:       decimal.NewFromInt(1299),
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?auto=format&fit=crop&q=80&w=800",
			Stock:       5,
		},
		{
			ID:          "7",
			Name:        "iPad Pro M2",
			Description: "The ultimate tablet experience with desktop-class performance.",
			Price:       decimal.NewFromInt(1099),
			Category:    "Laptops",
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?auto=format&fit=crop&q=80&w=800",
			Stock:       10,
		},
		{
			ID:          "8",
			Name:        "Razer DeathAdder V3",
			Description: "Ultra-lightweight ergonomic wired gaming mouse.",
			Price:       decimal.NewFromInt(69),
			Category:    "Mouse",
			Image:       "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?auto=format&fit=crop&q=80&w=800",
			Stock:       50,
		},
		{
			ID:          "9",
			Name:        "Canon EOS R5",
			Description: "Professional image quality with 8K RAW video capabilities.",
			Price:       decimal.NewFromInt(3499),
			Category:    "Cameras",
			Image:       "https://images.unsplash.com/photo-1510127034890-ba27508e9f1c?auto=format&fit=crop&q=80&w=800",
			Stock:       3,
		},
		{
			ID:          "10",
			Name:        "SteelSeries Apex Pro",
			Description: "The worlds fastest mechanical gaming keyboard.",
			Price:       decimal.NewFromInt(199),
			Category:    "Keyboards",
			Image:       "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&q=80&w=800",
			Stock:       12,
		},
		{
			ID:          "11",
			Name:        "Sony WH-1000XM5",
			Description: "Industry-leading noise canceling headphones.",
			Price:       decimal.NewFromInt(399),
			Category:    "Accessories",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=800",
			Stock:       20,
		},
		{
			ID:          "12",
			Name:        "Dell XPS 15",
			Description: "The perfect balance of power and portability for creators.",
			Price:       decimal.NewFromInt(2199),
			Category:    "Laptops",
			Image:       "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?auto=format&fit=crop&q=80&w=800",
			Stock:       7,
		},
		{
			ID:          "13",
			Name:        "GoPro HERO12 Black",
			Description: "Capture incredible video with 5.3K HDR resolution.",
			Price:       decimal.NewFromInt(399),
			Category:    "Cameras",
			Image:       "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?auto=format&fit=crop&q=80&w=800",
			Stock:       15,
		},
		{
			ID:          "14",
			Name:        "Glorious Model O 2",
			Description: "A masterpiece of design and performance gaming mouse.",
			Price:       decimal.NewFromInt(89),
			Category:    "Mouse",
			Image:       "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?auto=format&fit=crop&q=80&w=800",
			Stock:       25,
		},
		{
			ID:          "15",
			Name:        "Ducky One 3 TKL",
			Description: "High-quality PBT keycaps and hot-swappable switches.",
			Price:       decimal.NewFromInt(129),
			Category:    "Keyboards",
			Image:       "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&q=80&w=800",
			Stock:       10,
		},
	}
}
