package store

import (
	"time"

	"go-campus-canteen/models"
)

func seedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "1",
			Name:        "Seblak",
			Description: "Seblak pedas gurih dengan kerupuk kenyal dan topping melimpah.",
			Price:       15000,
			Category:    models.CategoryHeavyFood,
			Image:       "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400",
			Stock:       50,
			IsAvailable: true,
		},
		{
			ID:          "2",
			Name:        "Nasi Goreng",
			Description: "Nasi goreng spesial dimasak dengan bumbu pilihan yang kaya rasa.",
			Price:       15000,
			Category:    models.CategoryHeavyFood,
			Image:       "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=400",
			Stock:       30,
			IsAvailable: true,
		},
		{
			ID:          "3",
			Name:        "Seblak Bandung",
			Description: "Seblak khas Bandung dengan kuah kental dan bumbu rempah yang kaya.",
			Price:       15000,
			Category:    models.CategoryNoodles,
			Image:       "https://images.unsplash.com/photo-1569058242567-93de6f36f8eb?w=400",
			Stock:       25,
			IsAvailable: true,
		},
		{
			ID:          "4",
			Name:        "Risol Mayo",
			Description: "Risol isi mayo dengan kulit renyah dan isian mayo yang creamy.",
			Price:       3000,
			Category:    models.CategorySnack,
			Image:       "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400",
			Stock:       100,
			IsAvailable: true,
		},
		{
			ID:          "5",
			Name:        "Fanta",
			Description: "Minuman segar dengan rasa jeruk dan es batu.",
			Price:       5000,
			Category:    models.CategoryDrink,
			Image:       "https://images.unsplash.com/photo-1624517452488-04869289c4ca?w=400",
			Stock:       200,
			IsAvailable: true,
		},
	}
}

// sampleOrders is the fallback fixture used when no persisted orders
// exist. Its discount predates the current 10% rule and is kept as
// shipped; the formula only applies to newly placed orders.
func sampleOrders() []models.Order {
	placedAt := time.Date(2025, time.November, 23, 10, 0, 0, 0, time.Local)
	return []models.Order{
		{
			ID:          "order-1",
			QueueNumber: 1,
			UserID:      "user-1",
			UserName:    "John Doe",
			Items: []models.OrderItem{
				{
					ID:            "item-1",
					MenuItemID:    "1",
					MenuItemName:  "Seblak Bandung",
					MenuItemImage: "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=400",
					Quantity:      2,
					Price:         15000,
					SpicyLevel:    models.SpicySpicy,
				},
				{
					ID:            "item-2",
					MenuItemID:    "4",
					MenuItemName:  "Risol Mayo",
					MenuItemImage: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400",
					Quantity:      4,
					Price:         3000,
				},
			},
			Subtotal:  42000,
			Discount:  7000,
			Total:     35000,
			Status:    models.StatusPending,
			CreatedAt: placedAt,
			UpdatedAt: placedAt,
		},
	}
}
