package models

import (
	"time"

	"github.com/spending-app/backend/internal/types"
)

// Expense represents a single spending event.
type Expense struct {
	Model
	Amount      int64      `json:"amount" example:"1250"` // Amount in cents
	Description string     `json:"description" example:"Lunch at cafe"`
	Category    string     `json:"category" example:"Food"`
	Date        types.Date `json:"date" example:"2024-06-01"`
}

// RecommendedCategories are the categories clients offer by default.
// Any other string is accepted, unknown categories get a fallback display
// treatment on the client.
var RecommendedCategories = []string{"Food", "Entertainment", "Amenities", "Miscellaneous"}

// Seed inserts sample expenses for today when no expenses exist yet, so a
// fresh instance has something to show on the dashboard.
func Seed() error {
	var count int64
	err := DB.Model(&Expense{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	today := types.DateOf(time.Now())
	samples := []Expense{
		{Amount: 1250, Description: "Lunch at cafe", Category: "Food", Date: today},
		{Amount: 5500, Description: "Movie tickets", Category: "Entertainment", Date: today},
		{Amount: 15000, Description: "Electric bill", Category: "Amenities", Date: today},
	}

	return DB.Create(&samples).Error
}
