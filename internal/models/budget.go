package models

import (
	"errors"

	"github.com/spending-app/backend/internal/types"
)

// Budget is the spending ceiling for one calendar month.
//
// There is at most one budget per month and budgets are never deleted.
// Setting a budget for a month that already has one overwrites its amount.
type Budget struct {
	ID     uint64      `json:"id" gorm:"primaryKey" example:"1"`
	Month  types.Month `json:"month" gorm:"uniqueIndex" example:"2024-06"`
	Amount int64       `json:"amount" example:"50000"` // Amount in cents
}

// SetBudget upserts the budget for a month and returns the resulting record.
//
// Two concurrent calls for the same month race on the update path, the
// write that commits last wins.
func SetBudget(month types.Month, amount int64) (Budget, error) {
	if amount <= 0 {
		return Budget{}, ErrAmountNotPositive
	}

	var budget Budget
	err := DB.First(&budget, "month = ?", month).Error

	switch {
	case err == nil:
		err = DB.Model(&budget).Update("amount", amount).Error
		return budget, err

	case errors.Is(err, ErrNotFound):
		budget = Budget{Month: month, Amount: amount}
		err = DB.Create(&budget).Error
		return budget, err

	default:
		return Budget{}, err
	}
}
