// Package report implements the derived analytics shown on the dashboard.
//
// All functions are pure: they compute over an expense list and a reference
// instant supplied by the caller, never touch the database and never fail.
// Empty input yields zero-valued metrics.
package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spending-app/backend/internal/models"
	"github.com/spending-app/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Totals are the period sums for the dashboard cards, in cents.
type Totals struct {
	Today int64 `json:"today" example:"1250"`
	Week  int64 `json:"week" example:"6750"`
	Month int64 `json:"month" example:"31400"`
}

// PeriodTotals sums the expenses for the day, the week and the calendar
// month containing now. Weeks start on Monday and end at now, so expenses
// dated after now do not count towards the week.
func PeriodTotals(expenses []models.Expense, now time.Time) Totals {
	var totals Totals

	today := types.DateOf(now)
	weekStart := startOfWeek(today)
	month := types.MonthOf(now)

	for _, expense := range expenses {
		if expense.Date.Equal(today) {
			totals.Today += expense.Amount
		}

		if !expense.Date.Before(weekStart) && !expense.Date.After(today) {
			totals.Week += expense.Amount
		}

		if month.Contains(time.Time(expense.Date)) {
			totals.Month += expense.Amount
		}
	}

	return totals
}

// startOfWeek returns the Monday of the week containing the date.
func startOfWeek(d types.Date) types.Date {
	days := (int(time.Time(d).Weekday()) + 6) % 7
	return d.AddDate(0, 0, -days)
}

// CategoryBreakdown groups the full expense history by category, summing
// the amounts in cents per category.
func CategoryBreakdown(expenses []models.Expense) map[string]int64 {
	breakdown := make(map[string]int64)

	for _, expense := range expenses {
		breakdown[expense.Category] += expense.Amount
	}

	return breakdown
}

// CategoryTotal is the summed amount in cents for a single category.
type CategoryTotal struct {
	Name   string `json:"name" example:"Food"`
	Amount int64  `json:"amount" example:"1250"`
}

// Insights summarizes the current month.
//
// TopCategory is nil when the month has no expenses. DailyAverage is in
// cents with two decimal places.
type Insights struct {
	Total        int64           `json:"total" example:"31400"`
	TopCategory  *CategoryTotal  `json:"topCategory"`
	DailyAverage decimal.Decimal `json:"dailyAverage" example:"2093.33"`
}

// MonthlyInsights computes the insights for the month containing now.
//
// The daily average divides by the day of the month of now, averaging over
// the elapsed days rather than the month's full length. When two categories
// are tied, the one appearing first in the list keeps the top spot.
func MonthlyInsights(expenses []models.Expense, now time.Time) Insights {
	month := types.MonthOf(now)

	var total int64
	sums := make(map[string]int64)
	var seen []string

	for _, expense := range expenses {
		if !month.Contains(time.Time(expense.Date)) {
			continue
		}

		total += expense.Amount
		if !slices.Contains(seen, expense.Category) {
			seen = append(seen, expense.Category)
		}
		sums[expense.Category] += expense.Amount
	}

	insights := Insights{
		Total:        total,
		DailyAverage: decimal.Zero,
	}

	if len(seen) == 0 {
		return insights
	}

	top := CategoryTotal{Name: seen[0], Amount: sums[seen[0]]}
	for _, name := range seen[1:] {
		if sums[name] > top.Amount {
			top = CategoryTotal{Name: name, Amount: sums[name]}
		}
	}

	insights.TopCategory = &top
	insights.DailyAverage = decimal.New(total, 0).DivRound(decimal.New(int64(now.Day()), 0), 2)

	return insights
}

// Progress relates the month's spending to its budget. Amounts are in
// cents, Remaining is negative when the budget is exceeded.
type Progress struct {
	Budget    int64   `json:"budget" example:"50000"`
	Spent     int64   `json:"spent" example:"31400"`
	Remaining int64   `json:"remaining" example:"18600"`
	Fraction  float64 `json:"fraction" example:"0.628"`
}

// BudgetProgress computes the budget card values. The fraction is clamped
// to [0, 1] and is zero when no budget is set.
func BudgetProgress(budget, monthTotal int64) Progress {
	progress := Progress{
		Budget:    budget,
		Spent:     monthTotal,
		Remaining: budget - monthTotal,
	}

	if budget > 0 {
		progress.Fraction = min(max(float64(monthTotal)/float64(budget), 0), 1)
	}

	return progress
}
