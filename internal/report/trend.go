package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spending-app/backend/internal/models"
	"github.com/spending-app/backend/internal/types"
)

// TrendPoint is one bar of a trend chart. The total is in major currency
// units, not cents, because that is what the charts render.
type TrendPoint struct {
	Label string          `json:"label" example:"Mon"`
	Total decimal.Decimal `json:"total" example:"12.5"`
}

// WeeklyTrend returns one point per calendar day from six weeks before now
// through now, both days inclusive. Points are in chronological order and
// labeled with the short weekday name.
func WeeklyTrend(expenses []models.Expense, now time.Time) []TrendPoint {
	byDay := make(map[types.Date]int64)
	for _, expense := range expenses {
		byDay[expense.Date] += expense.Amount
	}

	end := types.DateOf(now)
	start := end.AddDate(0, 0, -6*7)

	var points []TrendPoint
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		points = append(points, TrendPoint{
			Label: time.Time(day).Format("Mon"),
			Total: toMajorUnits(byDay[day]),
		})
	}

	return points
}

// MonthlyTrend returns one point per calendar month from five months before
// now through the month containing now, six points in total, in
// chronological order and labeled with the short month name.
func MonthlyTrend(expenses []models.Expense, now time.Time) []TrendPoint {
	byMonth := make(map[types.Month]int64)
	for _, expense := range expenses {
		byMonth[expense.Date.Month()] += expense.Amount
	}

	month := types.MonthOf(now).AddDate(0, -5)
	points := make([]TrendPoint, 0, 6)
	for range 6 {
		points = append(points, TrendPoint{
			Label: time.Time(month).Format("Jan"),
			Total: toMajorUnits(byMonth[month]),
		})
		month = month.AddDate(0, 1)
	}

	return points
}

// toMajorUnits converts cents to major currency units.
func toMajorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
