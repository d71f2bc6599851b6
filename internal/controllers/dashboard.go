package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spending-app/backend/internal/httputil"
	"github.com/spending-app/backend/internal/models"
	"github.com/spending-app/backend/internal/report"
	"github.com/spending-app/backend/internal/types"
)

// DashboardResponse bundles all derived metrics the dashboard renders.
type DashboardResponse struct {
	Totals       report.Totals       `json:"totals"`
	Categories   map[string]int64    `json:"categories"`
	Insights     report.Insights     `json:"insights"`
	WeeklyTrend  []report.TrendPoint `json:"weeklyTrend"`
	MonthlyTrend []report.TrendPoint `json:"monthlyTrend"`
	Budget       report.Progress     `json:"budget"`
}

// RegisterDashboardRoutes registers the routes for the dashboard with the
// RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/api/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns all derived metrics over the full expense history: period totals, category breakdown, monthly insights, trend series and budget progress
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			now	query		string	false	"Reference date in YYYY-MM-DD format, defaults to today"
// @Router			/api/dashboard [get]
func GetDashboard(c *gin.Context) {
	now := time.Now()
	if q := c.Query("now"); q != "" {
		date, err := types.ParseDate(q)
		if err != nil {
			httputil.NewFieldError(c, "now", errInvalidNow)
			return
		}
		now = time.Time(date)
	}

	var expenses []models.Expense
	err := models.DB.Order("date desc, id desc").Find(&expenses).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	// A month without a budget contributes zero to the progress card.
	var budgetAmount int64
	var budget models.Budget
	err = models.DB.First(&budget, "month = ?", types.MonthOf(now)).Error
	switch {
	case err == nil:
		budgetAmount = budget.Amount
	case errors.Is(err, models.ErrNotFound):
	default:
		httputil.NewError(c, status(err), err)
		return
	}

	totals := report.PeriodTotals(expenses, now)

	c.JSON(http.StatusOK, DashboardResponse{
		Totals:       totals,
		Categories:   report.CategoryBreakdown(expenses),
		Insights:     report.MonthlyInsights(expenses, now),
		WeeklyTrend:  report.WeeklyTrend(expenses, now),
		MonthlyTrend: report.MonthlyTrend(expenses, now),
		Budget:       report.BudgetProgress(budgetAmount, totals.Month),
	})
}
