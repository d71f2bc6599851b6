package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spending-app/backend/internal/httputil"
	"github.com/spending-app/backend/internal/models"
	"github.com/spending-app/backend/internal/types"
)

// BudgetEditable contains the fields users can set on a budget.
type BudgetEditable struct {
	Month  types.Month       `json:"month" binding:"required" example:"2024-06"`
	Amount types.AmountCents `json:"amount" binding:"required" example:"50000"`
}

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetList)
	r.POST("", SetBudget)

	r.OPTIONS("/:month", OptionsBudgetDetail)
	r.GET("/:month", GetBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/api/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	c.Header("allow", "OPTIONS, POST")
	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/api/budgets/{month} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget
// @Description	Returns the budget for a specific month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	models.Budget
// @Failure		400		{object}	httputil.Error
// @Failure		404		{object}	httputil.Error
// @Failure		500		{object}	httputil.Error
// @Param			month	path		string	true	"Month in YYYY-MM format"
// @Router			/api/budgets/{month} [get]
func GetBudget(c *gin.Context) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		httputil.NewFieldError(c, "month", httputil.ErrInvalidMonth)
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, "month = ?", month).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary		Set budget
// @Description	Sets the budget for a month. If the month already has a budget, its amount is overwritten.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Budget
// @Failure		400		{object}	httputil.Error
// @Failure		500		{object}	httputil.Error
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/api/budgets [post]
func SetBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.Amount <= 0 {
		httputil.NewFieldError(c, "amount", errAmountNotPositive)
		return
	}

	budget, err := models.SetBudget(editable.Month, int64(editable.Amount))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, budget)
}
