package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spending-app/backend/internal/httputil"
	"github.com/spending-app/backend/internal/models"
	"github.com/spending-app/backend/internal/types"
)

// ExpenseEditable contains the fields users can set on an expense.
type ExpenseEditable struct {
	Amount      types.AmountCents `json:"amount" binding:"required" example:"1250"`
	Description string            `json:"description" binding:"required" example:"Lunch at cafe"`
	Category    string            `json:"category" binding:"required" example:"Food"`
	Date        types.Date        `json:"date" binding:"required" example:"2024-06-01"`
}

func (e ExpenseEditable) model() models.Expense {
	return models.Expense{
		Amount:      int64(e.Amount),
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
	}
}

// ExpenseUpdate is the partial-update body for PUT. Only fields that are
// present in the body are merged into the record.
type ExpenseUpdate struct {
	Amount      *types.AmountCents `json:"amount"`
	Description *string            `json:"description"`
	Category    *string            `json:"category"`
	Date        *types.Date        `json:"date"`
}

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PUT("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List expenses
// @Description	Returns all expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		models.Expense
// @Failure		500	{object}	httputil.Error
// @Router			/api/expenses [get]
func GetExpenses(c *gin.Context) {
	var expenses []models.Expense
	err := models.DB.Order("date desc, id desc").Find(&expenses).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	models.Expense
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/api/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Create expense
// @Description	Creates a new expense. The amount can be sent as integer cents or as a decimal dollar string.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Expense
// @Failure		400		{object}	httputil.Error
// @Failure		500		{object}	httputil.Error
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.Amount <= 0 {
		httputil.NewFieldError(c, "amount", errAmountNotPositive)
		return
	}

	expense := editable.model()
	err := models.DB.Create(&expense).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified, id and createdAt are immutable.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Expense
// @Failure		400		{object}	httputil.Error
// @Failure		404		{object}	httputil.Error
// @Failure		500		{object}	httputil.Error
// @Param			id		path		uint64			true	"ID of the expense"
// @Param			expense	body		ExpenseUpdate	true	"Fields to update"
// @Router			/api/expenses/{id} [put]
func UpdateExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var update ExpenseUpdate
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	if update.Amount != nil {
		if *update.Amount <= 0 {
			httputil.NewFieldError(c, "amount", errAmountNotPositive)
			return
		}
		expense.Amount = int64(*update.Amount)
	}

	if update.Description != nil {
		if *update.Description == "" {
			httputil.NewFieldError(c, "description", errDescriptionEmpty)
			return
		}
		expense.Description = *update.Description
	}

	if update.Category != nil {
		expense.Category = *update.Category
	}

	if update.Date != nil {
		if update.Date.IsZero() {
			httputil.NewFieldError(c, "date", errDateNotSet)
			return
		}
		expense.Date = *update.Date
	}

	err = models.DB.Save(&expense).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Delete expense
// @Description	Deletes an expense. Deleting an expense that does not exist succeeds.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/api/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	// No existence check: deleting a record that is already gone is a no-op.
	err = models.DB.Delete(&models.Expense{}, id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
