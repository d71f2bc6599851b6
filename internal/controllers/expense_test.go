package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/spending-app/backend/internal/controllers"
	"github.com/spending-app/backend/internal/httputil"
	"github.com/spending-app/backend/internal/models"
	"github.com/spending-app/backend/internal/types"
	"github.com/spending-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	expense := createTestExpense(suite.T(), controllers.ExpenseEditable{})
	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	expense := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount:      types.AmountCents(1250),
		Description: "Lunch at cafe",
		Category:    "Food",
		Date:        types.NewDate(2024, 6, 1),
	})

	suite.Assert().NotZero(expense.ID)
	suite.Assert().Equal(int64(1250), expense.Amount)
	suite.Assert().Equal("Lunch at cafe", expense.Description)
	suite.Assert().Equal("Food", expense.Category)
	suite.Assert().True(expense.Date.Equal(types.NewDate(2024, 6, 1)))
}

func (suite *TestSuiteStandard) TestExpenseCreateDecimalString() {
	// Clients may send the amount as a decimal dollar string.
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/expenses", `{"amount": "12.50", "description": "Lunch at cafe", "category": "Food", "date": "2024-06-01"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var expense models.Expense
	test.DecodeResponse(suite.T(), &r, &expense)
	suite.Assert().Equal(int64(1250), expense.Amount)
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalidBody() {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"broken JSON", `{ "amount": 100`, ""},
		{"missing amount", `{"description": "x", "category": "Food", "date": "2024-06-01"}`, "amount"},
		{"missing description", `{"amount": 100, "category": "Food", "date": "2024-06-01"}`, "description"},
		{"missing date", `{"amount": 100, "description": "x", "category": "Food"}`, "date"},
		{"zero amount", `{"amount": 0, "description": "x", "category": "Food", "date": "2024-06-01"}`, "amount"},
		{"negative amount", `{"amount": -100, "description": "x", "category": "Food", "date": "2024-06-01"}`, "amount"},
		{"unparseable amount", `{"amount": "twelve", "description": "x", "category": "Food", "date": "2024-06-01"}`, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var apiErr httputil.Error
			test.DecodeResponse(t, &r, &apiErr)
			assert.NotEmpty(t, apiErr.Message)

			if tt.field != "" {
				assert.Equal(t, tt.field, apiErr.Field)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesList() {
	// Same date resolves the order by descending ID.
	first := createTestExpense(suite.T(), controllers.ExpenseEditable{Date: types.NewDate(2024, 6, 1)})
	second := createTestExpense(suite.T(), controllers.ExpenseEditable{Date: types.NewDate(2024, 6, 1)})
	newest := createTestExpense(suite.T(), controllers.ExpenseEditable{Date: types.NewDate(2024, 6, 10)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)

	suite.Require().Len(expenses, 3)
	suite.Assert().Equal(newest.ID, expenses[0].ID)
	suite.Assert().Equal(second.ID, expenses[1].ID)
	suite.Assert().Equal(first.ID, expenses[2].ID)
}

func (suite *TestSuiteStandard) TestExpenseGet() {
	expense := createTestExpense(suite.T(), controllers.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched models.Expense
	test.DecodeResponse(suite.T(), &r, &fetched)
	suite.Assert().Equal(expense.ID, fetched.ID)
}

func (suite *TestSuiteStandard) TestExpenseGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/4000", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var apiErr httputil.Error
	test.DecodeResponse(suite.T(), &r, &apiErr)
	suite.Assert().Equal("Expense not found", apiErr.Message)
}

func (suite *TestSuiteStandard) TestExpenseGetInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/not-a-number", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	expense := createTestExpense(suite.T(), controllers.ExpenseEditable{
		Amount:      types.AmountCents(1250),
		Description: "Lunch at cafe",
		Category:    "Food",
		Date:        types.NewDate(2024, 6, 1),
	})

	// Partial update, only the amount changes.
	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), `{"amount": 1500}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Expense
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal(expense.ID, updated.ID)
	suite.Assert().Equal(int64(1500), updated.Amount)
	suite.Assert().Equal("Lunch at cafe", updated.Description)
	suite.Assert().Equal("Food", updated.Category)
	suite.Assert().True(updated.Date.Equal(types.NewDate(2024, 6, 1)))
	suite.Assert().True(updated.CreatedAt.Equal(expense.CreatedAt))
}

func (suite *TestSuiteStandard) TestExpenseUpdateInvalid() {
	expense := createTestExpense(suite.T(), controllers.ExpenseEditable{})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero amount", `{"amount": 0}`, "amount"},
		{"empty description", `{"description": ""}`, "description"},
		{"zero date", `{"date": "0001-01-01"}`, "date"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var apiErr httputil.Error
			test.DecodeResponse(t, &r, &apiErr)
			assert.Equal(t, tt.field, apiErr.Field)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseUpdateNotFound() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/api/expenses/4000", `{"amount": 1500}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	expense := createTestExpense(suite.T(), controllers.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDeleteNonexistent() {
	// Deleting an expense that does not exist still succeeds.
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/expenses/4000", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
