package controllers_test

import (
	"net/http"
	"testing"

	"github.com/spending-app/backend/internal/httputil"
	"github.com/spending-app/backend/internal/models"
	"github.com/spending-app/backend/internal/types"
	"github.com/spending-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/api/budgets/2024-06", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetSet() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/budgets", `{"month": "2024-06", "amount": 50000}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget models.Budget
	test.DecodeResponse(suite.T(), &r, &budget)

	suite.Assert().NotZero(budget.ID)
	suite.Assert().True(budget.Month.Equal(types.NewMonth(2024, 6)))
	suite.Assert().Equal(int64(50000), budget.Amount)
}

func (suite *TestSuiteStandard) TestBudgetSetOverwrites() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/budgets", `{"month": "2024-06", "amount": 50000}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var first models.Budget
	test.DecodeResponse(suite.T(), &r, &first)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/api/budgets", `{"month": "2024-06", "amount": 70000}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var second models.Budget
	test.DecodeResponse(suite.T(), &r, &second)

	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().Equal(int64(70000), second.Amount)

	var count int64
	err := models.DB.Model(&models.Budget{}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestBudgetSetInvalid() {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"broken JSON", `{ "month":`, ""},
		{"missing month", `{"amount": 50000}`, "month"},
		{"missing amount", `{"month": "2024-06"}`, "amount"},
		{"zero amount", `{"month": "2024-06", "amount": 0}`, "amount"},
		{"negative amount", `{"month": "2024-06", "amount": -100}`, "amount"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/budgets", tt.body)
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

func (suite *TestSuiteStandard) TestBudgetGet() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/budgets", `{"month": "2024-06", "amount": 50000}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/budgets/2024-06", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget models.Budget
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.Assert().Equal(int64(50000), budget.Amount)
}

func (suite *TestSuiteStandard) TestBudgetGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/budgets/1999-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var apiErr httputil.Error
	test.DecodeResponse(suite.T(), &r, &apiErr)
	suite.Assert().Equal("Budget not found", apiErr.Message)
}

func (suite *TestSuiteStandard) TestBudgetGetInvalidMonth() {
	for _, month := range []string{"2024-13", "June", "2024-6", "2024-06-01"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/budgets/"+month, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var apiErr httputil.Error
		test.DecodeResponse(suite.T(), &r, &apiErr)
		suite.Assert().Equal("month", apiErr.Field)
	}
}
