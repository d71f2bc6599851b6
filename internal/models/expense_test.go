package models_test

import (
	"errors"
	"time"

	"github.com/spending-app/backend/internal/models"
	"github.com/spending-app/backend/internal/types"
)

func (suite *TestSuiteStandard) TestExpenseCreateSetsTimestamp() {
	expense := models.Expense{
		Amount:      1250,
		Description: "Lunch at cafe",
		Category:    "Food",
		Date:        types.NewDate(2024, 6, 1),
	}

	err := models.DB.Create(&expense).Error
	suite.Require().Nil(err)

	suite.Assert().NotZero(expense.ID)
	suite.Assert().WithinDuration(time.Now(), expense.CreatedAt, time.Minute)
}

func (suite *TestSuiteStandard) TestExpenseNotFoundError() {
	var expense models.Expense
	err := models.DB.First(&expense, 999).Error

	suite.Require().NotNil(err)
	suite.Assert().True(errors.Is(err, models.ErrNotFound))
	suite.Assert().Equal("Expense not found", err.Error())
}

func (suite *TestSuiteStandard) TestSeedOnlyRunsOnEmptyDatabase() {
	suite.Require().Nil(models.Seed())

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(3), count)

	// A second run must not duplicate the samples.
	suite.Require().Nil(models.Seed())
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(3), count)
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDatabase() {
	sqlDB, err := models.DB.DB()
	suite.Require().Nil(err)
	suite.Require().Nil(sqlDB.Close())

	err = models.DB.Create(&models.Expense{Amount: 100, Description: "test", Category: "Food", Date: types.NewDate(2024, 6, 1)}).Error
	suite.Assert().True(errors.Is(err, models.ErrGeneral))

	// Reconnect so that the teardown can close the database again.
	suite.SetupTest()
}
