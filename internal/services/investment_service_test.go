package services

import (
	"testing"
	"time"

	"financio/internal/models"
	"financio/internal/pagination"
	"financio/internal/testutil"
)

func TestCreateInvestment(t *testing.T) {
	t.Run("current_value_defaults_to_invested", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		invSvc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		investment, err := invSvc.CreateInvestment(user.ID, models.InvestmentTypeFund, "Index Fund", 2000, 0, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)

		if investment.CurrentValue != 2000 {
			t.Errorf("expected current value 2000, got %v", investment.CurrentValue)
		}
	})

	t.Run("invalid_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		invSvc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := invSvc.CreateInvestment(user.ID, models.InvestmentType("bonds"), "", -10, -5, time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestInvestmentReturns(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	investment := testutil.CreateTestInvestment(t, db, user.ID, 1000, 1250)

	if investment.Return() != 250 {
		t.Errorf("expected return 250, got %v", investment.Return())
	}
	if investment.ReturnPercentage() != 25 {
		t.Errorf("expected return percentage 25, got %v", investment.ReturnPercentage())
	}
}

func TestGetUserInvestments(t *testing.T) {
	t.Run("filters_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		invSvc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := invSvc.CreateInvestment(user.ID, models.InvestmentTypeStock, "ACME", 100, 110, time.Now())
		testutil.AssertNoError(t, err)
		_, err = invSvc.CreateInvestment(user.ID, models.InvestmentTypeCrypto, "BTC", 500, 600, time.Now())
		testutil.AssertNoError(t, err)

		crypto := models.InvestmentTypeCrypto
		result, err := invSvc.GetUserInvestments(user.ID, &crypto, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 crypto investment, got %d", result.TotalItems)
		}
	})
}

func TestUpdateInvestment(t *testing.T) {
	t.Run("updates_current_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		invSvc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)
		investment := testutil.CreateTestInvestment(t, db, user.ID, 1000, 1000)

		value := 1300.0
		updated, err := invSvc.UpdateInvestment(user.ID, investment.ID, InvestmentUpdateFields{CurrentValue: &value})
		testutil.AssertNoError(t, err)

		if updated.CurrentValue != 1300 {
			t.Errorf("expected current value 1300, got %v", updated.CurrentValue)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		invSvc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		value := 1.0
		_, err := invSvc.UpdateInvestment(user.ID, "0198c0de-0000-7000-8000-000000000000", InvestmentUpdateFields{CurrentValue: &value})
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}

func TestDeleteInvestment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	invSvc := NewInvestmentService(db)
	user := testutil.CreateTestUser(t, db)
	investment := testutil.CreateTestInvestment(t, db, user.ID, 1000, 1000)

	testutil.AssertNoError(t, invSvc.DeleteInvestment(user.ID, investment.ID))

	_, err := invSvc.GetInvestmentByID(user.ID, investment.ID)
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
}
