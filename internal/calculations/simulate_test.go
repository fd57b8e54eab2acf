package calculations

import (
	"errors"
	"math"
	"testing"
)

// referenceConfig — эталонный сценарий: квартира за 1.9 млн, кредит 1.35 млн
// под 4% на 25 лет, аренда 4500 с ростом 12.36% раз в два года, продажа через 7 лет
func referenceConfig() InvestmentConfig {
	return InvestmentConfig{
		BuyPrice:                   1900000,
		DownPaymentRatio:           550000.0 / 1900000.0,
		MortgageAnnualRate:         0.04,
		MortgageTermMonths:         300,
		MonthlyRent:                4500,
		RentIncreaseRatio:          0.1236,
		RentIncreaseIntervalMonths: 24,
		InvestmentTermMonths:       84,
		MarketAnnualReturn:         0.075,
		AnnualAppreciationRate:     0.06,
		SellingCostRatio:           0.02925,
	}
}

func TestSimulateReferenceScenario(t *testing.T) {
	result, err := Simulate(referenceConfig())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	approx := func(name string, got, want, tol float64) {
		t.Helper()
		if math.Abs(got-want) > tol {
			t.Errorf("%s = %f, want %f", name, got, want)
		}
	}

	approx("initial_capital", result.InitialCapital, 550000, 0.01)
	approx("interest_paid_on_mortgage", result.InterestPaidOnMortgage, 344510.16, 0.05)
	approx("remaining_mortgage_balance", result.RemainingMortgageBalance, 1095943.19, 0.05)
	approx("sell_price", result.SellPrice, 2856897.49, 0.05)
	approx("total_loss_from_cashflows", result.TotalLossFromCashflows, 59788.67, 0.05)
	approx("final_capital", result.FinalCapital, 1617601.39, 0.10)
	approx("average_annual_return", result.AverageAnnualReturn, 0.166621, 0.000001)

	if len(result.MonthlyCashflows) != 84 {
		t.Fatalf("expected 84 monthly cashflows, got %d", len(result.MonthlyCashflows))
	}
	for _, cf := range result.MonthlyCashflows {
		approx("mortgage_payment", cf.MortgagePayment, 7125.797344, 0.0001)
	}

	// аренда растет раз в 24 месяца, на 84 месяцах получается 4 различных кашфлоу
	wantDistinct := []float64{-2625.797344, -2069.597344, -1444.651024, -742.461339}
	if len(result.DistinctCashflows) != len(wantDistinct) {
		t.Fatalf("expected %d distinct cashflows, got %d", len(wantDistinct), len(result.DistinctCashflows))
	}
	for i, want := range wantDistinct {
		approx("distinct_cashflow", result.DistinctCashflows[i], want, 0.001)
	}
}

func TestSimulateNonNegativeCashflowsZeroLoss(t *testing.T) {
	cfg := referenceConfig()
	cfg.MonthlyRent = 10000 // аренда покрывает платеж с запасом

	result, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	for _, cf := range result.MonthlyCashflows {
		if cf.NetCashflow < 0 {
			t.Fatalf("month %d: unexpected negative cashflow %f", cf.MonthIndex, cf.NetCashflow)
		}
	}
	if result.TotalLossFromCashflows != 0 {
		t.Errorf("total_loss_from_cashflows = %f, want 0", result.TotalLossFromCashflows)
	}
}

func TestSimulateTermEqualsMortgageTerm(t *testing.T) {
	cfg := referenceConfig()
	cfg.MortgageTermMonths = 84
	cfg.InvestmentTermMonths = 84

	result, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if math.Abs(result.RemainingMortgageBalance) > 0.01 {
		t.Errorf("remaining_mortgage_balance = %f, want ~0", result.RemainingMortgageBalance)
	}
}

func TestSimulateBeyondMortgageTerm(t *testing.T) {
	cfg := referenceConfig()
	cfg.MortgageTermMonths = 12
	cfg.InvestmentTermMonths = 24

	result, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	for _, cf := range result.MonthlyCashflows[12:] {
		if cf.MortgagePayment != 0 {
			t.Fatalf("month %d: payment = %f, want 0 after mortgage is retired", cf.MonthIndex, cf.MortgagePayment)
		}
		if cf.NetCashflow != cf.RentIncome {
			t.Fatalf("month %d: net cashflow should equal rent income", cf.MonthIndex)
		}
	}
	if result.RemainingMortgageBalance != 0 {
		t.Errorf("remaining_mortgage_balance = %f, want 0", result.RemainingMortgageBalance)
	}
}

func TestSimulateFullDownPayment(t *testing.T) {
	// down_payment_ratio = 1: покупка без кредита, кашфлоу равен аренде
	cfg := referenceConfig()
	cfg.DownPaymentRatio = 1

	result, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if result.InterestPaidOnMortgage != 0 {
		t.Errorf("interest_paid_on_mortgage = %f, want 0", result.InterestPaidOnMortgage)
	}
	if result.RemainingMortgageBalance != 0 {
		t.Errorf("remaining_mortgage_balance = %f, want 0", result.RemainingMortgageBalance)
	}
	if result.TotalLossFromCashflows != 0 {
		t.Errorf("total_loss_from_cashflows = %f, want 0", result.TotalLossFromCashflows)
	}
}

func TestSimulateInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvestmentConfig)
	}{
		{"zero down payment", func(c *InvestmentConfig) { c.DownPaymentRatio = 0 }},
		{"down payment above one", func(c *InvestmentConfig) { c.DownPaymentRatio = 1.5 }},
		{"negative buy price", func(c *InvestmentConfig) { c.BuyPrice = -1 }},
		{"negative mortgage rate", func(c *InvestmentConfig) { c.MortgageAnnualRate = -0.01 }},
		{"zero mortgage term", func(c *InvestmentConfig) { c.MortgageTermMonths = 0 }},
		{"negative rent", func(c *InvestmentConfig) { c.MonthlyRent = -1 }},
		{"zero rent interval", func(c *InvestmentConfig) { c.RentIncreaseIntervalMonths = 0 }},
		{"zero investment term", func(c *InvestmentConfig) { c.InvestmentTermMonths = 0 }},
		{"selling cost above one", func(c *InvestmentConfig) { c.SellingCostRatio = 1.5 }},
		{"non-finite price", func(c *InvestmentConfig) { c.BuyPrice = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := referenceConfig()
			tt.mutate(&cfg)
			_, err := Simulate(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Simulate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDistinctCashflows(t *testing.T) {
	cashflows := []MonthlyCashflow{
		{MonthIndex: 0, NetCashflow: 5},
		{MonthIndex: 1, NetCashflow: 5},
		{MonthIndex: 2, NetCashflow: 3},
		{MonthIndex: 3, NetCashflow: 3},
		{MonthIndex: 4, NetCashflow: 5}, // возврат к прежнему значению не склеивается
	}

	got := DistinctCashflows(cashflows)
	want := []float64{5, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("distinct[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestDistinctCashflowsEmpty(t *testing.T) {
	if got := DistinctCashflows(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
