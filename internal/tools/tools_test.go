package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"go.opentelemetry.io/otel"
)

func referenceParams() map[string]interface{} {
	return map[string]interface{}{
		"buy_price":                     1900000.0,
		"down_payment_ratio":            550000.0 / 1900000.0,
		"mortgage_annual_rate":          0.04,
		"mortgage_term_months":          300.0,
		"monthly_rent":                  4500.0,
		"rent_increase_ratio":           0.1236,
		"rent_increase_interval_months": 24.0,
		"investment_term_months":        84.0,
		"market_annual_return":          0.075,
		"annual_appreciation_rate":      0.06,
		"selling_cost_ratio":            0.02925,
	}
}

func TestEstimateApartmentInvestmentHandler(t *testing.T) {
	cfg, _ := config.LoadConfig()
	handler := EstimateApartmentInvestmentHandler(cfg, otel.Tracer("test"))

	result, err := handler(context.Background(), referenceParams())
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	sim, ok := result.(*calculations.SimulationResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if len(sim.MonthlyCashflows) != 84 {
		t.Errorf("expected 84 cashflows, got %d", len(sim.MonthlyCashflows))
	}
	if sim.FinalCapital <= 0 {
		t.Errorf("final capital = %f, want positive", sim.FinalCapital)
	}
}

func TestEstimateApartmentInvestmentHandlerValidation(t *testing.T) {
	cfg, _ := config.LoadConfig()
	handler := EstimateApartmentInvestmentHandler(cfg, otel.Tracer("test"))

	params := referenceParams()
	params["buy_price"] = -1.0

	if _, err := handler(context.Background(), params); err == nil {
		t.Fatal("expected validation error, got nil")
	}
}

func TestEstimateApartmentInvestmentHandlerMissingParam(t *testing.T) {
	cfg, _ := config.LoadConfig()
	handler := EstimateApartmentInvestmentHandler(cfg, otel.Tracer("test"))

	params := referenceParams()
	delete(params, "monthly_rent")

	_, err := handler(context.Background(), params)
	if err == nil || !strings.Contains(err.Error(), "monthly_rent") {
		t.Fatalf("error = %v, want invalid parameter monthly_rent", err)
	}
}

func TestMortgageScheduleHandler(t *testing.T) {
	cfg, _ := config.LoadConfig()
	handler := MortgageScheduleHandler(cfg, otel.Tracer("test"))

	result, err := handler(context.Background(), map[string]interface{}{
		"principal":   1350000.0,
		"annual_rate": 0.04,
		"months":      300.0,
	})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	schedule, ok := result.(*calculations.ScheduleResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if schedule.Summary.MonthlyPayment != 7125.80 {
		t.Errorf("monthly payment = %f, want 7125.80", schedule.Summary.MonthlyPayment)
	}
}

func TestRentScheduleHandler(t *testing.T) {
	cfg, _ := config.LoadConfig()
	handler := RentScheduleHandler(cfg, otel.Tracer("test"))

	result, err := handler(context.Background(), map[string]interface{}{
		"monthly_rent":                  4500.0,
		"rent_increase_ratio":           0.1236,
		"rent_increase_interval_months": 24.0,
		"months":                        84.0,
	})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	schedule, ok := result.(*calculations.RentScheduleResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if len(schedule.Schedule) != 84 {
		t.Errorf("expected 84 entries, got %d", len(schedule.Schedule))
	}
}

func TestCompareWithMarketHandler(t *testing.T) {
	cfg, _ := config.LoadConfig()
	handler := CompareWithMarketHandler(cfg, otel.Tracer("test"))

	result, err := handler(context.Background(), referenceParams())
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if _, ok := result.(*calculations.ComparisonResult); !ok {
		t.Fatalf("unexpected result type %T", result)
	}
}
