package tools

import (
	"context"
	"fmt"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/internal/metrics"
	"github.com/cloud-ru/mcp-realestate-go/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ToolHandler представляет обработчик инструмента MCP
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

func floatParam(params map[string]interface{}, name string) (float64, error) {
	value, ok := params[name].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid parameter: %s", name)
	}
	return value, nil
}

func intParam(params map[string]interface{}, name string) (int, error) {
	// JSON числа приходят как float64
	value, ok := params[name].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid parameter: %s", name)
	}
	return int(value), nil
}

// investmentConfigFromParams собирает конфигурацию инвестиции из параметров инструмента
func investmentConfigFromParams(params map[string]interface{}) (calculations.InvestmentConfig, error) {
	var cfg calculations.InvestmentConfig
	var err error

	if cfg.BuyPrice, err = floatParam(params, "buy_price"); err != nil {
		return cfg, err
	}
	if cfg.DownPaymentRatio, err = floatParam(params, "down_payment_ratio"); err != nil {
		return cfg, err
	}
	if cfg.MortgageAnnualRate, err = floatParam(params, "mortgage_annual_rate"); err != nil {
		return cfg, err
	}
	if cfg.MortgageTermMonths, err = intParam(params, "mortgage_term_months"); err != nil {
		return cfg, err
	}
	if cfg.MonthlyRent, err = floatParam(params, "monthly_rent"); err != nil {
		return cfg, err
	}
	if cfg.RentIncreaseRatio, err = floatParam(params, "rent_increase_ratio"); err != nil {
		return cfg, err
	}
	if cfg.RentIncreaseIntervalMonths, err = intParam(params, "rent_increase_interval_months"); err != nil {
		return cfg, err
	}
	if cfg.InvestmentTermMonths, err = intParam(params, "investment_term_months"); err != nil {
		return cfg, err
	}
	if cfg.MarketAnnualReturn, err = floatParam(params, "market_annual_return"); err != nil {
		return cfg, err
	}
	if cfg.AnnualAppreciationRate, err = floatParam(params, "annual_appreciation_rate"); err != nil {
		return cfg, err
	}
	if cfg.SellingCostRatio, err = floatParam(params, "selling_cost_ratio"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// validateInvestmentConfig проверяет параметры инвестиции против серверных лимитов
func validateInvestmentConfig(cfg *config.Config, ic calculations.InvestmentConfig) error {
	if err := validators.CheckPrice(cfg, ic.BuyPrice); err != nil {
		return err
	}
	if err := validators.CheckDownPaymentRatio(ic.DownPaymentRatio); err != nil {
		return err
	}
	if err := validators.CheckRate(cfg, "mortgage_annual_rate", ic.MortgageAnnualRate); err != nil {
		return err
	}
	if err := validators.CheckMonths(cfg, "mortgage_term_months", ic.MortgageTermMonths); err != nil {
		return err
	}
	if err := validators.CheckRent(cfg, ic.MonthlyRent); err != nil {
		return err
	}
	if err := validators.CheckRate(cfg, "rent_increase_ratio", ic.RentIncreaseRatio); err != nil {
		return err
	}
	if err := validators.CheckMonths(cfg, "rent_increase_interval_months", ic.RentIncreaseIntervalMonths); err != nil {
		return err
	}
	if err := validators.CheckMonths(cfg, "investment_term_months", ic.InvestmentTermMonths); err != nil {
		return err
	}
	if err := validators.CheckReturnRate(cfg, "market_annual_return", ic.MarketAnnualReturn); err != nil {
		return err
	}
	if err := validators.CheckReturnRate(cfg, "annual_appreciation_rate", ic.AnnualAppreciationRate); err != nil {
		return err
	}
	if err := validators.CheckUnitRatio("selling_cost_ratio", ic.SellingCostRatio); err != nil {
		return err
	}
	return nil
}

// EstimateApartmentInvestmentHandler обрабатывает запрос на полный расчет инвестиции
func EstimateApartmentInvestmentHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "estimate_apartment_investment"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		ic, err := investmentConfigFromParams(params)
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}

		span.SetAttributes(
			attribute.Float64("buy_price", ic.BuyPrice),
			attribute.Float64("down_payment_ratio", ic.DownPaymentRatio),
			attribute.Float64("mortgage_annual_rate", ic.MortgageAnnualRate),
			attribute.Int("mortgage_term_months", ic.MortgageTermMonths),
			attribute.Int("investment_term_months", ic.InvestmentTermMonths),
			attribute.Float64("monthly_rent", ic.MonthlyRent),
		)

		if err := validateInvestmentConfig(cfg, ic); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		result, err := calculations.Simulate(ic)
		if err != nil {
			span.SetAttributes(attribute.String("error", "calculation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
			return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("final_capital", result.FinalCapital),
			attribute.Float64("average_annual_return", result.AverageAnnualReturn),
		)

		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.SimulatedMonths.WithLabelValues(toolName).Add(float64(ic.InvestmentTermMonths))

		return result, nil
	}
}

// MortgageScheduleHandler обрабатывает запрос на график платежей по ипотеке
func MortgageScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "mortgage_schedule"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, err := floatParam(params, "principal")
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}
		annualRate, err := floatParam(params, "annual_rate")
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}
		months, err := intParam(params, "months")
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("annual_rate", annualRate),
			attribute.Int("months", months),
		)

		if err := validators.CheckPrice(cfg, principal); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}
		if err := validators.CheckRate(cfg, "annual_rate", annualRate); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}
		if err := validators.CheckMonths(cfg, "months", months); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		result, err := calculations.MortgageSchedule(principal, annualRate, months)
		if err != nil {
			span.SetAttributes(attribute.String("error", "calculation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
			return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("monthly_payment", result.Summary.MonthlyPayment),
			attribute.Float64("total_interest", result.Summary.TotalInterest),
		)

		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.SimulatedMonths.WithLabelValues(toolName).Add(float64(months))

		return result, nil
	}
}

// RentScheduleHandler обрабатывает запрос на помесячную таблицу аренды
func RentScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "rent_schedule"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		monthlyRent, err := floatParam(params, "monthly_rent")
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}
		increaseRatio, err := floatParam(params, "rent_increase_ratio")
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}
		intervalMonths, err := intParam(params, "rent_increase_interval_months")
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}
		months, err := intParam(params, "months")
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}

		span.SetAttributes(
			attribute.Float64("monthly_rent", monthlyRent),
			attribute.Float64("rent_increase_ratio", increaseRatio),
			attribute.Int("rent_increase_interval_months", intervalMonths),
			attribute.Int("months", months),
		)

		if err := validators.CheckRent(cfg, monthlyRent); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}
		if err := validators.CheckRate(cfg, "rent_increase_ratio", increaseRatio); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}
		if err := validators.CheckMonths(cfg, "rent_increase_interval_months", intervalMonths); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}
		if err := validators.CheckMonths(cfg, "months", months); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		result, err := calculations.RentSchedule(monthlyRent, increaseRatio, intervalMonths, months)
		if err != nil {
			span.SetAttributes(attribute.String("error", "calculation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
			return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
		}

		span.SetAttributes(attribute.Bool("success", true))
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.SimulatedMonths.WithLabelValues(toolName).Add(float64(months))

		return result, nil
	}
}

// CompareWithMarketHandler обрабатывает запрос на сравнение квартиры с рынком
func CompareWithMarketHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "compare_with_market"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		ic, err := investmentConfigFromParams(params)
		if err != nil {
			metrics.ToolCalls.WithLabelValues(toolName, "invalid_params").Inc()
			return nil, err
		}

		span.SetAttributes(
			attribute.Float64("buy_price", ic.BuyPrice),
			attribute.Float64("market_annual_return", ic.MarketAnnualReturn),
			attribute.Int("investment_term_months", ic.InvestmentTermMonths),
		)

		if err := validateInvestmentConfig(cfg, ic); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}

		result, err := calculations.CompareWithMarket(ic)
		if err != nil {
			span.SetAttributes(attribute.String("error", "calculation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
			return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
		}

		span.SetAttributes(attribute.Bool("success", true))
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.SimulatedMonths.WithLabelValues(toolName).Add(float64(ic.InvestmentTermMonths))

		return result, nil
	}
}
