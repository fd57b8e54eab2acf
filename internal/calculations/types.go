package calculations

import (
	"fmt"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// InvestmentConfig описывает неизменяемые входные параметры инвестиции в квартиру
type InvestmentConfig struct {
	BuyPrice                   float64 `json:"buy_price"`
	DownPaymentRatio           float64 `json:"down_payment_ratio"`
	MortgageAnnualRate         float64 `json:"mortgage_annual_rate"`
	MortgageTermMonths         int     `json:"mortgage_term_months"`
	MonthlyRent                float64 `json:"monthly_rent"`
	RentIncreaseRatio          float64 `json:"rent_increase_ratio"`
	RentIncreaseIntervalMonths int     `json:"rent_increase_interval_months"`
	InvestmentTermMonths       int     `json:"investment_term_months"`
	MarketAnnualReturn         float64 `json:"market_annual_return"`
	AnnualAppreciationRate     float64 `json:"annual_appreciation_rate"`
	SellingCostRatio           float64 `json:"selling_cost_ratio"`
}

// InitialCapital возвращает собственный капитал, вложенный при покупке
func (c InvestmentConfig) InitialCapital() float64 {
	return c.BuyPrice * c.DownPaymentRatio
}

// MortgagePrincipal возвращает сумму ипотечного кредита
func (c InvestmentConfig) MortgagePrincipal() float64 {
	return c.BuyPrice * (1.0 - c.DownPaymentRatio)
}

// Validate проверяет доменные инварианты конфигурации до начала расчета
func (c InvestmentConfig) Validate() error {
	for name, value := range map[string]float64{
		"buy_price":                c.BuyPrice,
		"down_payment_ratio":       c.DownPaymentRatio,
		"mortgage_annual_rate":     c.MortgageAnnualRate,
		"monthly_rent":             c.MonthlyRent,
		"rent_increase_ratio":      c.RentIncreaseRatio,
		"market_annual_return":     c.MarketAnnualReturn,
		"annual_appreciation_rate": c.AnnualAppreciationRate,
		"selling_cost_ratio":       c.SellingCostRatio,
	} {
		if !utils.IsFinite(value) {
			return fmt.Errorf("%w: %s не является конечным числом", ErrInvalidConfig, name)
		}
	}
	if c.BuyPrice <= 0 {
		return fmt.Errorf("%w: buy_price должна быть положительной", ErrInvalidConfig)
	}
	if c.DownPaymentRatio <= 0 || c.DownPaymentRatio > 1 {
		return fmt.Errorf("%w: down_payment_ratio должна быть в интервале (0; 1]", ErrInvalidConfig)
	}
	if c.MortgageAnnualRate < 0 {
		return fmt.Errorf("%w: mortgage_annual_rate не может быть отрицательной", ErrInvalidConfig)
	}
	if c.MortgageTermMonths < 1 {
		return fmt.Errorf("%w: mortgage_term_months должен быть не меньше 1", ErrInvalidConfig)
	}
	if c.MonthlyRent < 0 {
		return fmt.Errorf("%w: monthly_rent не может быть отрицательной", ErrInvalidConfig)
	}
	if c.RentIncreaseRatio < 0 {
		return fmt.Errorf("%w: rent_increase_ratio не может быть отрицательной", ErrInvalidConfig)
	}
	if c.RentIncreaseIntervalMonths < 1 {
		return fmt.Errorf("%w: rent_increase_interval_months должен быть не меньше 1", ErrInvalidConfig)
	}
	if c.InvestmentTermMonths < 1 {
		return fmt.Errorf("%w: investment_term_months должен быть не меньше 1", ErrInvalidConfig)
	}
	if c.SellingCostRatio < 0 || c.SellingCostRatio > 1 {
		return fmt.Errorf("%w: selling_cost_ratio должна быть в интервале [0; 1]", ErrInvalidConfig)
	}
	return nil
}

// MonthlyCashflow представляет кашфлоу одного месяца инвестиционного срока
type MonthlyCashflow struct {
	MonthIndex      int     `json:"month_index"`
	RentIncome      float64 `json:"rent_income"`
	MortgagePayment float64 `json:"mortgage_payment"`
	NetCashflow     float64 `json:"net_cashflow"`
}

// SimulationResult представляет итог расчета инвестиции
type SimulationResult struct {
	InitialCapital           float64           `json:"initial_capital"`
	MonthlyCashflows         []MonthlyCashflow `json:"monthly_cashflows"`
	DistinctCashflows        []float64         `json:"distinct_cashflows"`
	TotalLossFromCashflows   float64           `json:"total_loss_from_cashflows"`
	InterestPaidOnMortgage   float64           `json:"interest_paid_on_mortgage"`
	RemainingMortgageBalance float64           `json:"remaining_mortgage_balance"`
	SellPrice                float64           `json:"sell_price"`
	FinalCapital             float64           `json:"final_capital"`
	AverageAnnualReturn      float64           `json:"average_annual_return"`
}

// ScheduleEntry представляет одну запись в графике платежей по ипотеке
type ScheduleEntry struct {
	Month               int     `json:"month"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	PrincipalComponent  float64 `json:"principal_component"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// MortgageSummary представляет сводку по ипотечному кредиту
type MortgageSummary struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annual_rate"`
	Months         int     `json:"months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// ScheduleResult представляет результат расчета графика ипотеки
type ScheduleResult struct {
	Summary  MortgageSummary `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// RentEntry представляет арендную плату одного месяца
type RentEntry struct {
	Month int     `json:"month"`
	Rent  float64 `json:"rent"`
}

// RentScheduleResult представляет помесячную таблицу аренды
type RentScheduleResult struct {
	Schedule []RentEntry `json:"schedule"`
}

// ComparisonResult представляет результат сравнения квартиры с рынком
type ComparisonResult struct {
	Comparison map[string]interface{} `json:"comparison"`
	Apartment  SimulationResult       `json:"apartment"`
}
