package calculations

import (
	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// CompareWithMarket сопоставляет инвестицию в квартиру с вложением того же
// начального капитала в рынок на тот же срок
func CompareWithMarket(cfg InvestmentConfig) (*ComparisonResult, error) {
	apartment, err := Simulate(cfg)
	if err != nil {
		return nil, err
	}

	marketFinal := MarketGrowth(apartment.InitialCapital, cfg.MarketAnnualReturn, cfg.InvestmentTermMonths)
	marketReturn, err := AverageAnnualReturn(apartment.InitialCapital, marketFinal, cfg.InvestmentTermMonths)
	if err != nil {
		return nil, err
	}

	diff := apartment.FinalCapital - marketFinal

	var betterOption string
	var advantage float64
	var recommendation string

	switch {
	case diff > 0:
		betterOption = "квартира"
		advantage = diff
		recommendation = "Покупка квартиры выгоднее вложения в рынок на этом горизонте. Учтите, что расчет не включает налоги, инфляцию и простои аренды."
	case diff < 0:
		betterOption = "рынок"
		advantage = -diff
		recommendation = "Вложение начального капитала в рынок выгоднее покупки квартиры. Учтите, что рыночная доходность предполагается постоянной."
	default:
		betterOption = "равны"
		advantage = 0.0
		recommendation = "Оба варианта дают одинаковый итоговый капитал."
	}

	comparison := map[string]interface{}{
		"initial_capital":        utils.Round2(apartment.InitialCapital),
		"investment_term_months": cfg.InvestmentTermMonths,
		"apartment": map[string]interface{}{
			"final_capital":                 utils.Round2(apartment.FinalCapital),
			"average_annual_return_percent": utils.Percent(apartment.AverageAnnualReturn),
			"total_loss_from_cashflows":     utils.Round2(apartment.TotalLossFromCashflows),
			"remaining_mortgage_balance":    utils.Round2(apartment.RemainingMortgageBalance),
		},
		"market": map[string]interface{}{
			"final_capital":                 utils.Round2(marketFinal),
			"average_annual_return_percent": utils.Percent(marketReturn),
		},
		"difference": map[string]interface{}{
			"final_capital_diff": utils.Round2(diff),
			"better_option":      betterOption,
			"advantage":          utils.Round2(advantage),
		},
		"recommendation": recommendation,
	}

	return &ComparisonResult{
		Comparison: comparison,
		Apartment:  *apartment,
	}, nil
}
