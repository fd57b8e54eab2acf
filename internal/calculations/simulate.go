package calculations

import "fmt"

// Simulate выполняет полный расчет инвестиции в квартиру: помесячные кашфлоу
// за инвестиционный срок, упущенная рыночная доходность по отрицательным кашфлоу,
// итоговый капитал при продаже и средняя годовая доходность.
//
// Ипотечные месяцы идут параллельно инвестиционным: если инвестиционный срок
// короче срока кредита, при продаже остается непогашенный остаток; если длиннее,
// после погашения платежи нулевые. Расчет детерминирован: суммы накапливаются
// помесячно слева направо без округления
func Simulate(cfg InvestmentConfig) (*SimulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	initial := cfg.InitialCapital()
	if initial <= 0 {
		return nil, fmt.Errorf("%w: initial_capital = %v", ErrInvalidCapital, initial)
	}

	// при down_payment_ratio = 1 покупка полностью за свои, кредита нет
	var am *amortizer
	if principal := cfg.MortgagePrincipal(); principal > 0 {
		var err error
		am, err = newAmortizer(principal, cfg.MortgageAnnualRate, cfg.MortgageTermMonths)
		if err != nil {
			return nil, err
		}
	}

	cashflows := make([]MonthlyCashflow, 0, cfg.InvestmentTermMonths)
	interestPaid := 0.0
	for i := 0; i < cfg.InvestmentTermMonths; i++ {
		var payment, interest float64
		if am != nil {
			payment, interest, _ = am.step()
		}
		interestPaid += interest

		rent := RentAt(cfg.MonthlyRent, cfg.RentIncreaseRatio, cfg.RentIncreaseIntervalMonths, i)
		cashflows = append(cashflows, MonthlyCashflow{
			MonthIndex:      i,
			RentIncome:      rent,
			MortgagePayment: payment,
			NetCashflow:     rent - payment,
		})
	}

	balance := 0.0
	if am != nil {
		balance = am.balance
	}

	totalLoss := TotalMissedMarketGains(cashflows, cfg.MarketAnnualReturn, cfg.InvestmentTermMonths)
	sell := SellPrice(cfg.BuyPrice, cfg.AnnualAppreciationRate, cfg.InvestmentTermMonths)
	final := sell*(1.0-cfg.SellingCostRatio) - balance - totalLoss

	avg, err := AverageAnnualReturn(initial, final, cfg.InvestmentTermMonths)
	if err != nil {
		return nil, err
	}

	return &SimulationResult{
		InitialCapital:           initial,
		MonthlyCashflows:         cashflows,
		DistinctCashflows:        DistinctCashflows(cashflows),
		TotalLossFromCashflows:   totalLoss,
		InterestPaidOnMortgage:   interestPaid,
		RemainingMortgageBalance: balance,
		SellPrice:                sell,
		FinalCapital:             final,
		AverageAnnualReturn:      avg,
	}, nil
}

// DistinctCashflows возвращает значения кашфлоу по одному на каждую смену значения
// относительно предыдущего месяца, в порядке первого появления. Сравнение
// с непосредственным предшественником не склеивает совпавшие значения
// из несмежных месяцев
func DistinctCashflows(cashflows []MonthlyCashflow) []float64 {
	distinct := make([]float64, 0)
	for i, cf := range cashflows {
		if i == 0 || cf.NetCashflow != cashflows[i-1].NetCashflow {
			distinct = append(distinct, cf.NetCashflow)
		}
	}
	return distinct
}
