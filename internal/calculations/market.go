package calculations

import "math"

// TotalMissedMarketGains суммирует упущенную рыночную доходность по отрицательным кашфлоу.
// Недостача каждого месяца рассматривается как капитал, который мог бы быть вложен
// в рынок с этого месяца и до конца срока под ставку marketAnnualReturn/12 с ежемесячной
// капитализацией. Потерей считается только прирост: сама недостача уже отражена
// в уменьшении капитала. Положительные кашфлоу ничего не добавляют
func TotalMissedMarketGains(cashflows []MonthlyCashflow, marketAnnualReturn float64, termMonths int) float64 {
	monthlyRate := marketAnnualReturn / 12.0

	total := 0.0
	for _, cf := range cashflows {
		if cf.NetCashflow >= 0 {
			continue
		}
		shortfall := -cf.NetCashflow
		total += shortfall*math.Pow(1.0+monthlyRate, float64(termMonths-cf.MonthIndex)) - shortfall
	}

	return total
}

// MarketGrowth возвращает итог вложения капитала в рынок на months месяцев
// под ту же ежемесячно капитализируемую ставку, что и в TotalMissedMarketGains
func MarketGrowth(capital, marketAnnualReturn float64, months int) float64 {
	return capital * math.Pow(1.0+marketAnnualReturn/12.0, float64(months))
}
