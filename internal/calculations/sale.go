package calculations

import (
	"fmt"
	"math"
)

// SellPrice возвращает цену продажи квартиры после termMonths месяцев
// годового роста annualAppreciationRate
func SellPrice(buyPrice, annualAppreciationRate float64, termMonths int) float64 {
	return buyPrice * math.Pow(1.0+annualAppreciationRate, float64(termMonths)/12.0)
}

// AverageAnnualReturn решает initial*(1+a)^years = final относительно a,
// где years = termMonths/12
func AverageAnnualReturn(initialCapital, finalCapital float64, termMonths int) (float64, error) {
	if initialCapital <= 0 {
		return 0, fmt.Errorf("%w: initial_capital = %v", ErrInvalidCapital, initialCapital)
	}

	ratio := finalCapital / initialCapital
	if ratio < 0 {
		// корень нецелой степени из отрицательного числа не определен в вещественных
		// числах; сообщаем об этом явно вместо NaN
		return 0, fmt.Errorf("%w: final_capital/initial_capital = %v", ErrNegativeBaseRoot, ratio)
	}

	years := float64(termMonths) / 12.0
	return math.Pow(ratio, 1.0/years) - 1.0, nil
}
