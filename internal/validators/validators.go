package validators

import (
	"fmt"

	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// ValidateNumber проверяет, что число конечно и в допустимом диапазоне
func ValidateNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrice проверяет цену покупки квартиры
func CheckPrice(cfg *config.Config, price float64) error {
	return ValidateNumber("buy_price", price, 1e-9, cfg.MaxPrice)
}

// CheckDownPaymentRatio проверяет долю первоначального взноса
func CheckDownPaymentRatio(ratio float64) error {
	if !utils.IsFinite(ratio) || ratio <= 0 || ratio > 1 {
		return fmt.Errorf("down_payment_ratio: значение должно быть в интервале (0; 1]")
	}
	return nil
}

// CheckRate проверяет годовую ставку (доля, а не проценты)
func CheckRate(cfg *config.Config, name string, rate float64) error {
	return ValidateNumber(name, rate, 0.0, cfg.MaxRate)
}

// CheckReturnRate проверяет годовую доходность; допускает отрицательные значения
// вплоть до полной потери капитала
func CheckReturnRate(cfg *config.Config, name string, rate float64) error {
	return ValidateNumber(name, rate, -1.0, cfg.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, name string, months int) error {
	return ValidateIntRange(name, months, 1, cfg.MaxMonths)
}

// CheckRent проверяет месячную арендную плату
func CheckRent(cfg *config.Config, rent float64) error {
	return ValidateNumber("monthly_rent", rent, 0.0, cfg.MaxRent)
}

// CheckUnitRatio проверяет долю из отрезка [0; 1]
func CheckUnitRatio(name string, ratio float64) error {
	return ValidateNumber(name, ratio, 0.0, 1.0)
}
