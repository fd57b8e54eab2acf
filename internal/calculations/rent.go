package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// RentAt возвращает арендную плату за месяц month (нумерация с нуля).
// Аренда растет на increaseRatio каждые intervalMonths месяцев:
// rent(i) = monthlyRent * (1 + increaseRatio)^floor(i / intervalMonths)
func RentAt(monthlyRent, increaseRatio float64, intervalMonths, month int) float64 {
	return monthlyRent * math.Pow(1.0+increaseRatio, float64(month/intervalMonths))
}

// RentSchedule строит помесячную таблицу аренды на заданный горизонт
func RentSchedule(monthlyRent, increaseRatio float64, intervalMonths, months int) (*RentScheduleResult, error) {
	if !utils.IsFinite(monthlyRent) || monthlyRent < 0 {
		return nil, fmt.Errorf("%w: monthly_rent = %v", ErrInvalidConfig, monthlyRent)
	}
	if !utils.IsFinite(increaseRatio) || increaseRatio < 0 {
		return nil, fmt.Errorf("%w: rent_increase_ratio = %v", ErrInvalidConfig, increaseRatio)
	}
	if intervalMonths <= 0 {
		return nil, fmt.Errorf("%w: rent_increase_interval_months = %d", ErrInvalidConfig, intervalMonths)
	}
	if months <= 0 {
		return nil, fmt.Errorf("%w: months = %d", ErrInvalidConfig, months)
	}

	schedule := make([]RentEntry, 0, months)
	for i := 0; i < months; i++ {
		schedule = append(schedule, RentEntry{
			Month: i,
			Rent:  utils.Round2(RentAt(monthlyRent, increaseRatio, intervalMonths, i)),
		})
	}

	return &RentScheduleResult{Schedule: schedule}, nil
}
