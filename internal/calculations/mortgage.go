package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// amortizer ведет помесячное состояние аннуитетной ипотеки.
// Разбивка платежа на проценты и тело считается итеративно, месяц за месяцем,
// без округления: остаток каждого месяца зависит от всех предыдущих
type amortizer struct {
	payment float64
	rate    float64 // месячная ставка
	balance float64
	months  int
	month   int
}

func newAmortizer(principal, annualRate float64, termMonths int) (*amortizer, error) {
	if !utils.IsFinite(principal) || principal <= 0 {
		return nil, fmt.Errorf("%w: principal = %v", ErrInvalidMortgageParameters, principal)
	}
	if !utils.IsFinite(annualRate) || annualRate < 0 {
		return nil, fmt.Errorf("%w: annual_rate = %v", ErrInvalidMortgageParameters, annualRate)
	}
	if termMonths <= 0 {
		return nil, fmt.Errorf("%w: term_months = %d", ErrInvalidMortgageParameters, termMonths)
	}

	r := annualRate / 12.0
	var payment float64
	if r == 0.0 {
		payment = principal / float64(termMonths)
	} else {
		growth := math.Pow(1.0+r, float64(termMonths))
		payment = principal * r * growth / (growth - 1.0)
	}

	return &amortizer{payment: payment, rate: r, balance: principal, months: termMonths}, nil
}

// step выполняет один месячный платеж и возвращает его разбивку.
// После полного погашения кредита платежи нулевые, а остаток равен нулю
func (a *amortizer) step() (payment, interest, principalComponent float64) {
	if a.month >= a.months {
		a.balance = 0.0
		return 0.0, 0.0, 0.0
	}
	a.month++

	interest = a.balance * a.rate
	principalComponent = a.payment - interest
	if a.month == a.months {
		// последний платеж закрывает остаток целиком
		principalComponent = a.balance
	}
	a.balance -= principalComponent

	return interest + principalComponent, interest, principalComponent
}

// MonthlyMortgagePayment возвращает фиксированный аннуитетный платеж:
// P*r*(1+r)^n / ((1+r)^n - 1), при нулевой ставке P/n
func MonthlyMortgagePayment(principal, annualRate float64, termMonths int) (float64, error) {
	a, err := newAmortizer(principal, annualRate, termMonths)
	if err != nil {
		return 0, err
	}
	return a.payment, nil
}

// MortgageSchedule рассчитывает помесячный график аннуитетной ипотеки.
// Внутренний расчет ведется без округления, значения в таблице округляются до копеек
func MortgageSchedule(principal, annualRate float64, termMonths int) (*ScheduleResult, error) {
	a, err := newAmortizer(principal, annualRate, termMonths)
	if err != nil {
		return nil, err
	}

	schedule := make([]ScheduleEntry, 0, termMonths)
	cumI := 0.0
	cumP := 0.0
	totalPaid := 0.0

	for m := 1; m <= termMonths; m++ {
		payment, interest, principalComponent := a.step()

		cumI += interest
		cumP += principalComponent
		totalPaid += payment

		if a.balance < -0.01 {
			return nil, fmt.Errorf("численная ошибка: остаток кредита стал отрицательным")
		}
		remaining := a.balance
		if remaining < 0 {
			remaining = 0.0
		}

		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             utils.Round2(payment),
			Interest:            utils.Round2(interest),
			PrincipalComponent:  utils.Round2(principalComponent),
			RemainingPrincipal:  utils.Round2(remaining),
			CumulativeInterest:  utils.Round2(cumI),
			CumulativePrincipal: utils.Round2(cumP),
		})
	}

	summary := MortgageSummary{
		Principal:      utils.Round2(principal),
		AnnualRate:     annualRate,
		Months:         termMonths,
		MonthlyPayment: utils.Round2(a.payment),
		TotalPaid:      utils.Round2(totalPaid),
		TotalInterest:  utils.Round2(cumI),
	}

	return &ScheduleResult{
		Summary:  summary,
		Schedule: schedule,
	}, nil
}
