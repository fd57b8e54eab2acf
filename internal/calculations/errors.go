package calculations

import "errors"

// Ошибки валидации и расчетов. Вызывающая сторона различает их через errors.Is.
var (
	// ErrInvalidConfig возвращается, когда параметр конфигурации вне допустимой области
	ErrInvalidConfig = errors.New("некорректная конфигурация инвестиции")

	// ErrInvalidMortgageParameters возвращается при недопустимых параметрах ипотеки
	ErrInvalidMortgageParameters = errors.New("некорректные параметры ипотеки")

	// ErrInvalidCapital возвращается, когда начальный капитал не положителен
	ErrInvalidCapital = errors.New("начальный капитал должен быть положительным")

	// ErrNegativeBaseRoot возвращается, когда отношение итогового капитала к начальному
	// отрицательно и вещественный корень степени не определен
	ErrNegativeBaseRoot = errors.New("вещественный корень из отрицательного отношения капиталов не определен")
)
