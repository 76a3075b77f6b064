// Package money содержит преобразование денежных единиц между минорной
// (песевы) и основной (седи) формой, а также сравнение сумм с допуском.
// Соотношение единиц фиксированное, 100:1.
package money

import "math"

// MinorUnitsPerMajor — количество минорных единиц в основной (100 песев = 1 седи).
const MinorUnitsPerMajor = 100

// Tolerance — допуск при сравнении сумм в основной единице.
// Поглощает погрешность округления при конвертации минорных единиц,
// сравнение на точное равенство не используется.
const Tolerance = 0.01

// MajorToMinor переводит сумму из основной единицы в минорную.
// Округление до ближайшего целого поглощает двоичную погрешность float64.
func MajorToMinor(major float64) int {
	return int(math.Round(major * MinorUnitsPerMajor))
}

// MinorToMajor переводит сумму из минорной единицы в основную.
func MinorToMajor(minor int) float64 {
	return float64(minor) / MinorUnitsPerMajor
}

// Within сообщает, отличаются ли две суммы в основной единице
// не более чем на tolerance по абсолютной величине.
func Within(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
