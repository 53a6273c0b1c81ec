package kernel

import "fmt"

// Money is a value object representing a monetary amount in integer minor
// units (cents). All prices and amounts in the domain are stored and exchanged
// as Money; only presentation code converts to decimal major units.
//
// Money is immutable and safe to copy. The zero value is a valid amount of 0.
//
// Example usage:
//
//	price := kernel.NewMoney(15000) // R$ 150,00
//	fmt.Println(price.Major())      // 150
type Money int64

// NewMoney creates a Money value from an amount of minor units.
func NewMoney(minorUnits int64) Money {
	return Money(minorUnits)
}

// MinorUnits returns the raw integer amount in minor units.
func (m Money) MinorUnits() int64 {
	return int64(m)
}

// Major converts the amount to decimal major units by dividing by 100.
// This conversion belongs to the presentation boundary only; domain and
// gateway code must keep amounts in minor units.
func (m Money) Major() float64 {
	return float64(m) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// String renders the amount in major units for logging and debugging.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Major())
}
