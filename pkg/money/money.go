// Package money provides a value object for monetary amounts.
//
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., cents for USD).
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - All arithmetic operations require matching currencies.
package money

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., cents for USD).
type Amount = int64

// Money represents a monetary value in a specific currency.
// The zero value is not valid; construct through New, NewFromSmallestUnit or Must.
type Money struct {
	amount   Amount
	currency Currency
}

// New creates a new Money value object with the given amount in main currency
// units (e.g., dollars). The currency parameter can be a string, Code, or Currency.
// Returns an error if the currency is invalid or the amount has more decimal
// places than the currency allows.
func New(amount float64, currency any) (*Money, error) {
	c, err := resolveCurrency(currency)
	if err != nil {
		return nil, err
	}
	smallest, err := toSmallestUnit(amount, c)
	if err != nil {
		return nil, err
	}
	return &Money{amount: smallest, currency: c}, nil
}

// NewFromSmallestUnit creates a Money object from an amount already expressed in
// the smallest currency unit. Used for repository hydration.
func NewFromSmallestUnit(amount int64, currency any) (*Money, error) {
	c, err := resolveCurrency(currency)
	if err != nil {
		return nil, err
	}
	return &Money{amount: amount, currency: c}, nil
}

// Must is like New but panics on invalid input. Intended for constants and tests.
func Must(amount float64, currency any) *Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v, %v): %v", amount, currency, err))
	}
	return m
}

// Zero creates a Money object with zero amount in the specified currency.
func Zero(currency any) *Money {
	c, err := resolveCurrency(currency)
	if err != nil {
		c = DefaultCurrency
	}
	return &Money{amount: 0, currency: c}
}

func resolveCurrency(currency any) (Currency, error) {
	var c Currency
	switch v := currency.(type) {
	case string:
		code := Code(v)
		if !code.IsValid() {
			return Currency{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, v)
		}
		c = code.ToCurrency()
	case Code:
		c = v.ToCurrency()
	case Currency:
		c = v
	default:
		return Currency{}, fmt.Errorf(
			"invalid currency type: %T, expected string, Code, or Currency", currency)
	}
	if !c.IsValid() {
		return Currency{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, c)
	}
	return c, nil
}

// toSmallestUnit converts a main-unit float to the currency's smallest unit.
// The float is interpreted through its shortest decimal representation so that
// e.g. 0.1 USD becomes exactly 10 cents.
func toSmallestUnit(amount float64, c Currency) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	rat, ok := new(big.Rat).SetString(strconv.FormatFloat(amount, 'f', -1, 64))
	if !ok {
		return 0, ErrInvalidAmount
	}
	scale := new(big.Rat).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(c.Decimals)), nil))
	scaled := new(big.Rat).Mul(rat, scale)
	if !scaled.IsInt() {
		return 0, fmt.Errorf("%w: %v has more than %d decimal places",
			ErrInvalidAmount, amount, c.Decimals)
	}
	if !scaled.Num().IsInt64() {
		return 0, fmt.Errorf("%w: %v overflows the smallest unit", ErrInvalidAmount, amount)
	}
	return scaled.Num().Int64(), nil
}

// Amount returns the amount in the smallest currency unit.
func (m *Money) Amount() Amount {
	return m.amount
}

// AmountFloat returns the amount as a float64 in main currency units.
func (m *Money) AmountFloat() float64 {
	rat := new(big.Rat).SetInt64(m.amount)
	scale := new(big.Rat).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(m.currency.Decimals)), nil))
	f, _ := new(big.Rat).Quo(rat, scale).Float64()
	return f
}

// Currency returns the currency of the Money object.
func (m *Money) Currency() Currency {
	return m.currency
}

// CurrencyCode returns the currency code of the Money object.
func (m *Money) CurrencyCode() Code {
	return m.currency.Code
}

// IsSameCurrency reports whether other is denominated in the same currency.
func (m *Money) IsSameCurrency(other *Money) bool {
	return other != nil && m.currency == other.currency
}

// Equals reports whether both amount and currency match.
func (m *Money) Equals(other *Money) bool {
	return other != nil && m.amount == other.amount && m.currency == other.currency
}

// IsPositive reports whether the amount is greater than zero.
func (m *Money) IsPositive() bool {
	return m.amount > 0
}

// Add returns a new Money with the sum of the amounts.
// Currencies must match.
func (m *Money) Add(other *Money) (*Money, error) {
	if !m.IsSameCurrency(other) {
		return nil, fmt.Errorf("%w: %s and %s",
			ErrMismatchedCurrencies, m.currency.Code, other.CurrencyCode())
	}
	return &Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns a new Money with the difference of the amounts.
// Currencies must match.
func (m *Money) Subtract(other *Money) (*Money, error) {
	if !m.IsSameCurrency(other) {
		return nil, fmt.Errorf("%w: %s and %s",
			ErrMismatchedCurrencies, m.currency.Code, other.CurrencyCode())
	}
	return &Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Percent returns a new Money worth the given percentage of this one, in the
// same currency. The percentage must be in [0, 100]. The result is rounded
// half away from zero to the smallest currency unit.
func (m *Money) Percent(percentage float64) (*Money, error) {
	if math.IsNaN(percentage) || percentage < 0 || percentage > 100 {
		return nil, ErrInvalidPercentage
	}
	pct, ok := new(big.Rat).SetString(strconv.FormatFloat(percentage, 'f', -1, 64))
	if !ok {
		return nil, ErrInvalidPercentage
	}
	result := new(big.Rat).SetInt64(m.amount)
	result.Mul(result, pct)
	result.Quo(result, big.NewRat(100, 1))
	return &Money{amount: ratToInt64(result), currency: m.currency}, nil
}

// ratToInt64 rounds a rational to the nearest integer, half away from zero.
func ratToInt64(r *big.Rat) int64 {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	rem.Mul(rem, big.NewInt(2))
	if rem.Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if r.Sign() < 0 {
		q.Neg(q)
	}
	return q.Int64()
}

// String renders the amount in main units with the currency code,
// e.g. "500000.00 USD".
func (m *Money) String() string {
	rat := new(big.Rat).SetInt64(m.amount)
	scale := new(big.Rat).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(m.currency.Decimals)), nil))
	return fmt.Sprintf("%s %s",
		new(big.Rat).Quo(rat, scale).FloatString(m.currency.Decimals), m.currency.Code)
}
