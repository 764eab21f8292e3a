package gopoly

import "errors"

// Sentinel errors. Operations wrap these with context; match with errors.Is.
var (
	// ErrInvalidExponent is returned when a monomial is built with a negative exponent.
	ErrInvalidExponent = errors.New("gopoly: exponent must be a nonnegative integer")

	// ErrExponentRange is returned when an exponent exceeds MaxExponent.
	ErrExponentRange = errors.New("gopoly: exponent out of range")

	// ErrIncompatibleTerms is returned when adding or subtracting monomials
	// whose exponents differ.
	ErrIncompatibleTerms = errors.New("gopoly: monomials have different exponents")

	// ErrDivision covers a zero divisor coefficient and a divisor exponent
	// larger than the dividend's.
	ErrDivision = errors.New("gopoly: invalid monomial division")
)
