package codec

import (
	"errors"
	"strconv"
)

const microDigits = 6

var pow10 = [...]int{1, 10, 100, 1000, 10000, 100000, 1000000}

// rescaleFraction converts the digits after a decimal point into
// microseconds. Up to six digits are scaled exactly; longer fractions are
// rounded half-up on the seventh digit. carry reports that rounding reached a
// whole second, in which case micro is 0.
func rescaleFraction(digits string) (micro int, carry bool, err error) {
	if digits == "" {
		return 0, false, errors.New("empty fractional seconds")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false, errors.New("fractional seconds must be decimal digits")
		}
	}
	if len(digits) <= microDigits {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return 0, false, err
		}
		return n * pow10[microDigits-len(digits)], false, nil
	}
	n, err := strconv.Atoi(digits[:microDigits])
	if err != nil {
		return 0, false, err
	}
	if digits[microDigits] >= '5' {
		n++
	}
	if n == pow10[microDigits] {
		return 0, true, nil
	}
	return n, false, nil
}
