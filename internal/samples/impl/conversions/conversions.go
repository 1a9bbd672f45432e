// Package conversions shows conversions between numeric, string and byte types.
package conversions

import (
	"strconv"
	"strings"
)

// category: numeric

// Truncate converting a float to an int drops the fraction.
func Truncate() int {
	f := -3.99
	return int(f)
}

// Overflow converting to a smaller integer type wraps around.
func Overflow() int8 {
	big := 300
	return int8(big)
}

// IntegerDivision dividing integers truncates toward zero.
func IntegerDivision() []int {
	return []int{7 / 2, -7 / 2, 7 % 3, -7 % 3}
}

// category: strconv

// Itoa formats an int in base 10.
func Itoa() string {
	return strconv.Itoa(440) + "Hz"
}

// Atoi parses a decimal int.
func Atoi() int {
	n, err := strconv.Atoi("128")
	if err != nil {
		return -1
	}
	return n * 2
}

// FormatBase formats an int in any base.
func FormatBase() []string {
	return []string{strconv.FormatInt(255, 2), strconv.FormatInt(255, 16)}
}

// ParseFloat parses a float with a bit size.
func ParseFloat() float64 {
	f, _ := strconv.ParseFloat("1.5e3", 64)
	return f
}

// ParseBool accepts 1, t, true and friends.
func ParseBool() []bool {
	var out []bool
	for _, s := range []string{"1", "F", "TRUE"} {
		b, _ := strconv.ParseBool(s)
		out = append(out, b)
	}
	return out
}

// Quote adds quotes and escapes.
func Quote() string {
	return strconv.Quote("tab\there")
}

// category: strings and bytes

// ToBytes a string converts to its UTF-8 bytes.
func ToBytes() []byte {
	return []byte("ré")
}

// ToRunes a string converts to its code points.
func ToRunes() []rune {
	return []rune("ré")
}

// FromRune converting an integer rune gives a one-character string.
func FromRune() string {
	return string(rune(0x266B))
}

// Builder builds a string without repeated copies.
func Builder() string {
	var b strings.Builder
	for i := 3; i > 0; i-- {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('.')
	}
	b.WriteString("go")
	return b.String()
}
