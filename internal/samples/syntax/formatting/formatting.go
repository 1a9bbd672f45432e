// Package formatting shows fmt verbs, flags, width and precision.
package formatting

import "fmt"

type chord struct {
	Root  string
	Notes []int
}

// category: general verbs

// Value %v prints the default format.
func Value() string {
	return fmt.Sprintf("%v", chord{Root: "C", Notes: []int{0, 4, 7}})
}

// ValueWithNames %+v adds field names.
func ValueWithNames() string {
	return fmt.Sprintf("%+v", chord{Root: "C", Notes: []int{0, 4, 7}})
}

// TypeName %T prints the type.
func TypeName() string {
	return fmt.Sprintf("%T|%T|%T", 1, "s", []float64{})
}

// category: strings

// Quoted %q prints a double-quoted, escaped string.
func Quoted() string {
	return fmt.Sprintf("%q", "say \"hi\"")
}

// HexString %x prints hex bytes, % x spaces them.
func HexString() string {
	return fmt.Sprintf("%x|% x", "go", "go")
}

// Padding width pads on the left, - pads on the right.
func Padding() string {
	return fmt.Sprintf("[%6s][%-6s]", "bass", "bass")
}

// category: numbers

// Precision sets decimal places for floats.
func Precision() string {
	return fmt.Sprintf("%.2f|%8.3f|%-8.1f|", 3.14159, 2.71828, 1.41421)
}

// ZeroPad the 0 flag pads with zeros.
func ZeroPad() string {
	return fmt.Sprintf("%05d|%+d", 42, 42)
}

// Bases %b, %o and %X print other bases.
func Bases() string {
	return fmt.Sprintf("%b|%o|%X|%#x", 10, 10, 255, 255)
}

// Scientific %e and %g choose exponent formats.
func Scientific() string {
	return fmt.Sprintf("%e|%g", 123456.789, 0.000012)
}

// category: arguments

// ArgIndex [n] picks an explicit argument.
func ArgIndex() string {
	return fmt.Sprintf("%[2]s %[1]s %[2]s", "cha", "cha-cha")
}

// StarWidth * takes the width from an argument.
func StarWidth() string {
	return fmt.Sprintf("[%*d]", 5, 7)
}

// Errors bad verbs and missing arguments are reported inline.
func Errors() string {
	layout := "%d %s"
	return fmt.Sprintf(layout, "x")
}
