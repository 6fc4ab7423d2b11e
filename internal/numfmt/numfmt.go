// Package numfmt formats integers and floats into a caller-owned
// []rune buffer without allocating, the way the original firmware's
// ferret-utils integer/float converters fed the text overlay's HUD
// without touching a heap that didn't exist.
package numfmt

// Int writes the base-10 representation of v into buf (which must be
// large enough — 11 runes covers any int32) and returns the number of
// runes written. Negative values get a leading '-'.
func Int(v int, buf []rune) int {
	if v == 0 {
		buf[0] = '0'
		return 1
	}

	neg := v < 0
	if neg {
		v = -v
	}

	var digits [20]rune
	n := 0
	for v > 0 {
		digits[n] = rune('0' + v%10)
		v /= 10
		n++
	}

	w := 0
	if neg {
		buf[w] = '-'
		w++
	}
	for i := n - 1; i >= 0; i-- {
		buf[w] = digits[i]
		w++
	}
	return w
}

// Float writes a fixed-point rendering of v with decimals digits after
// the point into buf and returns the number of runes written. v is
// truncated, not rounded, matching the truncation convention the core
// color quantization uses elsewhere in this repo.
func Float(v float32, decimals int, buf []rune) int {
	neg := v < 0
	if neg {
		v = -v
	}

	scale := float32(1)
	for range decimals {
		scale *= 10
	}

	scaled := int(v * scale)
	intPart := scaled
	for range decimals {
		intPart /= 10
	}

	w := 0
	if neg {
		buf[w] = '-'
		w++
	}
	w += Int(intPart, buf[w:])

	if decimals == 0 {
		return w
	}

	buf[w] = '.'
	w++

	div := 1
	for range decimals - 1 {
		div *= 10
	}
	frac := scaled
	for i := 0; i < decimals; i++ {
		digit := (frac / div) % 10
		buf[w] = rune('0' + digit)
		w++
		div /= 10
	}
	return w
}
