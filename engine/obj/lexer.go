package obj

import "math"

// powersOfTen holds every power of ten that is exactly representable as a float64.
var powersOfTen = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c-'0' < 10
}

// skipBlanks advances i past spaces and tabs.
func skipBlanks(line []byte, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

// parseInt reads a signed decimal integer starting at line[i].
// Leading blanks and a single sign are consumed, then digits until the first non-digit.
// Accumulation wraps like uint32 arithmetic. A token without digits yields 0.
//
// Parameters:
//   - line: the line being lexed
//   - i: the cursor offset into line
//
// Returns:
//   - int32: the parsed value
//   - int: the offset of the first byte after the token
func parseInt(line []byte, i int) (int32, int) {
	i = skipBlanks(line, i)

	negative := false
	if i < len(line) && (line[i] == '-' || line[i] == '+') {
		negative = line[i] == '-'
		i++
	}

	var result uint32
	for i < len(line) && isDigit(line[i]) {
		result = result*10 + uint32(line[i]-'0')
		i++
	}

	if negative {
		return -int32(result), i
	}
	return int32(result), i
}

// parseFloat reads a decimal floating point number starting at line[i].
// The accepted grammar is [blanks][sign]digits[.digits][(e|E)[sign]digits]; every part is optional
// and a token without digits yields 0. Mantissa digits are accumulated into a float64 and scaled by
// the exact power table when the decimal exponent fits in it, which is exact for mantissas below ~9e15.
// Exponents outside the table fall back to math.Pow.
//
// Parameters:
//   - line: the line being lexed
//   - i: the cursor offset into line
//
// Returns:
//   - float32: the parsed value
//   - int: the offset of the first byte after the token
func parseFloat(line []byte, i int) (float32, int) {
	i = skipBlanks(line, i)

	sign := 1.0
	if i < len(line) && (line[i] == '-' || line[i] == '+') {
		if line[i] == '-' {
			sign = -1
		}
		i++
	}

	var mantissa float64
	power := 0

	for i < len(line) && isDigit(line[i]) {
		mantissa = mantissa*10 + float64(line[i]-'0')
		i++
	}

	if i < len(line) && line[i] == '.' {
		i++
		for i < len(line) && isDigit(line[i]) {
			mantissa = mantissa*10 + float64(line[i]-'0')
			power--
			i++
		}
	}

	// 'E' | ' ' == 'e'
	if i < len(line) && line[i]|' ' == 'e' {
		i++

		expSign := 1
		if i < len(line) && (line[i] == '-' || line[i] == '+') {
			if line[i] == '-' {
				expSign = -1
			}
			i++
		}

		exp := 0
		for i < len(line) && isDigit(line[i]) {
			exp = exp*10 + int(line[i]-'0')
			i++
		}
		power += expSign * exp
	}

	switch {
	case power <= 0 && -power < len(powersOfTen):
		return float32(sign * mantissa / powersOfTen[-power]), i
	case power > 0 && power < len(powersOfTen):
		return float32(sign * mantissa * powersOfTen[power]), i
	default:
		return float32(sign * mantissa * math.Pow(10, float64(power))), i
	}
}
