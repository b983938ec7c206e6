package entities

import "strings"

// NormalizeRUT strips dots and spaces and upper-cases the verifier digit,
// returning the canonical "body-dv" form (e.g. "12345678-5").
func NormalizeRUT(rut string) string {
	rut = strings.ToUpper(strings.TrimSpace(rut))
	rut = strings.ReplaceAll(rut, ".", "")
	rut = strings.ReplaceAll(rut, " ", "")
	if len(rut) > 1 && !strings.Contains(rut, "-") {
		rut = rut[:len(rut)-1] + "-" + rut[len(rut)-1:]
	}
	return rut
}

// ValidRUT checks the modulo-11 verifier digit of a Chilean RUT.
func ValidRUT(rut string) bool {
	rut = NormalizeRUT(rut)
	parts := strings.Split(rut, "-")
	if len(parts) != 2 || parts[0] == "" || len(parts[1]) != 1 {
		return false
	}
	body, dv := parts[0], parts[1]

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return false
		}
		sum += int(c-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	rem := 11 - sum%11
	var expected string
	switch rem {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = string(rune('0' + rem))
	}
	return dv == expected
}
