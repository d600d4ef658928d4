package validation

import "strings"

const (
	documentDigits = 11
	phoneDigits    = 11
)

// MaskDocument formats a CPF as XXX.XXX.XXX-XX. Partial input is formatted as far
// as it goes; extra digits are dropped.
func MaskDocument(value string) string {
	d := Digits(value)
	if len(d) > documentDigits {
		d = d[:documentDigits]
	}

	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// MaskPhone formats as (XX) XXXXX-XXXX for mobiles and (XX) XXXX-XXXX for
// 10-digit landlines.
func MaskPhone(value string) string {
	d := Digits(value)
	if len(d) > phoneDigits {
		d = d[:phoneDigits]
	}
	if len(d) == 0 {
		return ""
	}
	if len(d) <= 2 {
		return "(" + d
	}

	area, local := d[:2], d[2:]
	split := 4
	if len(d) == phoneDigits {
		split = 5
	}
	if len(local) > split {
		local = local[:split] + "-" + local[split:]
	}
	return "(" + area + ") " + local
}
