package validation

import "testing"

func TestValidDocument(t *testing.T) {
	valid := []string{"52998224725", "529.982.247-25", "11144477735", "12345678909"}
	for _, doc := range valid {
		if !ValidDocument(doc) {
			t.Fatalf("expected %q to be valid", doc)
		}
	}

	for d := '0'; d <= '9'; d++ {
		repeated := ""
		for i := 0; i < 11; i++ {
			repeated += string(d)
		}
		if ValidDocument(repeated) {
			t.Fatalf("expected repeated digits %q to be rejected", repeated)
		}
	}

	for _, doc := range []string{"", "5299822472", "529982247250", "abc"} {
		if ValidDocument(doc) {
			t.Fatalf("expected wrong length %q to be rejected", doc)
		}
	}
}

func TestValidDocument_AlteredCheckDigits(t *testing.T) {
	base := "52998224725"
	for _, pos := range []int{9, 10} {
		for d := byte('0'); d <= '9'; d++ {
			if d == base[pos] {
				continue
			}
			altered := []byte(base)
			altered[pos] = d
			if ValidDocument(string(altered)) {
				t.Fatalf("expected %s (position %d altered) to be rejected", altered, pos)
			}
		}
	}
}

func TestValidPhone(t *testing.T) {
	cases := map[string]bool{
		"11987654321":     true,
		"(11) 98765-4321": true,
		"1132345678":      true,
		"119876543":       false,
		"119876543210":    false,
		"":                false,
	}
	for in, want := range cases {
		if got := ValidPhone(in); got != want {
			t.Fatalf("ValidPhone(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidFullName(t *testing.T) {
	cases := map[string]bool{
		"Maria Silva":       true,
		"  Maria   Silva  ": true,
		"Maria":             false,
		"   ":               false,
		"Ana de Souza Lima": true,
	}
	for in, want := range cases {
		if got := ValidFullName(in); got != want {
			t.Fatalf("ValidFullName(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"m@x.com":         true,
		"maria.silva@a.b": true,
		"m@x":             false,
		"m@@x.com":        false,
		"m x@x.com":       false,
		"":                false,
	}
	for in, want := range cases {
		if got := ValidEmail(in); got != want {
			t.Fatalf("ValidEmail(%q) = %v, want %v", in, got, want)
		}
	}
}
