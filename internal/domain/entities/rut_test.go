package entities

import "testing"

func TestNormalizeRUT(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.345.678-5", "12345678-5"},
		{" 12345678-5 ", "12345678-5"},
		{"123456785", "12345678-5"},
		{"7775593-k", "7775593-K"},
	}
	for _, tc := range cases {
		if got := NormalizeRUT(tc.in); got != tc.want {
			t.Fatalf("NormalizeRUT(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidRUT(t *testing.T) {
	valid := []string{"12.345.678-5", "12345678-5", "6-K", "1-9"}
	for _, rut := range valid {
		if !ValidRUT(rut) {
			t.Fatalf("expected %q to be valid", rut)
		}
	}

	invalid := []string{"", "12345678-6", "abc-1", "12345678", "-5", "12345678-KK"}
	for _, rut := range invalid {
		if ValidRUT(rut) {
			t.Fatalf("expected %q to be invalid", rut)
		}
	}
}
