package scpi

import (
	"errors"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"2.000000e-01\n", 0.2, false},
		{" 1.0 ", 1.0, false},
		{"-3.3e+03", -3300, false},
		{"AUTO", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseFloat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadResponse) {
				t.Errorf("ParseFloat(%q) error = %v, want ErrBadResponse", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFloat(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	if v, err := ParseBool("1\n"); err != nil || !v {
		t.Errorf("ParseBool(\"1\") = %v, %v", v, err)
	}
	if v, err := ParseBool("0"); err != nil || v {
		t.Errorf("ParseBool(\"0\") = %v, %v", v, err)
	}
	if _, err := ParseBool("ON"); !errors.Is(err, ErrBadResponse) {
		t.Errorf("ParseBool(\"ON\") error = %v, want ErrBadResponse", err)
	}
}

func TestParseInt(t *testing.T) {
	if v, err := ParseInt("1200\n"); err != nil || v != 1200 {
		t.Errorf("ParseInt(\"1200\") = %v, %v", v, err)
	}
	if _, err := ParseInt("1.2e3"); !errors.Is(err, ErrBadResponse) {
		t.Errorf("ParseInt(\"1.2e3\") error = %v, want ErrBadResponse", err)
	}
}
