package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"1.004", "1.00"},
		{"1.005", "1.01"}, // half rounds up, not to even
		{"2.675", "2.68"},
		{"0.105", "0.11"},
		{"123.4", "123.40"},
		{"548.205", "548.21"},
		{"-1.005", "-1.01"}, // away from zero
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Round2(decimal.RequireFromString(tt.in))
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("Round2(%s) = %s, want %s", tt.in, got, want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "0", false},
		{"  ", "0", false},
		{"19.99", "19.99", false},
		{"0.1", "0.1", false}, // exact, no binary float drift
		{"not-a-number", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %s", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromPtr(t *testing.T) {
	if !FromPtr(nil).IsZero() {
		t.Error("FromPtr(nil) should be zero")
	}
	d := decimal.RequireFromString("24")
	if !FromPtr(&d).Equal(d) {
		t.Error("FromPtr should return the pointed-to value")
	}
}
