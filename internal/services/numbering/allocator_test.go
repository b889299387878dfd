package numbering

import "testing"

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"2025-0001", true},
		{"1999-9999", true},
		{"25-0001", false},
		{"2025-001", false},
		{"2025-00011", false},
		{"2025_0001", false},
		{"2025-0001-1", false},
		{"abcd-0001", false},
		{"2025-00ab", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			if got := ValidateFormat(tt.number); got != tt.want {
				t.Errorf("ValidateFormat(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		year     int
		want     string
	}{
		{"first of the year", nil, 2025, "2025-0001"},
		{"increments past gaps", []string{"2025-0001", "2025-0003"}, 2025, "2025-0004"},
		{"other years ignored", []string{"2024-0009", "2024-0010"}, 2025, "2025-0001"},
		{"mixed years", []string{"2024-0042", "2025-0007", "2023-0100"}, 2025, "2025-0008"},
		{"malformed entries skipped", []string{"2025-abcd", "2025-0002"}, 2025, "2025-0003"},
		{"zero padding", []string{"2025-0009"}, 2025, "2025-0010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.existing, tt.year); got != tt.want {
				t.Errorf("Next(%v, %d) = %q, want %q", tt.existing, tt.year, got, tt.want)
			}
		})
	}
}
