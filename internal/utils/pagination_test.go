package utils

import "testing"

func TestParseBoundedInt(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		def     int
		min     int
		max     int
		want    int
		wantErr bool
	}{
		{"empty uses default", "", 50, 1, 100, 50, false},
		{"valid in range", "25", 50, 1, 100, 25, false},
		{"at lower bound", "1", 50, 1, 100, 1, false},
		{"at upper bound", "100", 50, 1, 100, 100, false},
		{"below range", "0", 50, 1, 100, 0, true},
		{"above range", "101", 50, 1, 100, 0, true},
		{"negative", "-3", 0, 0, 1 << 30, 0, true},
		{"not a number", "abc", 50, 1, 100, 0, true},
		{"float rejected", "1.5", 50, 1, 100, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoundedInt(tt.in, tt.def, tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}
}
