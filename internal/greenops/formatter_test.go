package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "small number no separators", n: 123, want: "123"},
		{name: "four digits with separator", n: 1234, want: "1,234"},
		{name: "trees for the reference total", n: 116999, want: "116,999"},
		{name: "millions", n: 1234567, want: "1,234,567"},
		{name: "zero", n: 0, want: "0"},
		{name: "negative number", n: -1234, want: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{name: "round to integer", f: 18248.56, precision: 0, want: "18,249"},
		{name: "half rounds away from zero", f: 781.25, precision: 1, want: "781.3"},
		{name: "two decimal places", f: 2573.9751, precision: 2, want: "2,573.98"},
		{name: "homes for a small total", f: 0.48, precision: 1, want: "0.5"},
		{name: "zero", f: 0.0, precision: 2, want: "0.00"},
		{name: "negative with precision", f: -1234.56, precision: 2, want: "-1,234.56"},
		{name: "negative fraction keeps sign", f: -0.5, precision: 1, want: "-0.5"},
		{name: "round up at boundary", f: 999.999, precision: 2, want: "1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want string
	}{
		{name: "below threshold uses comma format", n: 999999, want: "999,999"},
		{name: "exactly one million", n: 1000000, want: "~1.0 million"},
		{name: "smartphone charges for the reference total", n: 311450975, want: "~311.5 million"},
		{name: "exactly one billion", n: 1000000000, want: "~1.0 billion"},
		{name: "small number", n: 1234, want: "1,234"},
		{name: "zero", n: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLarge(tt.n))
		})
	}
}

func BenchmarkFormatFloat(b *testing.B) {
	for b.Loop() {
		FormatFloat(2573.9751, 2)
	}
}
