package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{6000, "Rp 6.000"},
		{150000, "Rp 150.000"},
		{1500000, "Rp 1.500.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rupiah(tt.amount))
	}
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "2.5", Quantity(2.5))
	assert.Equal(t, "3", Quantity(3))
	assert.Equal(t, "0.33", Quantity(0.33))
	assert.Equal(t, "10", Quantity(10.0))
}
