package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
	}{
		{"Defaults", 0, 0, 1, 20},
		{"Negative", -3, -1, 1, 20},
		{"Passthrough", 4, 50, 4, 50},
		{"NoUpperBound", 1, 100000, 1, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, l := Normalize(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p)
			assert.Equal(t, tt.wantLim, l)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 0, Offset(0, 0))
}

func TestCalculate(t *testing.T) {
	assert.Equal(t, Metadata{Page: 2, Limit: 10, Total: 25, Pages: 3}, Calculate(25, 2, 10))
	assert.Equal(t, Metadata{Page: 1, Limit: 20, Total: 0, Pages: 0}, Calculate(0, 0, 0))
	assert.Equal(t, 1, Calculate(20, 1, 20).Pages)
}
