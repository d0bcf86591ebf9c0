package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 5, ToInt(5))
	assert.Equal(t, 7, ToInt(int64(7)))
	assert.Equal(t, 3, ToInt(3.9))
	assert.Equal(t, 42, ToInt(json.Number("42")))
	assert.Equal(t, 4, ToInt(json.Number("4.5")))
	assert.Equal(t, 12, ToInt(" 12 "))
	assert.Equal(t, 0, ToInt("abc"))
	assert.Equal(t, 0, ToInt(nil))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 4.5, ToFloat(4.5))
	assert.Equal(t, 2.0, ToFloat(2))
	assert.Equal(t, 3.25, ToFloat(json.Number("3.25")))
	assert.Equal(t, 1.5, ToFloat("1.5"))
	assert.Equal(t, 0.0, ToFloat(true))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "1984", ToString("1984"))
	assert.Equal(t, "1984", ToString(float64(1984)))
	assert.Equal(t, "1984", ToString(json.Number("1984")))
	assert.Equal(t, "true", ToString(true))
}
