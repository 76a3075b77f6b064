package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	// majorToMinor(minorToMajor(x)) == x для целых минорных x
	for _, minor := range []int{0, 1, 99, 100, 101, 4999, 5000, 123456789} {
		assert.Equal(t, minor, MajorToMinor(MinorToMajor(minor)))
	}
}

func TestMajorToMinor(t *testing.T) {
	tests := []struct {
		major float64
		want  int
	}{
		{50.00, 5000},
		{0.01, 1},
		{19.99, 1999},
		{100.005, 10001}, // округление до ближайшей песевы
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MajorToMinor(tt.major))
	}
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(50.00, 50.009, Tolerance))
	assert.True(t, Within(50.009, 50.00, Tolerance))
	assert.True(t, Within(50.00, 50.01, Tolerance))
	assert.False(t, Within(50.00, 50.02, Tolerance))
	assert.False(t, Within(50.02, 50.00, Tolerance))
}
