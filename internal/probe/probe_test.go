package probe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLength(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{105 * time.Minute, "01:45:00.000000"},
		{2*time.Minute + 5*time.Second + 500*time.Millisecond, "00:02:05.500000"},
		{0, "00:00:00.000000"},
		{-time.Second, "00:00:00.000000"},
		{time.Hour + time.Second, "01:00:01.000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLength(tt.d))
	}
}

func TestResult_Length(t *testing.T) {
	r := Result{Duration: 121 * time.Minute}
	assert.Equal(t, "02:01:00.000000", r.Length())
}
