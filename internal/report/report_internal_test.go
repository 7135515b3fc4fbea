package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults_Precision(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"Zero", 0, 0},
		{"Configured", 2, 2},
		{"Negative", -1, defaultPrecision},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Report{Precision: tc.in}.withDefaults()
			assert.Equal(t, tc.want, r.Precision)
			assert.Equal(t, defaultTitle, r.Title)
			assert.False(t, r.Date.IsZero())
		})
	}
}
