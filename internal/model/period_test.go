package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"weekly", "monthly", "yearly"} {
		p, err := ParsePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, p.String())
	}

	for _, invalid := range []string{"", "daily", "Monthly", "quarterly"} {
		_, err := ParsePeriod(invalid)
		assert.Error(t, err, "period %q should be rejected", invalid)
	}
}

func TestPeriodNext(t *testing.T) {
	assert.Equal(t, PeriodMonthly, PeriodWeekly.Next())
	assert.Equal(t, PeriodYearly, PeriodMonthly.Next())
	assert.Equal(t, PeriodWeekly, PeriodYearly.Next())

	// A full cycle returns to the starting period.
	p := DefaultPeriod
	assert.Equal(t, p, p.Next().Next().Next())
}
