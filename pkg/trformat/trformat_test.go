package trformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03.10.2025", FormatDate(date(2025, time.October, 3)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestParseDate_AmbosFormatos(t *testing.T) {
	got, err := ParseDate("2025-10-03")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.October, 3), got)

	got, err = ParseDate(" 03.10.2025 ")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.October, 3), got)

	_, err = ParseDate("10/03/2025")
	assert.Error(t, err)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Ekim 2025", MonthLabel(date(2025, time.October, 15)))
	assert.Equal(t, "Şubat 2026", MonthLabel(date(2026, time.February, 1)))
	assert.Equal(t, "Aralık 2025", MonthLabel(date(2025, time.December, 31)))
}

func TestAddBusinessDays(t *testing.T) {
	// viernes 3 oct 2025 + 7 días hábiles = martes 14 oct
	assert.Equal(t, date(2025, time.October, 14), AddBusinessDays(date(2025, time.October, 3), 7))
	// sábado + 1 = lunes
	assert.Equal(t, date(2025, time.October, 6), AddBusinessDays(date(2025, time.October, 4), 1))
	// lunes + 5 = lunes siguiente
	assert.Equal(t, date(2025, time.October, 13), AddBusinessDays(date(2025, time.October, 6), 5))
	assert.Equal(t, date(2025, time.October, 4), AddBusinessDays(date(2025, time.October, 4), 0))
}
