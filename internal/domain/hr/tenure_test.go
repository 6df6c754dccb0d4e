package hr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeTenure(t *testing.T) {
	got := ComputeTenure(day(2020, 1, 15), day(2023, 3, 10))
	assert.Equal(t, Tenure{Years: 3, Months: 1, Days: 23}, got)
	assert.Equal(t, "3 años, 1 mes, 23 días", got.String())
}

func TestTenure_String(t *testing.T) {
	assert.Equal(t, "1 año", ComputeTenure(day(2024, 1, 1), day(2025, 1, 1)).String())
	assert.Equal(t, "2 meses, 1 día", ComputeTenure(day(2024, 1, 1), day(2024, 3, 2)).String())
	assert.Equal(t, "1 día", ComputeTenure(day(2024, 5, 5), day(2024, 5, 5)).String())
	assert.Equal(t, "11 meses, 30 días", ComputeTenure(day(2023, 1, 2), day(2024, 1, 1)).String())
}

func TestServiceTime(t *testing.T) {
	from := day(2022, 6, 1)
	to := day(2022, 6, 20)
	assert.Equal(t, "19 días", ServiceTime(&from, &to))
	assert.Equal(t, "-", ServiceTime(&from, nil))
	assert.Equal(t, "-", ServiceTime(nil, &to))
}
