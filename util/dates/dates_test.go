package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	sp := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2024, 5, 10, 23, 30, 0, 0, sp)

	require.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Day(in))
}

func TestElapsedDays(t *testing.T) {
	rent := time.Date(2024, 1, 30, 18, 0, 0, 0, time.UTC)

	require.Equal(t, int64(0), ElapsedDays(rent, rent.Add(3*time.Hour)))
	require.Equal(t, int64(5), ElapsedDays(rent, time.Date(2024, 2, 4, 1, 0, 0, 0, time.UTC)))
	// leap day
	require.Equal(t, int64(31), ElapsedDays(rent, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, int64(-1), ElapsedDays(rent, time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)))
}

func TestParse(t *testing.T) {
	d, err := Parse("1992-10-05")
	require.NoError(t, err)
	require.Equal(t, time.October, d.Month())

	_, err = Parse("1992-13-05")
	require.Error(t, err)
}
