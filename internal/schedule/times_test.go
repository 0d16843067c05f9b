package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esteticapro/clinic-manager/internal/httperr"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9h30", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, "10:15", AddMinutes("09:30", 45))
	assert.Equal(t, "09:30", AddMinutes("09:30", 0))

	// sem tratamento de virada de dia: as horas seguem contando
	assert.Equal(t, "24:20", AddMinutes("23:50", 30))
}

func TestComputeEndTime(t *testing.T) {
	end, err := ComputeEndTime("09:30", 45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", end)

	end, err = ComputeEndTime("08:00", 60)
	require.NoError(t, err)
	assert.Equal(t, "09:00", end)
}

func TestComputeEndTimeRejectsMidnightRollover(t *testing.T) {
	_, err := ComputeEndTime("23:50", 30)
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "crosses_midnight", code)

	// terminar exatamente à meia-noite também é rejeitado
	_, err = ComputeEndTime("23:00", 60)
	require.Error(t, err)
}

func TestComputeEndTimeRejectsInvalidDuration(t *testing.T) {
	_, err := ComputeEndTime("09:00", 0)
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_duration", code)

	_, err = ComputeEndTime("09:00", -15)
	require.Error(t, err)
}
