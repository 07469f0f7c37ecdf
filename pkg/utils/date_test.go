package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida deve ser interpretada", func(t *testing.T) {
		date, err := ParseDate("2024-05-10")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("Formato inválido deve retornar erro", func(t *testing.T) {
		_, err := ParseDate("10/05/2024")
		assert.Error(t, err)
	})

	t.Run("String vazia deve retornar data zero", func(t *testing.T) {
		date, err := ParseDate("")
		assert.NoError(t, err)
		assert.True(t, date.IsZero())
	})
}

func TestPreviousRange(t *testing.T) {
	tests := []struct {
		name          string
		start         time.Time
		end           time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Semana de 8 a 14 deve comparar com 1 a 7",
			start:         time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
			end:           time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Um único dia deve comparar com o dia anterior",
			start:         time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			end:           time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Janela que cruza a virada do mês",
			start:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			end:           time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevStart, prevEnd := PreviousRange(tt.start, tt.end)
			assert.Equal(t, tt.expectedStart, prevStart)
			assert.Equal(t, tt.expectedEnd, prevEnd)
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.33, RoundWithTwoDecimalPlace(3.3333))
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.666))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
