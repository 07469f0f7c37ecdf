package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// PreviousRange retorna a janela imediatamente anterior de mesma duração.
// Usada para montar o par atual/anterior das métricas de comparação.
func PreviousRange(start, end time.Time) (time.Time, time.Time) {
	length := end.Sub(start) + 24*time.Hour

	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.Add(-length + 24*time.Hour)

	return prevStart, prevEnd
}
