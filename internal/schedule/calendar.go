package schedule

import (
	"time"

	"github.com/esteticapro/clinic-manager/internal/models"
)

// ======================================================
// GRADE MENSAL
// ======================================================

// Day é uma célula da grade do calendário.
type Day struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
	Today   bool      `json:"today"`
}

// MonthGrid devolve a sequência de dias do calendário do mês de ref,
// completada com os dias vizinhos até fechar semanas inteiras
// (domingo a sábado). Sempre um múltiplo de 7 células.
func MonthGrid(ref, today time.Time) []Day {
	loc := ref.Location()

	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	var days []Day
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:    d,
			InMonth: d.Month() == ref.Month(),
			Today:   SameDay(d, today),
		})
	}
	return days
}

// SameDay compara duas datas pelo dia de calendário, ignorando o horário.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ItemsForDay filtra os atendimentos cuja data cai no dia informado,
// preservando a ordem da coleção de entrada. Nenhuma reordenação por
// horário é aplicada aqui.
func ItemsForDay(items []models.AgendaItem, day time.Time) []models.AgendaItem {
	var out []models.AgendaItem
	for _, it := range items {
		if SameDay(it.Date, day) {
			out = append(out, it)
		}
	}
	return out
}

// MonthNavigate desloca a data de referência em meses inteiros,
// preservando o dia do mês quando ele existe no mês de destino
// (senão usa o último dia).
func MonthNavigate(ref time.Time, deltaMonths int) time.Time {
	loc := ref.Location()

	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, deltaMonths, 0)
	lastDay := first.AddDate(0, 1, -1).Day()

	day := ref.Day()
	if day > lastDay {
		day = lastDay
	}

	h, m, s := ref.Clock()
	return time.Date(first.Year(), first.Month(), day, h, m, s, ref.Nanosecond(), loc)
}
