package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/esteticapro/clinic-manager/internal/httperr"
)

// ======================================================
// ARITMÉTICA DE HORÁRIO "HH:MM"
// ======================================================

const minutesPerDay = 24 * 60

// ParseClock converte "HH:MM" em minutos desde a meia-noite.
// Entrada malformada é violação de contrato de quem chama; valide antes.
func ParseClock(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", hm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", hm)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q", hm)
	}
	return h*60 + m, nil
}

func formatClock(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// AddMinutes soma minutos a um horário "HH:MM" sem tratar virada de dia:
// "23:50" + 30 vira "24:20". É o comportamento histórico do cálculo de
// término; o fluxo de criação usa ComputeEndTime, que rejeita a virada.
func AddMinutes(hm string, minutes int) string {
	start, err := ParseClock(hm)
	if err != nil {
		return hm
	}
	return formatClock(start + minutes)
}

// ComputeEndTime deriva o horário de término de um atendimento a partir
// do início e da duração do serviço. Atendimentos que cruzariam a
// meia-noite são rejeitados.
func ComputeEndTime(startHM string, durationMinutes int) (string, error) {
	start, err := ParseClock(startHM)
	if err != nil {
		return "", err
	}
	if durationMinutes <= 0 {
		return "", httperr.ErrBusiness("invalid_duration")
	}

	end := start + durationMinutes
	if end >= minutesPerDay {
		return "", httperr.ErrBusiness("crosses_midnight")
	}
	return formatClock(end), nil
}
