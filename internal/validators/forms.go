package validators

import (
	"strings"
	"time"

	"github.com/esteticapro/clinic-manager/internal/schedule"
)

// Validações de formulário. Falhas aqui são erros de campo devolvidos
// direto a quem submeteu, nunca registrados no store.

func IsClockTime(hm string) bool {
	_, err := schedule.ParseClock(hm)
	return err == nil
}

// ParseDate aceita "2006-01-02" no fuso informado.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Required acumula campos obrigatórios vazios em um mapa de erros.
func Required(fields map[string]string) map[string]string {
	errs := map[string]string{}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			errs[name] = "obrigatório"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
