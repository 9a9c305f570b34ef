// Package trformat reúne los formatos de presentación usados por los paneles en turco:
// fechas dd.MM.yyyy, nombres de mes y cálculo de días hábiles.
package trformat

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "02.01.2006"
	isoLayout  = "2006-01-02"
)

var monthNames = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// FormatDate devuelve la fecha como dd.MM.yyyy; "" para la fecha cero.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// ParseDate acepta yyyy-MM-dd (formularios HTML) o dd.MM.yyyy.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(isoLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: se espera yyyy-MM-dd o dd.MM.yyyy", s)
	}
	return t, nil
}

// MonthLabel etiqueta del mes en turco, ej: "Ekim 2025".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// AddBusinessDays avanza n días saltando sábados y domingos. El día de partida no cuenta.
func AddBusinessDays(t time.Time, n int) time.Time {
	for added := 0; added < n; {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return t
}
