package entity

import (
	"strings"
	"time"
)

// ExpiryLayout formato de fecha de vencimiento (input type="date").
const ExpiryLayout = "2006-01-02"

// NoExpiryLabel representación textual de un artículo sin vencimiento.
const NoExpiryLabel = "N/A"

// ExpiryDate fecha de vencimiento opcional, sin componente horario.
// El valor cero representa "sin vencimiento".
type ExpiryDate struct {
	date time.Time
	set  bool
}

// NoExpiry devuelve una fecha de vencimiento ausente.
func NoExpiry() ExpiryDate { return ExpiryDate{} }

// ExpiresOn construye una fecha de vencimiento descartando la hora del día.
func ExpiresOn(t time.Time) ExpiryDate {
	return ExpiryDate{date: CalendarDate(t), set: true}
}

// ParseExpiry interpreta "YYYY-MM-DD". Cadena vacía o "N/A" equivalen a sin vencimiento.
func ParseExpiry(s string) (ExpiryDate, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, NoExpiryLabel) {
		return NoExpiry(), nil
	}
	t, err := time.Parse(ExpiryLayout, s)
	if err != nil {
		return ExpiryDate{}, err
	}
	return ExpiresOn(t), nil
}

// MustParseExpiry igual que ParseExpiry pero entra en pánico; solo para datos fijos.
func MustParseExpiry(s string) ExpiryDate {
	e, err := ParseExpiry(s)
	if err != nil {
		panic("entity: fecha de vencimiento inválida: " + s)
	}
	return e
}

// Date devuelve la fecha y si está presente.
func (e ExpiryDate) Date() (time.Time, bool) { return e.date, e.set }

// IsSet indica si el artículo tiene fecha de vencimiento.
func (e ExpiryDate) IsSet() bool { return e.set }

// Before compara por fecha de calendario (estricto). Sin vencimiento nunca es anterior.
func (e ExpiryDate) Before(day time.Time) bool {
	if !e.set {
		return false
	}
	return e.date.Before(CalendarDate(day))
}

// String devuelve "YYYY-MM-DD" o "N/A".
func (e ExpiryDate) String() string {
	if !e.set {
		return NoExpiryLabel
	}
	return e.date.Format(ExpiryLayout)
}

// CalendarDate normaliza t a medianoche UTC del mismo día de calendario en su zona.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
