package entity

import (
	"fmt"
	"time"
)

// DateLayout formato persistido das datas de movimentação.
const DateLayout = "2006-01-02"

// Date data civil (sem hora) no formato AAAA-MM-DD.
// O valor zero ("") representa data ausente.
type Date string

// ParseDate valida e normaliza uma data AAAA-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date(t.Format(DateLayout)), nil
}

// DateOf devolve a data local de t (usa a Location de t).
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Today devolve a data de hoje no fuso indicado; nil usa time.Local.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(time.Now().In(loc))
}

// IsZero indica data ausente.
func (d Date) IsZero() bool { return d == "" }

// Valid indica se a data está no formato esperado.
func (d Date) Valid() bool {
	_, err := time.Parse(DateLayout, string(d))
	return err == nil
}

// Time devolve a meia-noite UTC da data; data inválida devolve time.Time zero.
func (d Date) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays soma n dias de calendário (n pode ser negativo).
func (d Date) AddDays(n int) Date {
	t := d.Time()
	if t.IsZero() {
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}

// Before compara datas cronologicamente.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) String() string { return string(d) }
