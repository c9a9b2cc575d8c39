package model

import (
	"time"

	"gorm.io/datatypes"
)

// DateOf приводит момент времени к календарной дате в UTC.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// DateOrToday возвращает дату из t или сегодняшнюю дату по now, если t не задан.
func DateOrToday(t *time.Time, now time.Time) datatypes.Date {
	if t != nil {
		return DateOf(*t)
	}
	return DateOf(now)
}

// OptionalDate — то же для необязательных дат.
func OptionalDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := DateOf(*t)
	return &d
}
