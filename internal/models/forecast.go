package models

import (
	"encoding/json"
	"errors"
)

var ErrMissingLocale = errors.New("forecast record has no locale.id")

// Locale references the city a forecast belongs to.
type Locale struct {
	ID int `json:"id"`
}

// Forecast keeps the source record untouched and exposes only the locale
// needed for filtering. Marshalling writes the source record back verbatim.
type Forecast struct {
	Locale Locale
	raw    json.RawMessage
}

func (f *Forecast) UnmarshalJSON(data []byte) error {
	var probe struct {
		Locale *struct {
			ID *int `json:"id"`
		} `json:"locale"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Locale == nil || probe.Locale.ID == nil {
		return ErrMissingLocale
	}

	f.Locale = Locale{ID: *probe.Locale.ID}
	f.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (f Forecast) MarshalJSON() ([]byte, error) {
	if f.raw == nil {
		return json.Marshal(struct {
			Locale Locale `json:"locale"`
		}{Locale: f.Locale})
	}
	return f.raw, nil
}
