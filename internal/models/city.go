package models

// City is a single autocomplete entry of the locales dataset.
type City struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}
