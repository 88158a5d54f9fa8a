package models

// Episode is a single episode of a show
type Episode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"` // 0 for specials that TVmaze leaves unnumbered
}
