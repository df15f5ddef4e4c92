package model

import "time"

// Identifier is the VAT number a player authenticates with.
// It is the sole credential and the deduplication key for play attempts.
type Identifier string

// Player represents a participant and their play state.
// JSON field names match the persisted active-players format.
type Player struct {
	Identifier Identifier `json:"vatNumber"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	HasPlayed  bool       `json:"hasPlayed"`
	Prize      string     `json:"prize,omitempty"`
	PlayedAt   *time.Time `json:"playedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// MarkPlayed records a win. HasPlayed never reverts once set.
func (p *Player) MarkPlayed(prizeName string, at time.Time) {
	p.HasPlayed = true
	p.Prize = prizeName
	p.PlayedAt = &at
}

// EligiblePerson is an entry in the pre-authorized source that players are
// lazily derived from on first lookup. The JSON field names match the
// imported eligibility file.
type EligiblePerson struct {
	Identifier Identifier `json:"piva"`
	Name       string     `json:"partner"`
	Email      string     `json:"email,omitempty"`
}
