package response

import (
	"time"

	"github.com/promoplay/eggdraw/internal/model"
)

// AuthorizeResponse is the response for a successful authorize
type AuthorizeResponse struct {
	PlayerName string `json:"player_name"`
}

// PlayResponse is the response for a successful play
type PlayResponse struct {
	PrizeName string `json:"prize_name"`
}

// Player represents a player in admin API responses
type Player struct {
	Identifier string     `json:"vat_number"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	HasPlayed  bool       `json:"has_played"`
	Prize      string     `json:"prize,omitempty"`
	PlayedAt   *time.Time `json:"played_at,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Identifier: string(p.Identifier),
		Name:       p.Name,
		Email:      p.Email,
		HasPlayed:  p.HasPlayed,
		Prize:      p.Prize,
		PlayedAt:   p.PlayedAt,
	}
}

// PlayersResponse lists active players
type PlayersResponse struct {
	Players []Player `json:"players"`
}

// Prize represents a catalog entry in admin API responses
type Prize struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	MaxStock *int    `json:"max_stock,omitempty"`
	Used     *int    `json:"used,omitempty"`
}

// PrizeFromModel converts a model.Prize to a response Prize
func PrizeFromModel(p *model.Prize) Prize {
	return Prize{
		ID:       p.ID,
		Name:     p.Name,
		Weight:   p.Weight,
		MaxStock: p.MaxStock,
		Used:     p.Used,
	}
}

// CatalogResponse is the ordered prize catalog snapshot
type CatalogResponse struct {
	Prizes []Prize `json:"prizes"`
}

// CatalogFromModel converts a catalog snapshot, preserving order
func CatalogFromModel(prizes []*model.Prize) CatalogResponse {
	out := make([]Prize, len(prizes))
	for i, p := range prizes {
		out[i] = PrizeFromModel(p)
	}
	return CatalogResponse{Prizes: out}
}
