package request

// AuthorizeRequest is the body for POST /api/v1/game/authorize
type AuthorizeRequest struct {
	Identifier string `json:"vat_number"`
}

// PlayRequest is the body for POST /api/v1/game/play
type PlayRequest struct {
	Identifier string `json:"vat_number"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// PreauthorizeRequest is the body for POST /api/v1/admin/players
type PreauthorizeRequest struct {
	Identifier string `json:"vat_number"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}
