package model

// Prize is a catalog entry with a selection weight and an optional stock cap.
// MaxStock and Used are either both set or both nil; an uncapped prize never
// tracks a used counter.
type Prize struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Weight   float64 `json:"probability"`
	MaxStock *int    `json:"max,omitempty"`
	Used     *int    `json:"used,omitempty"`
}

// Capped reports whether the prize has a finite stock
func (p *Prize) Capped() bool {
	return p.MaxStock != nil && p.Used != nil
}

// Available reports whether the prize can still be won
func (p *Prize) Available() bool {
	if !p.Capped() {
		return true
	}
	return *p.Used < *p.MaxStock
}

// Clone returns a deep copy of the prize
func (p *Prize) Clone() *Prize {
	out := *p
	if p.MaxStock != nil {
		m := *p.MaxStock
		out.MaxStock = &m
	}
	if p.Used != nil {
		u := *p.Used
		out.Used = &u
	}
	return &out
}

// CloneCatalog returns a deep copy of a catalog, preserving order
func CloneCatalog(prizes []*Prize) []*Prize {
	out := make([]*Prize, len(prizes))
	for i, p := range prizes {
		out[i] = p.Clone()
	}
	return out
}
