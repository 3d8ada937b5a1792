package models

// Character is a character sheet as the application layer sees it. The sync
// engine never works with this type directly; it is serialized into
// Entity.Data and moved as an opaque snapshot.
type Character struct {
	Attributes map[string]int `json:"attributes"` // ability scores keyed by name ("STR", "DEX", ...)
	ID         string         `json:"id"`         // UUID, assigned client-side at creation
	Name       string         `json:"name"`
	Class      string         `json:"class"`
	Ancestry   string         `json:"ancestry"`
	Notes      string         `json:"notes"`
	Level      int            `json:"level"`
	HitPoints  int            `json:"hit_points"`
	MaxHP      int            `json:"max_hp"`
}

// Party groups characters under one banner.
type Party struct {
	ID          string   `json:"id"` // UUID, assigned client-side at creation
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MemberIDs   []string `json:"member_ids"` // character IDs, may reference not-yet-synced characters
}
