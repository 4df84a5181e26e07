package models

import "github.com/google/uuid"

// ProductDB represents a row of the produtos table. JSON field names
// follow the public API contract (nome/preco/em_estoque).
type ProductDB struct {
	ID      uuid.UUID `json:"id" db:"id"`
	Name    string    `json:"nome" db:"nome"`
	Price   float64   `json:"preco" db:"preco"`
	InStock bool      `json:"em_estoque" db:"em_estoque"`
}
