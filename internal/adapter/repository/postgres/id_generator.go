package postgres

import "github.com/oklog/ulid/v2"

// ULIDGenerator produces lexicographically sortable unique identifiers.
type ULIDGenerator struct{}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
