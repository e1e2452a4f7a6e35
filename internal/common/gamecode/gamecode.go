package gamecode

import (
	"crypto/rand"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/corkedgame/corked/internal/common/gamecode Generator

// Generator produces short join codes for games
type Generator interface {
	NewCode() string
}

// Ambiguous characters (0/O, 1/I/L) are left out so codes survive
// being read aloud across a dinner table
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 6

// DefaultGenerator implements the Generator interface with crypto/rand
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewCode returns a new random join code
func (g *DefaultGenerator) NewCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
