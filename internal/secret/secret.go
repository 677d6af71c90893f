package secret

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/kavdeev/skorovanka/internal/secret Generator

// Generator produces secret numbers for game sessions
type Generator interface {
	// Draw returns a uniformly random integer in [1, max]
	Draw(max int) int
}

// Config for the secret number generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandGenerator implements Generator using math/rand
type RandGenerator struct {
	random *rand.Rand
}

// New creates a new secret number generator
func New(cfg *Config) *RandGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandGenerator{
		random: random,
	}
}

// Draw returns a uniformly random integer in [1, max]
func (g *RandGenerator) Draw(max int) int {
	if max < 1 {
		max = 1
	}
	return g.random.Intn(max) + 1
}
