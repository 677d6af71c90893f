// Package hints produces human-readable statements about a secret number.
package hints

import (
	"math/rand"
	"time"
)

// Hint texts. Exactly one parity statement and one magnitude statement apply
// to any secret, the divisibility statements are conditional, so a secret
// always has between 2 and 4 candidates.
const (
	HintEven         = "Это число чётное."
	HintOdd          = "Это число нечётное."
	HintDivisibleBy5 = "Это число делится на 5."
	HintDivisibleBy3 = "Это число делится на 3."
	HintAbove500     = "Число больше 500."
	HintBelow500     = "Число меньше 500."
	HintExactly500   = "Число равно 500!"
)

// Config for the hint generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Generator picks a random true statement about a secret number
type Generator struct {
	random *rand.Rand
}

// New creates a new hint generator
func New(cfg *Config) *Generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// ForSecret returns one statement chosen uniformly among everything that is
// true of the secret. The same secret may yield different hints across calls.
func (g *Generator) ForSecret(secret int) string {
	candidates := Candidates(secret)
	return candidates[g.random.Intn(len(candidates))]
}

// Candidates returns every statement that is true of the secret
func Candidates(secret int) []string {
	var hints []string
	if secret%2 == 0 {
		hints = append(hints, HintEven)
	} else {
		hints = append(hints, HintOdd)
	}
	if secret%5 == 0 {
		hints = append(hints, HintDivisibleBy5)
	}
	if secret%3 == 0 {
		hints = append(hints, HintDivisibleBy3)
	}
	switch {
	case secret > 500:
		hints = append(hints, HintAbove500)
	case secret < 500:
		hints = append(hints, HintBelow500)
	default:
		hints = append(hints, HintExactly500)
	}
	return hints
}
