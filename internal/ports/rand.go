package ports

import "math/rand"

// Rand covers the two random draws the app makes: probability gates and
// uniform pool picks. Injected so tests can pin the dice.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type SystemRand struct{}

func (SystemRand) Float64() float64 {
	return rand.Float64()
}

func (SystemRand) Intn(n int) int {
	return rand.Intn(n)
}
