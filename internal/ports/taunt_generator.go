package ports

import "context"

// TauntGenerator produces a taunt from a prompt via a remote text
// generation service. Any failure or empty result is an error; callers
// degrade to the local taunt pool.
type TauntGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
