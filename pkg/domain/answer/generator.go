package answer

import "context"

// Generator produces a raw completion for a prompt.
//
//go:generate mockery --name=Generator --dir=. --output=./mocks --filename=generator_mock.go --case=underscore --with-expecter
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Ping reports whether the completion endpoint is reachable.
	Ping(ctx context.Context) error
}
