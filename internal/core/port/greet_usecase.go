package port

import (
	"context"

	"greeter/internal/core/domain"
)

// GreetUseCase is the primary port into the application. The HTTP adapter
// depends on it rather than on a concrete service so handlers can be tested
// against the mock in the mocks package.
type GreetUseCase interface {
	// Greet returns the greeting for the current request. An error is
	// returned only when ctx is already done.
	Greet(ctx context.Context) (domain.Greeting, error)
}
