package usecase

import (
	"context"

	"greeter/internal/core/domain"
	"greeter/internal/core/port"
)

// GreetService implements port.GreetUseCase. It holds no mutable state and
// is safe for concurrent use.
type GreetService struct {
	text string
}

// NewGreetUseCase returns a service that always greets with
// domain.DefaultGreeting.
func NewGreetUseCase() *GreetService {
	return &GreetService{text: domain.DefaultGreeting}
}

var _ port.GreetUseCase = (*GreetService)(nil)

// Greet returns the fixed greeting, or ctx.Err() if the request is already
// cancelled.
func (s *GreetService) Greet(ctx context.Context) (domain.Greeting, error) {
	if err := ctx.Err(); err != nil {
		return domain.Greeting{}, err
	}
	return domain.Greeting{Text: s.text}, nil
}
