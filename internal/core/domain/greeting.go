package domain

// DefaultGreeting is the body served at the root path.
const DefaultGreeting = "Hello"

// Greeting is the message returned to a client.
type Greeting struct {
	Text string
}
