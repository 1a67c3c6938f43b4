package identity

import "fmt"

// ProviderError is a provider-side failure (5xx or transport-level) as
// opposed to a rejection of the caller's input.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider failed: status=%d body=%s", e.Status, e.Body)
}
