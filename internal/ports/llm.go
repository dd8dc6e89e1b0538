package ports

import "context"

// ChatCompleter sends one system+user exchange to a language model and
// returns the raw text of its reply. Implementations do not retry.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
