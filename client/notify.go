package client

import "github.com/rs/zerolog"

// LogNotifier writes notifications to a structured logger. Hosts with a
// real UI substitute their own Notifier.
type LogNotifier struct {
	L zerolog.Logger
}

func (n LogNotifier) Success(msg string) {
	n.L.Info().Str("kind", "success").Msg(msg)
}

func (n LogNotifier) Error(msg string) {
	n.L.Warn().Str("kind", "error").Msg(msg)
}
