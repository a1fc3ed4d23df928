package sourcing

import "go.uber.org/zap"

// Event is one user-facing status message. Source is empty for
// invocation-level events (validation, completion, unexpected failure).
type Event struct {
	Source  string
	Message string
	Err     error
}

// Notifier receives one event per source attempt plus one completion event.
// Events are side effects only; they never influence the search outcome.
type Notifier interface {
	Notify(Event)
}

// LoggerNotifier reports events through a zap logger.
type LoggerNotifier struct {
	Logger *zap.Logger
}

func (n *LoggerNotifier) Notify(e Event) {
	if n == nil || n.Logger == nil {
		return
	}

	fields := make([]zap.Field, 0, 2)
	if e.Source != "" {
		fields = append(fields, zap.String("source", e.Source))
	}

	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
		n.Logger.Warn(e.Message, fields...)
		return
	}

	n.Logger.Info(e.Message, fields...)
}
