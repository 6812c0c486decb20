package schedule

import "go.uber.org/zap"

// LogNotifier writes toast messages to a zap logger. It stands in for the
// toast component when the dialog runs headless.
type LogNotifier struct {
	Logger *zap.Logger
}

// Success logs msg at info level.
func (n LogNotifier) Success(msg string) {
	n.logger().Info("schedule toast", zap.String("kind", "success"), zap.String("message", msg))
}

// Error logs msg at warn level.
func (n LogNotifier) Error(msg string) {
	n.logger().Warn("schedule toast", zap.String("kind", "error"), zap.String("message", msg))
}

func (n LogNotifier) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}
