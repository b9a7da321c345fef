package notification

import "go.uber.org/zap"

// Notifier is the seam for transient user-visible notices. Every failure
// in this layer surfaces through it; screens render these as toasts.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// LogNotifier is the default implementation; it writes notices to the
// application log. UI embedders provide their own Notifier.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(message string) {
	n.logger.Info("notice", zap.String("kind", "success"), zap.String("message", message))
}

func (n *LogNotifier) Error(message string) {
	n.logger.Warn("notice", zap.String("kind", "error"), zap.String("message", message))
}

func (n *LogNotifier) Info(message string) {
	n.logger.Info("notice", zap.String("kind", "info"), zap.String("message", message))
}
