// Package notify delivers transient user-facing notifications, the service
// analog of the original UI's toast messages.
package notify

import "go.uber.org/zap"

// Notifier receives user-facing success and error notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type zapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier emits notifications through the structured logger.
func NewZapNotifier(logger *zap.Logger) Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapNotifier{logger: logger}
}

func (n *zapNotifier) Success(message string) {
	n.logger.Info("notification", zap.String("kind", "success"), zap.String("message", message))
}

func (n *zapNotifier) Error(message string) {
	n.logger.Warn("notification", zap.String("kind", "error"), zap.String("message", message))
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Successes []string
	Errors    []string
}

// NewRecorder constructs an empty notification recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Success records a success notification.
func (r *Recorder) Success(message string) {
	r.Successes = append(r.Successes, message)
}

// Error records an error notification.
func (r *Recorder) Error(message string) {
	r.Errors = append(r.Errors, message)
}
