// Package notify delivers user-facing notices produced by the booking
// flows. The web client renders them as toasts; on the server side they are
// fanned out to a sink so alternative frontends can subscribe.
package notify

import "github.com/medibook/medibook-platform/pkg/logging"

// Severity of a notice.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Notice is a single user-facing message.
type Notice struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// Notifier receives notices. Implementations must not block.
type Notifier interface {
	Notify(n Notice)
}

// LogNotifier writes notices to the structured log.
type LogNotifier struct {
	logger *logging.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notice at a level matching its severity.
func (l *LogNotifier) Notify(n Notice) {
	switch n.Severity {
	case SeverityError:
		l.logger.Error("notice", "title", n.Title, "message", n.Message)
	default:
		l.logger.Info("notice", "severity", n.Severity, "title", n.Title, "message", n.Message)
	}
}

// Recorder captures notices for assertions in tests.
type Recorder struct {
	Notices []Notice
}

// Notify appends the notice to the recording.
func (r *Recorder) Notify(n Notice) {
	r.Notices = append(r.Notices, n)
}
