package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Variant distinguishes routine toasts from error toasts.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is one user-facing notification.
type Toast struct {
	Title       string
	Description string
	Variant     Variant
}

// Service is the terminal stand-in for the web app's toast sink. It writes
// notifications to out and keeps a bounded history of recent ones.
type Service struct {
	logger *logrus.Logger
	out    io.Writer
	limit  int

	mu     sync.Mutex
	recent []Toast
}

// NewService builds a sink writing to out, remembering up to limit toasts.
func NewService(logger *logrus.Logger, out io.Writer, limit int) *Service {
	if limit <= 0 {
		limit = 50
	}
	return &Service{
		logger: logger,
		out:    out,
		limit:  limit,
	}
}

// Notify shows a routine notification.
func (s *Service) Notify(title, description string) {
	s.push(Toast{Title: title, Description: description, Variant: VariantDefault})
}

// NotifyError shows an error notification.
func (s *Service) NotifyError(title, description string) {
	s.push(Toast{Title: title, Description: description, Variant: VariantDestructive})
}

func (s *Service) push(t Toast) {
	s.mu.Lock()
	s.recent = append(s.recent, t)
	if len(s.recent) > s.limit {
		s.recent = s.recent[len(s.recent)-s.limit:]
	}
	s.mu.Unlock()

	prefix := "•"
	if t.Variant == VariantDestructive {
		prefix = "✗"
		s.logger.WithFields(logrus.Fields{
			"title":       t.Title,
			"description": t.Description,
		}).Error("Notification")
	}

	fmt.Fprintf(s.out, "%s %s: %s\n", prefix, t.Title, t.Description)
}

// Recent returns a copy of the retained notification history, oldest first.
func (s *Service) Recent() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Toast, len(s.recent))
	copy(out, s.recent)
	return out
}
