// Package notify delivers contact form notifications in the background.
//
// The contact pipeline hands a Job to a Dispatcher and returns immediately.
// A Worker drains the queue on its own goroutine and sends each job once
// through a Mailer. Results are visible in logs and metrics only.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/metrics"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// DefaultQueueSize is the number of jobs buffered before new ones are dropped.
const DefaultQueueSize = 64

// Message is an outgoing plain-text email.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer is the mail transport.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Job is one notification about a stored contact submission.
type Job struct {
	Contact    model.Contact
	ClientAddr string
}

// Dispatcher accepts notification jobs without blocking.
type Dispatcher interface {
	// Dispatch enqueues job and reports whether it was accepted.
	Dispatch(job Job) bool
}

// Worker is a Dispatcher backed by a bounded queue and one goroutine.
type Worker struct {
	mailer  Mailer
	to      []string
	metrics *metrics.Metrics

	queue chan Job
	done  chan struct{}

	mu      sync.RWMutex
	closed  bool
	started bool
}

// Option configures a Worker.
type Option func(*Worker)

// WithQueueSize sets the queue capacity.
func WithQueueSize(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.queue = make(chan Job, n)
		}
	}
}

// WithMetrics records send results in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) { w.metrics = m }
}

// NewWorker creates a worker sending notifications to the given recipients.
// Call Start before dispatching.
func NewWorker(mailer Mailer, to []string, opts ...Option) *Worker {
	w := &Worker{
		mailer: mailer,
		to:     to,
		queue:  make(chan Job, DefaultQueueSize),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start launches the worker goroutine. It is safe to call more than once.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.run()
}

// Dispatch implements Dispatcher. Jobs are dropped when the queue is full or
// the worker is closed.
func (w *Worker) Dispatch(job Job) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		slog.Warn("contact notification dropped: worker closed", "contact_id", job.Contact.ID)
		w.metrics.ObserveNotification(metrics.NotificationDropped)
		return false
	}
	select {
	case w.queue <- job:
		return true
	default:
		slog.Warn("contact notification dropped: queue full", "contact_id", job.Contact.ID)
		w.metrics.ObserveNotification(metrics.NotificationDropped)
		return false
	}
}

// Close stops accepting jobs and waits until the queued ones are sent or ctx
// is done.
func (w *Worker) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.queue)
	started := w.started
	w.mu.Unlock()

	if !started {
		return nil
	}
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) run() {
	defer close(w.done)
	for job := range w.queue {
		w.send(job)
	}
}

func (w *Worker) send(job Job) {
	msg := ComposeContactMessage(job, w.to)
	if err := w.mailer.Send(context.Background(), msg); err != nil {
		slog.Error("contact notification failed", "error", err, "contact_id", job.Contact.ID)
		w.metrics.ObserveNotification(metrics.NotificationFailed)
		return
	}
	slog.Info("contact notification sent", "contact_id", job.Contact.ID)
	w.metrics.ObserveNotification(metrics.NotificationSent)
}

// ComposeContactMessage renders the notification for job.
func ComposeContactMessage(job Job, to []string) Message {
	c := job.Contact
	subject := c.Subject
	if subject == "" {
		subject = "Contact from website"
	}
	name := c.Name
	if name == "" {
		name = "(not given)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New contact form submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "IP: %s\n", job.ClientAddr)
	if !c.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Received: %s\n", c.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintf(&b, "\n%s\n", c.Message)

	return Message{
		To:      to,
		ReplyTo: c.Email,
		Subject: "[Website] " + subject,
		Body:    b.String(),
	}
}
