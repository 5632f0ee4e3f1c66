// AngelaMos | 2026
// worker.go

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/carterperez-dev/bizcard-api/internal/config"
)

const dequeueTimeout = 5 * time.Second

type Sender interface {
	Send(msg Message) error
}

// Worker drains the notification queue. All delivery failures are logged and
// dropped; nothing is retried and nothing propagates back to a request.
type Worker struct {
	queue  *Queue
	sender Sender
	logger *slog.Logger
}

func NewWorker(queue *Queue, sender Sender, logger *slog.Logger) *Worker {
	return &Worker{
		queue:  queue,
		sender: sender,
		logger: logger,
	}
}

func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("notification worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("notification worker stopped")
			return
		default:
		}

		msg, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("notification worker stopped")
				return
			}
			w.logger.Error("dequeue notification", "error", err)
			time.Sleep(time.Second)
			continue
		}

		if msg == nil {
			continue
		}

		if err := w.sender.Send(*msg); err != nil {
			w.logger.Error("send notification",
				"to", msg.To,
				"subject", msg.Subject,
				"error", err,
			)
			continue
		}

		w.logger.Info("notification sent",
			"to", msg.To,
			"subject", msg.Subject,
		)
	}
}

// SMTPSender delivers a single plain-text message per call over SMTP.
type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(msg Message) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	if err := smtp.SendMail(
		addr,
		auth,
		s.cfg.From,
		[]string{msg.To},
		[]byte(b.String()),
	); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}

// LogSender stands in for SMTP when mail is disabled in config.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(msg Message) error {
	s.logger.Info("mail delivery disabled, dropping notification",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
