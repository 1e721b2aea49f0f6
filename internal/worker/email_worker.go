package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/infra"
)

// EmailJobPayload describes one outbound mail. Attachment is a path on
// the shared export volume and may be empty.
type EmailJobPayload struct {
	To         string `json:"to"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	Attachment string `json:"attachment,omitempty"`
}

// EmailWorker sends mail through the SMTP relay behind a circuit
// breaker. When the relay is down the breaker opens and jobs fail fast
// into the retry path instead of piling up on SMTP timeouts.
type EmailWorker struct {
	mailer  infra.Mailer
	breaker *infra.CircuitBreaker
}

func NewEmailWorker(mailer infra.Mailer, breaker *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{mailer: mailer, breaker: breaker}
}

func (w *EmailWorker) Process(_ context.Context, payload json.RawMessage) error {
	var job EmailJobPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("invalid email payload: %w", err)
	}
	if job.To == "" {
		return fmt.Errorf("email job without recipient")
	}

	err := w.breaker.Execute(func() error {
		return w.mailer.Send(job.To, job.Subject, job.Body, job.Attachment)
	})
	if err != nil {
		return fmt.Errorf("send mail to %s: %w", job.To, err)
	}
	return nil
}
