package mailer

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"

	"kenyastay/internal/adapters/observability"
	"kenyastay/internal/domain"
)

const (
	defaultFrom     = "bookings@kenyastay.co.ke"
	defaultFromName = "KenyaStay Hotels"

	maxConcurrentDials = 4
)

type Config struct {
	Host    string
	Port    int
	User    string
	Pass    string
	From    string        // sender address; defaults to the support mailbox
	Timeout time.Duration // per-send deadline
	RPS     int           // outbound rate limit
}

// Delivery is a rendered message handed to a transport.
type Delivery struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type transport interface {
	deliver(d Delivery) error
}

// Mailer sends booking confirmations best-effort. Setup happens once in New:
// with credentials it dials the SMTP host, without them it falls back to an
// in-memory capture transport. A failed setup leaves the mailer disabled and
// every send becomes a no-op returning false.
type Mailer struct {
	tr      transport
	timeout time.Duration
	rl      *rate.Limiter
	sem     *semaphore.Weighted
}

func New(cfg Config) *Mailer {
	m := newMailer(cfg)

	if cfg.User == "" || cfg.Pass == "" {
		m.tr = &captureTransport{}
		log.Info().Msg("email credentials not configured; using in-memory test transport")
		return m
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	sc, err := d.Dial()
	if err != nil {
		// bookings still work, emails will not be sent
		log.Warn().Err(err).Msg("email setup failed; confirmation emails disabled")
		return m
	}
	_ = sc.Close()

	m.tr = &smtpTransport{dialer: d, from: cfg.From}
	log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("email transport ready")
	return m
}

// NewCapture returns a mailer backed by the in-memory transport. Deliveries
// succeed and are retrievable via Captured.
func NewCapture() *Mailer {
	m := newMailer(Config{})
	m.tr = &captureTransport{}
	return m
}

// NewDisabled returns a mailer whose sends are no-ops returning false, as
// after a failed setup.
func NewDisabled() *Mailer {
	return newMailer(Config{})
}

func newMailer(cfg Config) *Mailer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rps := cfg.RPS
	if rps <= 0 {
		rps = 5
	}
	return &Mailer{
		timeout: timeout,
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
		sem:     semaphore.NewWeighted(maxConcurrentDials),
	}
}

func (m *Mailer) Enabled() bool { return m != nil && m.tr != nil }

// SendConfirmation renders and delivers the confirmation for d. It reports
// whether delivery happened; every failure path, including the per-send
// timeout, comes back as false without affecting the caller.
func (m *Mailer) SendConfirmation(ctx context.Context, d domain.ConfirmationDetails) bool {
	if !m.Enabled() {
		observability.ObserveEmail("skipped")
		log.Warn().Str("reference", d.Reference).Msg("skipping email: no transport")
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.rl.Wait(ctx); err != nil {
		observability.ObserveEmail("failed")
		return false
	}
	if err := m.sem.Acquire(ctx, 1); err != nil {
		observability.ObserveEmail("failed")
		return false
	}
	defer m.sem.Release(1)

	dl, err := render(d)
	if err != nil {
		observability.ObserveEmail("failed")
		log.Error().Err(err).Str("reference", d.Reference).Msg("render confirmation failed")
		return false
	}

	errc := make(chan error, 1)
	go func() { errc <- m.tr.deliver(dl) }()

	select {
	case err := <-errc:
		if err != nil {
			observability.ObserveEmail("failed")
			log.Error().Err(err).Str("to", d.Email).Str("reference", d.Reference).Msg("send email failed")
			return false
		}
		observability.ObserveEmail("sent")
		log.Info().Str("to", d.Email).Str("reference", d.Reference).Msg("confirmation email sent")
		return true
	case <-ctx.Done():
		observability.ObserveEmail("failed")
		log.Warn().Str("to", d.Email).Str("reference", d.Reference).Msg("send email timed out")
		return false
	}
}

// Captured returns the messages recorded by the in-memory transport, or nil
// when a real transport is in use.
func (m *Mailer) Captured() []Delivery {
	ct, ok := m.tr.(*captureTransport)
	if !ok {
		return nil
	}
	return ct.messages()
}

// ---- transports ----

type smtpTransport struct {
	dialer *gomail.Dialer
	from   string
}

func (t *smtpTransport) deliver(d Delivery) error {
	from := t.from
	if from == "" {
		from = defaultFrom
	}
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", from, defaultFromName)
	msg.SetHeader("To", d.To)
	msg.SetHeader("Subject", d.Subject)
	msg.SetBody("text/plain", d.Text)
	msg.AddAlternative("text/html", d.HTML)
	return t.dialer.DialAndSend(msg)
}

// captureTransport stands in for a disposable test account: deliveries
// succeed and are kept in memory for inspection.
type captureTransport struct {
	mu   sync.Mutex
	msgs []Delivery
}

func (t *captureTransport) deliver(d Delivery) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.msgs = append(t.msgs, d)
	return nil
}

func (t *captureTransport) messages() []Delivery {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Delivery, len(t.msgs))
	copy(out, t.msgs)
	return out
}
