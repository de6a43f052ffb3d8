// Package notify асинхронно доставляет уведомления пользователям. Доставка best-effort: ошибки логируются
// и никогда не влияют на операцию, породившую уведомление.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	defaultWorkers     uint = 2
	defaultQueueSize   uint = 256
	defaultMaxAttempts uint = 3
	defaultRetryDelay       = 2 * time.Second
	defaultSendTimeout      = 10 * time.Second
)

// Dispatcher очередь уведомлений с пулом воркеров, которые отправляют их через Sender.
type Dispatcher struct {
	sender      Sender
	queue       chan domain.Notification
	l           *logrus.Entry
	workers     uint
	maxAttempts uint
	retryDelay  time.Duration
	sendTimeout time.Duration
}

func New(sender Sender, l *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		queue:  make(chan domain.Notification, defaultQueueSize),
		l: l.WithFields(logrus.Fields{
			"component": "notify",
			"module":    "dispatcher",
		}),
		workers:     defaultWorkers,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		sendTimeout: defaultSendTimeout,
	}
}

// SetWorkers устанавливает кол-во параллельных отправителей.
func (d *Dispatcher) SetWorkers(workers uint) *Dispatcher {
	if workers > 0 {
		d.workers = workers
	}
	return d
}

// SetQueueSize пересоздает очередь. Вызывать только до Run и первого Notify. Нулевой размер игнорируется.
func (d *Dispatcher) SetQueueSize(size uint) *Dispatcher {
	if size > 0 {
		d.queue = make(chan domain.Notification, size)
	}
	return d
}

// SetRetry устанавливает кол-во попыток отправки и базовую паузу между ними.
func (d *Dispatcher) SetRetry(attempts uint, delay time.Duration) *Dispatcher {
	if attempts > 0 {
		d.maxAttempts = attempts
	}
	d.retryDelay = delay
	return d
}

// Notify ставит уведомление в очередь и сразу возвращается. При переполненной очереди уведомление
// отбрасывается с предупреждением в логе.
func (d *Dispatcher) Notify(_ context.Context, n domain.Notification) {
	select {
	case d.queue <- n:
	default:
		d.l.WithFields(logrus.Fields{
			"to":      n.To,
			"subject": n.Subject,
		}).Warn("queue is full, notification dropped")
	}
}

// Run запускает воркеров и блокируется до отмены контекста. Неотправленные к этому моменту уведомления теряются.
func (d *Dispatcher) Run(ctx context.Context) {
	d.l.WithField("workers", d.workers).Info("Starting")

	wg := new(sync.WaitGroup)
	wg.Add(int(d.workers)) //nolint:gosec
	for i := range d.workers {
		go d.worker(ctx, wg, i+1)
	}
	wg.Wait()

	if left := len(d.queue); left > 0 {
		d.l.WithField("dropped", left).Warn("stopped with undelivered notifications")
	}
	d.l.Info("Got stop signal, exiting...")
}

func (d *Dispatcher) worker(ctx context.Context, wg *sync.WaitGroup, workerID uint) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.deliver(ctx, workerID, n)
		}
	}
}

// deliver отправляет уведомление, повторяя попытку с линейно растущей паузой.
func (d *Dispatcher) deliver(ctx context.Context, workerID uint, n domain.Notification) {
	l := d.l.WithFields(logrus.Fields{
		"worker":  workerID,
		"to":      n.To,
		"subject": n.Subject,
	})

	for attempt := uint(1); ; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		err := d.sender.Send(sendCtx, n)
		cancel()

		if err == nil {
			l.WithField("attempt", attempt).Debug("delivered")
			return
		}
		if attempt >= d.maxAttempts {
			l.WithError(err).WithField("attempt", attempt).Error("notification dropped")
			return
		}
		l.WithError(err).WithField("attempt", attempt).Warn("send failed, retrying")

		select {
		case <-ctx.Done():
			return
		case <-time.After(d.retryDelay * time.Duration(attempt)):
		}
	}
}
