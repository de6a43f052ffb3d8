package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// SMTPSender отправляет уведомления письмом.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(ctx context.Context, n domain.Notification) error {
	// gomail не принимает контекст, поэтому проверяем отмену хотя бы до соединения.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/html", n.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// KafkaMessage событие уведомления в топике.
type KafkaMessage struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}

// KafkaWriter часть *kafka.Writer, нужная отправителю.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaSender публикует уведомления в топик для внешних потребителей (рассылки, аудит).
type KafkaSender struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewKafkaWriter создает синхронный writer. Ключ сообщения адрес получателя, поэтому Hash балансировщик
// сохраняет порядок уведомлений одного пользователя.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3, //nolint:mnd
	}
}

func NewKafkaSender(writer KafkaWriter) *KafkaSender {
	return &KafkaSender{writer: writer, now: time.Now}
}

func (k *KafkaSender) Send(ctx context.Context, n domain.Notification) error {
	value, err := json.Marshal(KafkaMessage{
		To:        n.To,
		Subject:   n.Subject,
		HTML:      n.HTML,
		CreatedAt: k.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("kafka send: marshal: %w", err)
	}

	if err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.To),
		Value: value,
	}); err != nil {
		return fmt.Errorf("kafka send: %w", err)
	}
	return nil
}

// LogSender пишет уведомления в лог. Используется, когда ни один внешний канал не настроен.
type LogSender struct {
	l *logrus.Entry
}

func NewLogSender(l *logrus.Logger) *LogSender {
	return &LogSender{l: l.WithField("component", "notify")}
}

func (s *LogSender) Send(_ context.Context, n domain.Notification) error {
	s.l.WithFields(logrus.Fields{
		"to":      n.To,
		"subject": n.Subject,
	}).Info("notification")
	return nil
}

// Fanout отправляет уведомление во все каналы. Ошибка одного канала не мешает остальным.
type Fanout []Sender

func (f Fanout) Send(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, s := range f {
		if err := s.Send(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
