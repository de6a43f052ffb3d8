package notify

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/transport/notify/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	sender     *mocks.MockSender
	dispatcher *Dispatcher
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sender = mocks.NewMockSender(s.ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.dispatcher = New(s.sender, logger).SetWorkers(3).SetRetry(3, time.Millisecond)
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// run запускает диспетчер и возвращает функцию остановки, дожидающуюся выхода Run.
func (s *DispatcherTestSuite) run() func() {
	ctx, cancel := context.WithCancel(s.T().Context())
	done := make(chan struct{})
	go func() {
		s.dispatcher.Run(ctx)
		close(done)
	}()
	return func() {
		cancel()
		<-done
	}
}

func (s *DispatcherTestSuite) TestDeliversAll() {
	var delivered atomic.Int32
	s.sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Notification) error {
			delivered.Add(1)
			return nil
		}).Times(5)

	stop := s.run()
	defer stop()

	for range 5 {
		s.dispatcher.Notify(s.T().Context(), domain.Notification{To: "a@example.com", Subject: "x"})
	}
	s.Eventually(func() bool { return delivered.Load() == 5 }, time.Second, 5*time.Millisecond)
}

func (s *DispatcherTestSuite) TestRetry() {
	n := domain.Notification{To: "b@example.com", Subject: "Deposit Approved"}
	var delivered atomic.Bool
	gomock.InOrder(
		s.sender.EXPECT().Send(gomock.Any(), n).Return(errors.New("smtp: 421")),
		s.sender.EXPECT().Send(gomock.Any(), n).DoAndReturn(func(context.Context, domain.Notification) error {
			delivered.Store(true)
			return nil
		}),
	)

	stop := s.run()
	defer stop()

	s.dispatcher.Notify(s.T().Context(), n)
	s.Eventually(delivered.Load, time.Second, 5*time.Millisecond)
}

// TestGiveUp после исчерпания попыток уведомление отбрасывается без паники и повторов.
func (s *DispatcherTestSuite) TestGiveUp() {
	var calls atomic.Int32
	s.sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Notification) error {
			calls.Add(1)
			return errors.New("down")
		}).Times(3)

	stop := s.run()
	defer stop()

	s.dispatcher.Notify(s.T().Context(), domain.Notification{To: "c@example.com"})
	s.Eventually(func() bool { return calls.Load() == 3 }, time.Second, 5*time.Millisecond)
}

func (s *DispatcherTestSuite) TestQueueFullDrops() {
	s.dispatcher.SetQueueSize(1)

	// диспетчер не запущен: второе уведомление не помещается и не блокирует вызывающего.
	s.dispatcher.Notify(s.T().Context(), domain.Notification{To: "1"})
	s.dispatcher.Notify(s.T().Context(), domain.Notification{To: "2"})

	s.Len(s.dispatcher.queue, 1)
	s.Equal("1", (<-s.dispatcher.queue).To)
}

func (s *DispatcherTestSuite) TestZeroQueueSizeKeepsBuffer() {
	s.dispatcher.SetQueueSize(0)
	s.Equal(int(defaultQueueSize), cap(s.dispatcher.queue))

	// без запущенных воркеров уведомление все равно ставится в очередь.
	s.dispatcher.Notify(s.T().Context(), domain.Notification{To: "1"})
	s.Len(s.dispatcher.queue, 1)
}
