package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	serviceSuite
	cache   *mocks.MockRateCache
	service *RateService
	now     time.Time
}

func TestRateServiceSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}

func (s *RateServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.cache = mocks.NewMockRateCache(s.ctrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	var err error
	s.service, err = NewRateService(s.mockUOW, s.cache, l)
	s.Require().NoError(err)

	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func (s *RateServiceTestSuite) TestRecordRate() {
	rate := &domain.GoldRate{ID: 1, BuyRate: dec("30.00"), SellRate: dec("33.33")}
	s.rates.EXPECT().Create(gomock.Any(), decEq("30.00"), decEq("33.33")).Return(rate, nil)
	// ошибка кэша не ломает запись котировки.
	s.cache.EXPECT().Set(gomock.Any(), *rate).Return(errors.New("redis down"))

	res, err := s.service.RecordRate(s.T().Context(), dec("30.00"), dec("33.33"))
	s.Require().NoError(err)
	s.Equal(int64(1), res.ID)
}

func (s *RateServiceTestSuite) TestRecordRate_Validation() {
	cases := []struct {
		name      string
		buy, sell string
	}{
		{name: "zero buy", buy: "0", sell: "33.33"},
		{name: "negative sell", buy: "30", sell: "-1"},
		{name: "too precise", buy: "30.001", sell: "33.33"},
	}
	s.rates.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.service.RecordRate(s.T().Context(), dec(t.buy), dec(t.sell))
			s.Require().ErrorIs(err, domain.ErrValidation)
		})
	}
}

func (s *RateServiceTestSuite) TestCurrentRate_CacheHit() {
	cached := &domain.GoldRate{ID: 9, BuyRate: dec("1"), SellRate: dec("2")}
	s.cache.EXPECT().Get(gomock.Any()).Return(cached, nil)
	s.rates.EXPECT().Latest(gomock.Any()).Times(0)

	rate, err := s.service.CurrentRate(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(9), rate.ID)
}

func (s *RateServiceTestSuite) TestCurrentRate_CacheMiss() {
	latest := &domain.GoldRate{ID: 3, BuyRate: dec("30"), SellRate: dec("31")}
	s.cache.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrRecordNotFound)
	s.rates.EXPECT().Latest(gomock.Any()).Return(latest, nil)
	s.cache.EXPECT().Set(gomock.Any(), *latest).Return(nil)

	rate, err := s.service.CurrentRate(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(3), rate.ID)
	s.True(rate.Tradable())
}

func (s *RateServiceTestSuite) TestCurrentRate_NoRates() {
	s.cache.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrRecordNotFound)
	s.rates.EXPECT().Latest(gomock.Any()).Return(nil, domain.ErrRecordNotFound)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	rate, err := s.service.CurrentRate(s.T().Context())
	s.Require().NoError(err)
	s.False(rate.Tradable())
}

func (s *RateServiceTestSuite) TestHistory() {
	from := s.now.Add(-24 * time.Hour)
	rates := []domain.GoldRate{{ID: 1}, {ID: 2}, {ID: 3}}
	// каждый проход заново читает хранилище.
	s.rates.EXPECT().Since(gomock.Any(), from).Return(rates, nil).Times(2)

	history := s.service.History(s.T().Context(), 24*time.Hour)

	var ids []int64
	for rate, err := range history {
		s.Require().NoError(err)
		ids = append(ids, rate.ID)
	}
	s.Equal([]int64{1, 2, 3}, ids)

	var first int64
	for rate := range history {
		first = rate.ID
		break
	}
	s.Equal(int64(1), first)
}

func (s *RateServiceTestSuite) TestHistory_Errors() {
	for _, err := range s.service.History(s.T().Context(), 0) {
		s.Require().ErrorIs(err, domain.ErrValidation)
	}

	s.rates.EXPECT().Since(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnknown)
	var calls int
	for _, err := range s.service.History(s.T().Context(), time.Hour) {
		calls++
		s.Require().ErrorIs(err, domain.ErrUnknown)
		s.NotErrorIs(err, domain.ErrTransient)
	}
	s.Equal(1, calls)
}
