package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// RateService хранилище котировок золота. Котировки только добавляются, текущей считается последняя.
type RateService struct {
	rateRepo RateRepository
	cache    RateCache
	l        *logrus.Entry
	now      func() time.Time
}

// NewRateService создает сервис котировок. cache может быть nil, тогда каждое чтение идет в базу.
func NewRateService(u uow.UOW, cache RateCache, l *logrus.Logger) (*RateService, error) {
	rateRepo, err := repoFrom[RateRepository](u, repoargs.RateRepoName)
	if err != nil {
		return nil, err
	}
	return &RateService{
		rateRepo: rateRepo,
		cache:    cache,
		l:        l.WithField("component", "rate_service"),
		now:      time.Now,
	}, nil
}

// RecordRate добавляет новую котировку. Оба курса должны быть больше нуля, иначе domain.ErrValidation.
func (r *RateService) RecordRate(ctx context.Context, buyRate, sellRate decimal.Decimal) (*domain.GoldRate, error) {
	if !buyRate.IsPositive() || !sellRate.IsPositive() {
		return nil, fmt.Errorf("recording rate: %w: rates must be greater than zero", domain.ErrValidation)
	}
	for field, v := range map[string]decimal.Decimal{"buy rate": buyRate, "sell rate": sellRate} {
		if err := domain.CheckScale(v, domain.CashPlaces, field); err != nil {
			return nil, fmt.Errorf("recording rate: %w", err)
		}
	}

	rate, err := r.rateRepo.Create(ctx, buyRate, sellRate)
	if err != nil {
		return nil, normalizeErr("recording rate", err)
	}

	if r.cache != nil {
		if cacheErr := r.cache.Set(ctx, *rate); cacheErr != nil {
			r.l.WithError(cacheErr).Warn("refresh rate cache")
		}
	}
	return rate, nil
}

// CurrentRate возвращает последнюю котировку. Если котировок нет, возвращает нулевую domain.GoldRate без
// ошибки: торговля по ней невозможна (GoldRate.Tradable() == false).
func (r *RateService) CurrentRate(ctx context.Context) (domain.GoldRate, error) {
	if r.cache != nil {
		cached, cacheErr := r.cache.Get(ctx)
		if cacheErr == nil {
			return *cached, nil
		}
		if !errors.Is(cacheErr, domain.ErrRecordNotFound) {
			r.l.WithError(cacheErr).Warn("read rate cache")
		}
	}

	rate, err := r.rateRepo.Latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.GoldRate{}, nil
		}
		return domain.GoldRate{}, normalizeErr("current rate", err)
	}

	if r.cache != nil {
		if cacheErr := r.cache.Set(ctx, *rate); cacheErr != nil {
			r.l.WithError(cacheErr).Warn("fill rate cache")
		}
	}
	return *rate, nil
}

// History возвращает котировки за последние window в хронологическом порядке. Последовательность ленивая:
// запрос выполняется при каждом проходе, поэтому ее можно обходить повторно. Ошибка чтения отдается
// вторым значением и завершает проход.
func (r *RateService) History(ctx context.Context, window time.Duration) iter.Seq2[domain.GoldRate, error] {
	return func(yield func(domain.GoldRate, error) bool) {
		if window <= 0 {
			yield(domain.GoldRate{}, fmt.Errorf("rate history: %w: window must be positive", domain.ErrValidation))
			return
		}
		rates, err := r.rateRepo.Since(ctx, r.now().Add(-window))
		if err != nil {
			yield(domain.GoldRate{}, normalizeErr("rate history", err))
			return
		}
		for _, rate := range rates {
			if !yield(rate, nil) {
				return
			}
		}
	}
}
