package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

const (
	defaultExpiration = time.Minute
	currentRateKey    = "gold_rate:current"
	currentRateIDKey  = "gold_rate:current:id"
)

// setIfNewerScript записывает котировку, только если в кэше нет котировки с большим id.
// KEYS[1] значение, KEYS[2] id. ARGV: значение, id, ttl в миллисекундах.
const setIfNewerScript = `
local cur = redis.call("get", KEYS[2])
if cur and tonumber(cur) > tonumber(ARGV[2]) then
	return 0
end
redis.call("set", KEYS[1], ARGV[1], "px", ARGV[3])
redis.call("set", KEYS[2], ARGV[2], "px", ARGV[3])
return 1
`

// redisClient часть *redis.Client, которую использует кэш.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RateCache кэш текущей котировки золота. Курсы хранятся строками, чтобы не терять точность.
type RateCache struct {
	client     redisClient
	expiration time.Duration
}

func NewRateCache(client *redis.Client, expiration time.Duration) *RateCache {
	if expiration <= 0 {
		expiration = defaultExpiration
	}
	return &RateCache{client: client, expiration: expiration}
}

type cachedRate struct {
	ID         int64           `json:"id"`
	BuyRate    decimal.Decimal `json:"buy_rate"`
	SellRate   decimal.Decimal `json:"sell_rate"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Get возвращает закэшированную котировку или domain.ErrRecordNotFound при промахе.
func (c *RateCache) Get(ctx context.Context) (*domain.GoldRate, error) {
	raw, err := c.client.Get(ctx, currentRateKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("[redisrepo/rate] get: %w", err)
	}

	var cached cachedRate
	if err = json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("[redisrepo/rate] decode: %w", err)
	}
	return &domain.GoldRate{
		ID:         cached.ID,
		BuyRate:    cached.BuyRate,
		SellRate:   cached.SellRate,
		RecordedAt: cached.RecordedAt,
	}, nil
}

// Set кладет котировку в кэш. Котировка старше закэшированной (по id) не записывается,
// поэтому опоздавшее заполнение кэша не затирает более новую запись.
func (c *RateCache) Set(ctx context.Context, rate domain.GoldRate) error {
	raw, err := json.Marshal(cachedRate{
		ID:         rate.ID,
		BuyRate:    rate.BuyRate,
		SellRate:   rate.SellRate,
		RecordedAt: rate.RecordedAt,
	})
	if err != nil {
		return fmt.Errorf("[redisrepo/rate] encode: %w", err)
	}
	keys := []string{currentRateKey, currentRateIDKey}
	if err = c.client.Eval(ctx, setIfNewerScript, keys, raw, rate.ID, c.expiration.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("[redisrepo/rate] set: %w", err)
	}
	return nil
}
