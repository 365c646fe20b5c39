package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mvalderrama/flightfunnel/internal/engine"
	"github.com/mvalderrama/flightfunnel/internal/models"
)

// Cache memoizes engine results by criteria and phase. Purely a performance
// optimization: the engine is a pure function over a static inventory, so a
// stale entry can only exist if the TTL outlives a redeploy of the seed data.
type Cache interface {
	Get(ctx context.Context, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight) (engine.Result, bool)
	Set(ctx context.Context, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight, result engine.Result) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

type cachedResult struct {
	Flights                []models.Flight `json:"flights"`
	NoFlightsForDay        bool            `json:"no_flights_for_day"`
	NoValidReturnAfterTime bool            `json:"no_valid_return_after_time"`
}

func (c *RedisCache) Get(ctx context.Context, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight) (engine.Result, bool) {
	data, err := c.client.Get(ctx, GenerateKey(criteria, phase, chosenOutbound)).Bytes()
	if err != nil {
		return engine.Result{}, false
	}

	var cached cachedResult
	if err := json.Unmarshal(data, &cached); err != nil {
		return engine.Result{}, false
	}

	return engine.Result{
		Flights:                cached.Flights,
		NoFlightsForDay:        cached.NoFlightsForDay,
		NoValidReturnAfterTime: cached.NoValidReturnAfterTime,
	}, true
}

func (c *RedisCache) Set(ctx context.Context, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight, result engine.Result) error {
	data, err := json.Marshal(cachedResult{
		Flights:                result.Flights,
		NoFlightsForDay:        result.NoFlightsForDay,
		NoValidReturnAfterTime: result.NoValidReturnAfterTime,
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, GenerateKey(criteria, phase, chosenOutbound), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight) (engine.Result, bool) {
	return engine.Result{}, false
}

func (c *NoOpCache) Set(ctx context.Context, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight, result engine.Result) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// GenerateKey hashes everything the engine's output depends on. The chosen
// outbound id participates because the same-day gap stage does.
func GenerateKey(criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight) string {
	keyData := struct {
		Criteria   models.SearchCriteria
		Phase      models.Phase
		OutboundID int
	}{
		Criteria: criteria,
		Phase:    phase,
	}
	if chosenOutbound != nil {
		keyData.OutboundID = chosenOutbound.ID
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "funnel:" + hex.EncodeToString(hash[:])
}
