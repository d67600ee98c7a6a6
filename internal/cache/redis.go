package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/kioskhub/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second

	kiosksKey = "kioskhub:kiosks:all"
)

// NewRedisClient returns a configured go-redis client and validates the connection with PING.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("redis: addr is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// Client is the subset of redis commands the kiosk store needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type cachedKiosk struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Region    string `json:"state,omitempty"`
	Available int    `json:"availableChargers"`
	Total     int    `json:"totalChargers"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// KioskStore caches the normalised kiosk list.
type KioskStore struct {
	client Client
	ttl    time.Duration
}

func NewKioskStore(client Client, ttl time.Duration) *KioskStore {
	return &KioskStore{client: client, ttl: ttl}
}

// Kiosks returns the cached list; a miss yields nil, nil.
func (s *KioskStore) Kiosks(ctx context.Context) ([]domain.Kiosk, error) {
	result, err := s.client.Get(ctx, kiosksKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cached []cachedKiosk
	if err := json.Unmarshal([]byte(result), &cached); err != nil {
		return nil, err
	}
	kiosks := make([]domain.Kiosk, 0, len(cached))
	for _, c := range cached {
		kiosks = append(kiosks, domain.Kiosk{
			ID:        c.ID,
			Name:      c.Name,
			Location:  c.Location,
			Address:   c.Address,
			City:      c.City,
			Region:    c.Region,
			Available: c.Available,
			Total:     c.Total,
			Status:    domain.KioskStatus(c.Status),
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return kiosks, nil
}

func (s *KioskStore) StoreKiosks(ctx context.Context, kiosks []domain.Kiosk) error {
	cached := make([]cachedKiosk, 0, len(kiosks))
	for _, k := range kiosks {
		cached = append(cached, cachedKiosk{
			ID:        k.ID,
			Name:      k.Name,
			Location:  k.Location,
			Address:   k.Address,
			City:      k.City,
			Region:    k.Region,
			Available: k.Available,
			Total:     k.Total,
			Status:    string(k.Status),
			CreatedAt: k.CreatedAt,
			UpdatedAt: k.UpdatedAt,
		})
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, kiosksKey, data, s.ttl).Err()
}

func (s *KioskStore) Invalidate(ctx context.Context) error {
	return s.client.Del(ctx, kiosksKey).Err()
}
