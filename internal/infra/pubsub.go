package infra

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Publisher abstracts the push channel used for stock update broadcasts.
// Core services depend only on this capability, never on the Redis client —
// tests inject a recording fake.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
}

type redisPublisher struct{ rdb *redis.Client }

// NewRedisPublisher returns a Publisher backed by Redis PUBLISH. Connected
// listeners (websocket bridges, dashboards) subscribe to the channel directly.
func NewRedisPublisher(rdb *redis.Client) Publisher {
	return &redisPublisher{rdb: rdb}
}

func (p *redisPublisher) Publish(ctx context.Context, channel string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, channel, data).Err()
}
