package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"thecorner/backend/internal/models"
)

// ReportsChannel is the Redis Pub/Sub channel new reports are announced on,
// for live moderation consumers.
const ReportsChannel = "reports:new"

// Publisher pushes each report to Redis Pub/Sub. Subscribers that are not
// listening simply miss it; the durable copy lives in the other sinks.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

func (p *Publisher) Save(ctx context.Context, rep *models.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := p.rdb.Publish(ctx, ReportsChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	return nil
}
