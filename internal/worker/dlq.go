package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqPrefix = "dlq:"

// DLQEntry wraps a job that exhausted its retries, together with
// its last error, so failed exports and mails can be inspected later.
type DLQEntry struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Error    string          `json:"error"`
	Attempts int             `json:"attempts"`
	FailedAt time.Time       `json:"failed_at"`
}

// SendToDLQ moves a permanently failed job to the dead letter queue of
// its origin queue.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, errMsg string, attempts int) {
	entry := DLQEntry{
		Type:     jobType,
		Payload:  payload,
		Error:    errMsg,
		Attempts: attempts,
		FailedAt: time.Now().UTC(),
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal DLQ entry")
		return
	}
	if err := rdb.LPush(ctx, dlqPrefix+queue, encoded).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("failed to push DLQ entry")
		return
	}
	log.Warn().
		Str("queue", queue).
		Str("type", jobType).
		Int("attempts", attempts).
		Str("error", errMsg).
		Msg("job moved to dead letter queue")
}

// DLQLength reports how many entries a queue's DLQ holds. Exposed via
// the health endpoint.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, dlqPrefix+queue).Result()
}
