package rest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const restEndTimeKey = "restEndTime"

// Bridge is the shared storage surface for the rest end time - the one
// piece of state both the app process and the widget process read and
// write. Consistency model is last-writer-wins: updates are human-paced
// button presses, and the session adapter reconciles periodically.
type Bridge struct {
	namespace   string
	redisClient *redis.Client
}

func NewBridge(namespace string, redisClient *redis.Client) *Bridge {
	return &Bridge{
		namespace:   namespace,
		redisClient: redisClient,
	}
}

func (b *Bridge) key() string {
	return b.namespace + ":" + restEndTimeKey
}

// RestEndTime returns the shared rest end time, or nil when no rest is
// active. A missing key is not an error.
func (b *Bridge) RestEndTime(ctx context.Context) (*time.Time, error) {
	cmd := b.redisClient.Get(ctx, b.key())
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rest end time: %w", err)
	}

	millis, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse rest end time [%s]: %w", cmd.Val(), err)
	}

	endTime := time.UnixMilli(millis)
	return &endTime, nil
}

func (b *Bridge) SetRestEndTime(ctx context.Context, endTime time.Time) error {
	cmd := b.redisClient.Set(
		ctx,
		b.key(),
		strconv.FormatInt(endTime.UnixMilli(), 10),
		0,
	)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("set rest end time: %w", err)
	}
	return nil
}

// ClearRestEndTime removes the shared rest end time unconditionally.
func (b *Bridge) ClearRestEndTime(ctx context.Context) error {
	if err := b.redisClient.Del(ctx, b.key()).Err(); err != nil {
		return fmt.Errorf("clear rest end time: %w", err)
	}
	return nil
}
