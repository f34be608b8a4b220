package liveactivity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liveworkout/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	activeActivitiesKey = "liveactivity:active"
	updatesChannelKey   = "liveactivity:updates"
	activityKeyPrefix   = "liveactivity:activity:"

	// how long an ended activity document stays readable for the
	// widget process before it is dismissed
	endedActivityGraceTTL = 4 * time.Minute
	endedActivityShortTTL = 2 * time.Second
)

var _ Publisher = (*RedisPublisher)(nil)

// RedisPublisher keeps activity documents in redis and announces every
// push on a pub/sub channel. The widget process - a separate sandbox in
// the original design - subscribes to the channel and reads the
// documents; it never talks back through this surface.
type RedisPublisher struct {
	namespace   string
	enabled     bool
	redisClient *redis.Client
}

func NewRedisPublisher(namespace string, enabled bool, redisClient *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		namespace:   namespace,
		enabled:     enabled,
		redisClient: redisClient,
	}
}

type activityDocument struct {
	Info     ActivityInfo `json:"info"`
	Ended    bool         `json:"ended"`
	PushedAt time.Time    `json:"pushedAt"`
}

func (p *RedisPublisher) activityKey(activityID string) string {
	return p.namespace + ":" + activityKeyPrefix + activityID
}

func (p *RedisPublisher) activeKey() string {
	return p.namespace + ":" + activeActivitiesKey
}

func (p *RedisPublisher) updatesChannel() string {
	return p.namespace + ":" + updatesChannelKey
}

func (p *RedisPublisher) Enabled(ctx context.Context) bool {
	if !p.enabled {
		return false
	}
	if err := p.redisClient.Ping(ctx).Err(); err != nil {
		log.Errorf("live activity publisher: redis ping: %s", err)
		return false
	}
	return true
}

func (p *RedisPublisher) Request(
	ctx context.Context,
	attrs ActivityAttributes,
	state ContentState,
) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.publisher.request")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activityID := uuid.NewString()
	doc := activityDocument{
		Info: ActivityInfo{
			ID:         activityID,
			Attributes: attrs,
			State:      state,
		},
		PushedAt: time.Now(),
	}

	if err := p.writeAndAnnounce(ctx, doc, 0); err != nil {
		return "", err
	}

	if err := p.redisClient.SAdd(ctx, p.activeKey(), activityID).Err(); err != nil {
		return "", fmt.Errorf("register active activity: %w", err)
	}

	return activityID, nil
}

func (p *RedisPublisher) ActiveActivities(ctx context.Context) (_ []ActivityInfo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.publisher.activeActivities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activityIDs, err := p.redisClient.SMembers(ctx, p.activeKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list active activities: %w", err)
	}

	var activities []ActivityInfo
	for _, activityID := range activityIDs {
		doc, err := p.getDocument(ctx, activityID)
		if err != nil {
			if errors.Is(err, ErrActivityNotFound) {
				// expired document, drop the dangling registration
				if remErr := p.redisClient.SRem(ctx, p.activeKey(), activityID).Err(); remErr != nil {
					log.Warnf("remove dangling activity %s: %s", activityID, remErr)
				}
				continue
			}
			return nil, err
		}
		if doc.Ended {
			continue
		}
		activities = append(activities, doc.Info)
	}

	return activities, nil
}

func (p *RedisPublisher) Update(ctx context.Context, activityID string, state ContentState) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.publisher.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := p.getDocument(ctx, activityID)
	if err != nil {
		return err
	}
	if doc.Ended {
		return ErrActivityEnded
	}

	doc.Info.State = state
	doc.PushedAt = time.Now()

	return p.writeAndAnnounce(ctx, *doc, 0)
}

func (p *RedisPublisher) End(
	ctx context.Context,
	activityID string,
	state ContentState,
	policy DismissalPolicy,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.publisher.end")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := p.getDocument(ctx, activityID)
	if err != nil {
		return err
	}

	doc.Info.State = state
	doc.Ended = true
	doc.PushedAt = time.Now()

	ttl := endedActivityShortTTL
	if policy == DismissalAfterGrace {
		ttl = endedActivityGraceTTL
	}

	if err := p.writeAndAnnounce(ctx, *doc, ttl); err != nil {
		return err
	}

	if err := p.redisClient.SRem(ctx, p.activeKey(), activityID).Err(); err != nil {
		return fmt.Errorf("unregister activity: %w", err)
	}

	return nil
}

func (p *RedisPublisher) getDocument(ctx context.Context, activityID string) (*activityDocument, error) {
	cmd := p.redisClient.Get(ctx, p.activityKey(activityID))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("get activity document: %w", err)
	}

	var doc activityDocument
	if err := json.Unmarshal([]byte(cmd.Val()), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal activity document: %w", err)
	}
	return &doc, nil
}

func (p *RedisPublisher) writeAndAnnounce(ctx context.Context, doc activityDocument, ttl time.Duration) error {
	docJson, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal activity document: %w", err)
	}

	if err := p.redisClient.Set(ctx, p.activityKey(doc.Info.ID), docJson, ttl).Err(); err != nil {
		return fmt.Errorf("store activity document: %w", err)
	}

	if err := p.redisClient.Publish(ctx, p.updatesChannel(), docJson).Err(); err != nil {
		// the document is stored, the widget will catch up on its next
		// read - not worth failing the push over
		log.Warnf("announce activity %s update: %s", doc.Info.ID, err)
	}

	return nil
}
