package liveactivity

import (
	"context"
	"errors"
)

var (
	ErrActivityNotFound = errors.New("live activity not found")
	ErrActivityEnded    = errors.New("live activity already ended")
)

// DismissalPolicy controls how long an ended activity stays visible.
type DismissalPolicy string

const (
	// DismissalAfterGrace keeps the ended widget around briefly so the
	// user sees the workout summary.
	DismissalAfterGrace DismissalPolicy = "after_grace"
	// DismissalImmediate removes the widget right away, used for
	// discarded or failed workouts.
	DismissalImmediate DismissalPolicy = "immediate"
)

type ActivityInfo struct {
	ID         string             `json:"id"`
	Attributes ActivityAttributes `json:"attributes"`
	State      ContentState       `json:"state"`
}

//go:generate mockgen -source=$GOFILE -destination=publisher_mocks_test.go -package=liveactivity_test

// Publisher is the platform surface the content manager pushes into.
// The widget process renders whatever arrives here; the manager never
// learns anything back from it.
type Publisher interface {
	Enabled(ctx context.Context) bool
	Request(ctx context.Context, attrs ActivityAttributes, state ContentState) (string, error)
	ActiveActivities(ctx context.Context) ([]ActivityInfo, error)
	Update(ctx context.Context, activityID string, state ContentState) error
	End(ctx context.Context, activityID string, state ContentState, policy DismissalPolicy) error
}
