package healthsession

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=healthsession

// State of the recorded workout session.
type State string

const (
	StateNotStarted State = "not_started"
	StatePrepared   State = "prepared"
	StateRunning    State = "running"
	StatePaused     State = "paused"
	StateStopped    State = "stopped"
	StateEnded      State = "ended"
)

// Configuration describes the session before it is prepared.
type Configuration struct {
	// ActivityType, e.g. "traditional_strength_training"
	ActivityType string
	// Location is one of "indoor", "outdoor", "unknown"
	Location string
}

// Metrics is the running statistics mirror, overwritten wholesale on
// every statistics callback.
type Metrics struct {
	Elapsed           time.Duration `json:"elapsed"`
	DistanceMeters    float64       `json:"distanceMeters"`
	SpeedMetersPerSec float64       `json:"speedMetersPerSec"`
	HeartRateBPM      float64       `json:"heartRateBpm"`
	ActiveEnergyKcal  float64       `json:"activeEnergyKcal"`
}

// Summary of a finalized workout recording.
type Summary struct {
	StartedAt             time.Time     `json:"startedAt"`
	EndedAt               time.Time     `json:"endedAt"`
	Elapsed               time.Duration `json:"elapsed"`
	TotalDistanceMeters   float64       `json:"totalDistanceMeters"`
	TotalActiveEnergyKcal float64       `json:"totalActiveEnergyKcal"`
	AvgHeartRateBPM       float64       `json:"avgHeartRateBpm"`
}

// Callbacks are invoked by the recorder from its own goroutines, in
// delivery order. Implementations must not block in them.
type Callbacks struct {
	OnStateChange func(state State)
	OnMetrics     func(m Metrics)
}

// Recorder is the physiological data collection backend of a workout
// session. Stop only requests the stop - the recorder confirms it with
// a StateStopped callback, after which Finalize may be called.
type Recorder interface {
	Prepare(ctx context.Context, cfg Configuration, callbacks Callbacks) error
	Begin(ctx context.Context, startedAt time.Time) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Stop(ctx context.Context, endedAt time.Time) error
	Finalize(ctx context.Context) (*Summary, error)
}

// RestStore is the cross-process rest end-time surface. A missing
// value reads back as (nil, nil).
type RestStore interface {
	RestEndTime(ctx context.Context) (*time.Time, error)
	SetRestEndTime(ctx context.Context, endTime time.Time) error
	ClearRestEndTime(ctx context.Context) error
}
