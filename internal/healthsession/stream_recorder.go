package healthsession

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNotCollecting  = errors.New("recorder is not collecting")
	ErrNotStopped     = errors.New("recorder is not stopped")
	ErrInvalidSample  = errors.New("invalid sample")
	ErrAlreadyStarted = errors.New("recorder already started")
)

type SampleType string

const (
	SampleHeartRate    SampleType = "heart_rate"
	SampleActiveEnergy SampleType = "active_energy"
	SampleDistance     SampleType = "distance"
)

func (t SampleType) IsValid() bool {
	switch t {
	case SampleHeartRate, SampleActiveEnergy, SampleDistance:
		return true
	}
	return false
}

// Sample is one physiological reading pushed from the device.
// Heart rate in bpm, active energy in kcal and distance in meters,
// the latter two as increments since the previous sample.
type Sample struct {
	Type  SampleType `json:"type"`
	Value float64    `json:"value"`
	At    time.Time  `json:"at"`
}

// StreamRecorder collects pushed samples for one workout at a time and
// feeds the running statistics back through the recorder callbacks.
// Samples are only accepted while the session runs; its pause gap is
// excluded from the elapsed time.
type StreamRecorder struct {
	mu        sync.Mutex
	state     State
	config    Configuration
	callbacks Callbacks

	startedAt      time.Time
	endedAt        time.Time
	pausedAt       time.Time
	pausedTotal    time.Duration
	totalDistance  float64
	totalEnergy    float64
	heartRateSum   float64
	heartRateCount int
	lastHeartRate  float64
}

func NewStreamRecorder() *StreamRecorder {
	return &StreamRecorder{
		state: StateNotStarted,
	}
}

var _ Recorder = (*StreamRecorder)(nil)

func (r *StreamRecorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *StreamRecorder) Prepare(_ context.Context, cfg Configuration, callbacks Callbacks) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateNotStarted && r.state != StateEnded {
		return fmt.Errorf("prepare in state %s: %w", r.state, ErrAlreadyStarted)
	}

	r.state = StatePrepared
	r.config = cfg
	r.callbacks = callbacks
	r.startedAt = time.Time{}
	r.endedAt = time.Time{}
	r.pausedAt = time.Time{}
	r.pausedTotal = 0
	r.totalDistance = 0
	r.totalEnergy = 0
	r.heartRateSum = 0
	r.heartRateCount = 0
	r.lastHeartRate = 0

	log.Debugf("recorder prepared: %s / %s", cfg.ActivityType, cfg.Location)
	return nil
}

func (r *StreamRecorder) Begin(_ context.Context, startedAt time.Time) error {
	r.mu.Lock()
	if r.state != StatePrepared {
		defer r.mu.Unlock()
		return fmt.Errorf("begin in state %s: %w", r.state, ErrNotCollecting)
	}
	r.state = StateRunning
	r.startedAt = startedAt
	callbacks := r.callbacks
	r.mu.Unlock()

	r.notifyState(callbacks, StateRunning)
	return nil
}

func (r *StreamRecorder) Pause(_ context.Context) error {
	r.mu.Lock()
	if r.state != StateRunning {
		defer r.mu.Unlock()
		return fmt.Errorf("pause in state %s: %w", r.state, ErrNotCollecting)
	}
	r.state = StatePaused
	r.pausedAt = time.Now()
	callbacks := r.callbacks
	r.mu.Unlock()

	r.notifyState(callbacks, StatePaused)
	return nil
}

func (r *StreamRecorder) Resume(_ context.Context) error {
	r.mu.Lock()
	if r.state != StatePaused {
		defer r.mu.Unlock()
		return fmt.Errorf("resume in state %s: %w", r.state, ErrNotCollecting)
	}
	r.state = StateRunning
	r.pausedTotal += time.Since(r.pausedAt)
	r.pausedAt = time.Time{}
	callbacks := r.callbacks
	r.mu.Unlock()

	r.notifyState(callbacks, StateRunning)
	return nil
}

func (r *StreamRecorder) Stop(_ context.Context, endedAt time.Time) error {
	r.mu.Lock()
	if r.state != StateRunning && r.state != StatePaused {
		defer r.mu.Unlock()
		return fmt.Errorf("stop in state %s: %w", r.state, ErrNotCollecting)
	}
	if r.state == StatePaused {
		r.pausedTotal += time.Since(r.pausedAt)
		r.pausedAt = time.Time{}
	}
	r.state = StateStopped
	r.endedAt = endedAt
	callbacks := r.callbacks
	r.mu.Unlock()

	r.notifyState(callbacks, StateStopped)
	return nil
}

func (r *StreamRecorder) Finalize(_ context.Context) (*Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateStopped {
		return nil, fmt.Errorf("finalize in state %s: %w", r.state, ErrNotStopped)
	}

	summary := &Summary{
		StartedAt:             r.startedAt,
		EndedAt:               r.endedAt,
		Elapsed:               r.elapsedLocked(r.endedAt),
		TotalDistanceMeters:   r.totalDistance,
		TotalActiveEnergyKcal: r.totalEnergy,
	}
	if r.heartRateCount > 0 {
		summary.AvgHeartRateBPM = r.heartRateSum / float64(r.heartRateCount)
	}

	r.state = StateEnded
	return summary, nil
}

// AddSample ingests one device reading, updates the running statistics
// and emits the refreshed metrics mirror.
func (r *StreamRecorder) AddSample(_ context.Context, sample Sample) error {
	if !sample.Type.IsValid() {
		return fmt.Errorf("sample type %q: %w", sample.Type, ErrInvalidSample)
	}
	if sample.Value < 0 {
		return fmt.Errorf("negative sample value %f: %w", sample.Value, ErrInvalidSample)
	}

	r.mu.Lock()
	if r.state != StateRunning {
		defer r.mu.Unlock()
		return fmt.Errorf("sample in state %s: %w", r.state, ErrNotCollecting)
	}

	switch sample.Type {
	case SampleHeartRate:
		r.lastHeartRate = sample.Value
		r.heartRateSum += sample.Value
		r.heartRateCount++
	case SampleActiveEnergy:
		r.totalEnergy += sample.Value
	case SampleDistance:
		r.totalDistance += sample.Value
	}

	m := r.metricsLocked()
	callbacks := r.callbacks
	r.mu.Unlock()

	if callbacks.OnMetrics != nil {
		callbacks.OnMetrics(m)
	}
	return nil
}

func (r *StreamRecorder) Metrics() Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.metricsLocked()
}

func (r *StreamRecorder) metricsLocked() Metrics {
	elapsed := r.elapsedLocked(time.Now())
	m := Metrics{
		Elapsed:          elapsed,
		DistanceMeters:   r.totalDistance,
		ActiveEnergyKcal: r.totalEnergy,
		HeartRateBPM:     r.lastHeartRate,
	}
	if elapsed > 0 {
		m.SpeedMetersPerSec = r.totalDistance / elapsed.Seconds()
	}
	return m
}

func (r *StreamRecorder) elapsedLocked(until time.Time) time.Duration {
	if r.startedAt.IsZero() {
		return 0
	}
	elapsed := until.Sub(r.startedAt) - r.pausedTotal
	if !r.pausedAt.IsZero() {
		elapsed -= until.Sub(r.pausedAt)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (r *StreamRecorder) notifyState(callbacks Callbacks, state State) {
	if callbacks.OnStateChange != nil {
		callbacks.OnStateChange(state)
	}
}
