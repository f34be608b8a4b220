package liveactivity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/2beens/liveworkout/internal/telemetry/metrics"
	"github.com/2beens/liveworkout/internal/telemetry/tracing"
	"github.com/2beens/liveworkout/internal/workout"

	log "github.com/sirupsen/logrus"
)

// Manager owns at most one live activity per process lifetime, keyed
// by workout session id. All pushes go through it; failures never
// propagate to the workout flow - the in-app session state stays
// authoritative no matter what the widget shows.
type Manager struct {
	publisher      Publisher
	metricsManager *metrics.Manager

	mu         sync.Mutex
	activityID string
	sessionID  string
	lastState  *ContentState
	active     bool

	pushBusy atomic.Bool
}

func NewManager(publisher Publisher, metricsManager *metrics.Manager) *Manager {
	return &Manager{
		publisher:      publisher,
		metricsManager: metricsManager,
	}
}

// IsActive reports whether the manager currently holds a live activity.
func (m *Manager) IsActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// LastState returns a copy of the last pushed content state, nil if
// nothing was pushed yet.
func (m *Manager) LastState() *ContentState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastState == nil {
		return nil
	}
	stateCopy := *m.lastState
	return &stateCopy
}

type UpdateParams struct {
	IsActive             bool
	CurrentExerciseIndex int
	RestEndsAt           *time.Time
	StatusMessage        string
	ElapsedTime          time.Duration
}

// StartLiveActivity requests a new activity for the session. An
// existing running activity (app relaunch mid-workout) is reused
// instead of creating a duplicate. All failures downgrade to the
// "not active" state - never an error to the caller.
func (m *Manager) StartLiveActivity(ctx context.Context, session *workout.Session, params UpdateParams) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.manager.start")
	defer span.End()

	if !m.publisher.Enabled(ctx) {
		log.Debugln("live activities disabled, skipping start")
		m.setNotActive()
		return
	}

	existing, err := m.publisher.ActiveActivities(ctx)
	if err != nil {
		log.Errorf("start live activity, list existing: %s", err)
		m.setNotActive()
		return
	}
	if len(existing) > 0 {
		// reuse whatever is already on screen
		m.mu.Lock()
		m.activityID = existing[0].ID
		m.sessionID = session.ID
		m.active = true
		lastState := existing[0].State
		m.lastState = &lastState
		m.mu.Unlock()

		log.Debugf("reusing existing live activity %s for session %s", existing[0].ID, session.ID)
		m.UpdateLiveActivity(ctx, session, params)
		return
	}

	state := DeriveContentState(session, DeriveParams{
		IsActive:             params.IsActive,
		CurrentExerciseIndex: params.CurrentExerciseIndex,
		RestEndsAt:           params.RestEndsAt,
		StatusMessage:        params.StatusMessage,
		ElapsedTime:          params.ElapsedTime,
	})

	activityID, err := m.publisher.Request(ctx, ActivityAttributes{
		SessionID:   session.ID,
		WorkoutName: session.Name,
		StartedAt:   session.CreatedAt,
		TemplateID:  session.TemplateID,
	}, state)
	if err != nil {
		log.Errorf("request live activity for session %s: %s", session.ID, err)
		m.setNotActive()
		return
	}

	m.mu.Lock()
	m.activityID = activityID
	m.sessionID = session.ID
	m.lastState = &state
	m.active = true
	m.mu.Unlock()

	m.metricsManager.CounterActivityPushes.Inc()
	log.Debugf("live activity %s started for session %s", activityID, session.ID)
}

// EnsureLiveActivity is the idempotent upsert entry point: updates the
// existing activity for this session, or starts a new one. Prefer this
// over StartLiveActivity to avoid duplicate-activity bugs.
func (m *Manager) EnsureLiveActivity(ctx context.Context, session *workout.Session, params UpdateParams) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.manager.ensure")
	defer span.End()

	m.mu.Lock()
	haveActivity := m.active && m.activityID != "" && m.sessionID == session.ID
	m.mu.Unlock()

	if haveActivity {
		m.UpdateLiveActivity(ctx, session, params)
		return
	}

	if m.publisher.Enabled(ctx) {
		existing, err := m.publisher.ActiveActivities(ctx)
		if err == nil {
			for _, activity := range existing {
				if activity.Attributes.SessionID != session.ID {
					continue
				}
				m.mu.Lock()
				m.activityID = activity.ID
				m.sessionID = session.ID
				m.active = true
				lastState := activity.State
				m.lastState = &lastState
				m.mu.Unlock()

				m.UpdateLiveActivity(ctx, session, params)
				return
			}
		}
	}

	m.StartLiveActivity(ctx, session, params)
}

// UpdateLiveActivity recomputes the full content state and pushes it,
// unless the diff against the last pushed state shows no change on the
// fields that matter (exercise index, completed sets, active flag,
// rest end time) - widget pushes are rate- and battery-sensitive.
func (m *Manager) UpdateLiveActivity(ctx context.Context, session *workout.Session, params UpdateParams) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.manager.update")
	defer span.End()

	state := DeriveContentState(session, DeriveParams{
		IsActive:             params.IsActive,
		CurrentExerciseIndex: params.CurrentExerciseIndex,
		RestEndsAt:           params.RestEndsAt,
		StatusMessage:        params.StatusMessage,
		ElapsedTime:          params.ElapsedTime,
	})

	m.push(ctx, state)
}

// UpdateRestAndActive is the cheap partial-update path for timer-only
// changes: everything except the rest fields is reused from the last
// pushed state, no session recomputation.
func (m *Manager) UpdateRestAndActive(ctx context.Context, isActive bool, restEndsAt *time.Time, statusMessage string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.manager.updateRestAndActive")
	defer span.End()

	m.mu.Lock()
	if m.lastState == nil {
		m.mu.Unlock()
		log.Debugln("update rest and active: no known content state yet, skipping")
		return
	}
	state := *m.lastState
	m.mu.Unlock()

	state.IsActive = isActive
	state.RestEndsAt = restEndsAt
	state.StatusMessage = statusMessage

	m.push(ctx, state)
}

// EndLiveActivity pushes the terminal state and releases the handle.
// Completed workouts keep the summary visible briefly; discarded or
// failed ones are dismissed immediately.
func (m *Manager) EndLiveActivity(ctx context.Context, session *workout.Session, isCompleted bool, statusMessage string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "liveactivity.manager.end")
	defer span.End()

	m.mu.Lock()
	activityID := m.activityID
	m.mu.Unlock()

	if activityID == "" {
		log.Debugf("end live activity: nothing active for session %s", session.ID)
		return
	}

	state := DeriveEndState(session, isCompleted, statusMessage, time.Now())

	policy := DismissalImmediate
	if isCompleted {
		policy = DismissalAfterGrace
	}

	if err := m.publisher.End(ctx, activityID, state, policy); err != nil {
		log.Errorf("end live activity %s: %s", activityID, err)
	}

	m.mu.Lock()
	m.activityID = ""
	m.sessionID = ""
	m.lastState = nil
	m.active = false
	m.mu.Unlock()
}

func (m *Manager) setNotActive() {
	m.mu.Lock()
	m.active = false
	m.mu.Unlock()
}

// push runs the diff, the busy guard and the actual publisher call.
func (m *Manager) push(ctx context.Context, state ContentState) {
	m.mu.Lock()
	activityID := m.activityID
	lastState := m.lastState
	m.mu.Unlock()

	if activityID == "" {
		log.Debugln("live activity push skipped: no activity handle")
		return
	}

	if lastState != nil && !contentDiffers(*lastState, state) {
		m.metricsManager.CounterActivitySuppressed.Inc()
		return
	}

	// one push at a time; a concurrent one is dropped, the next state
	// change will carry the fresher data anyway
	if !m.pushBusy.CompareAndSwap(false, true) {
		log.Debugln("live activity push skipped: another push in flight")
		return
	}
	defer m.pushBusy.Store(false)

	pushStart := time.Now()
	err := m.publisher.Update(ctx, activityID, state)
	m.metricsManager.HistActivityPushDuration.Observe(time.Since(pushStart).Seconds())

	if err != nil {
		if errors.Is(err, ErrActivityNotFound) || errors.Is(err, ErrActivityEnded) {
			// the activity was dismissed under us, self-heal
			log.Debugf("live activity %s gone [%s], clearing handle", activityID, err)
			m.mu.Lock()
			m.activityID = ""
			m.sessionID = ""
			m.lastState = nil
			m.active = false
			m.mu.Unlock()
			return
		}
		log.Errorf("live activity %s push: %s", activityID, err)
		return
	}

	m.mu.Lock()
	stateCopy := state
	m.lastState = &stateCopy
	m.mu.Unlock()

	m.metricsManager.CounterActivityPushes.Inc()
}

// contentDiffers compares only the four fields a push is worth waking
// the widget for. Volume and elapsed-time drift alone never push.
func contentDiffers(last, next ContentState) bool {
	if last.CurrentExerciseIndex != next.CurrentExerciseIndex {
		return true
	}
	if last.CompletedSetsCount != next.CompletedSetsCount {
		return true
	}
	if last.IsActive != next.IsActive {
		return true
	}
	return !timesEqual(last.RestEndsAt, next.RestEndsAt)
}

func timesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
