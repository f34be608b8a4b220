package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/liveworkout/internal/healthsession"
	"github.com/2beens/liveworkout/internal/telemetry/metrics"
	"github.com/2beens/liveworkout/internal/telemetry/tracing"
	"github.com/2beens/liveworkout/internal/workout"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=tracker

var (
	ErrWorkoutInProgress = errors.New("another workout is in progress")
	ErrNoActiveWorkout   = errors.New("no active workout")
	ErrNoActiveRest      = errors.New("no rest in progress")
	ErrNoTargetSet       = errors.New("no incomplete set to complete")
)

type sessionRepo interface {
	Add(ctx context.Context, session *workout.Session) error
	Update(ctx context.Context, session *workout.Session) error
	Get(ctx context.Context, id string) (*workout.Session, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params workout.ListParams) (_ []workout.Session, total int, err error)
}

type sessionAdapter interface {
	SetConfiguration(cfg healthsession.Configuration)
	PrepareWorkout(ctx context.Context)
	StartWorkout(ctx context.Context, session *workout.Session)
	TogglePause(ctx context.Context)
	EndWorkout(ctx context.Context)
	StartRest(ctx context.Context, durationSeconds int, session *workout.Session, currentExerciseIndex int)
	CancelRest(ctx context.Context)
	SetCurrentExercise(index int)
	RefreshLiveActivity(ctx context.Context, session *workout.Session)
}

// Tracker owns the single canonical in-memory session per active
// workout. Every mutation goes through it, gets persisted, and drives
// the rest timer and the live activity. The canonical session is only
// touched under the lock; everything leaving the tracker - responses,
// the repo, the adapter and its refresh goroutine - gets a detached
// deep-copied snapshot.
type Tracker struct {
	repo           sessionRepo
	adapter        sessionAdapter
	live           healthsession.LiveUpdater
	restStore      healthsession.RestStore
	metricsManager *metrics.Manager

	defaultRestSeconds int

	mu                   sync.Mutex
	session              *workout.Session
	currentExerciseIndex int
}

func New(
	repo sessionRepo,
	adapter sessionAdapter,
	live healthsession.LiveUpdater,
	restStore healthsession.RestStore,
	metricsManager *metrics.Manager,
	defaultRestSeconds int,
) *Tracker {
	return &Tracker{
		repo:               repo,
		adapter:            adapter,
		live:               live,
		restStore:          restStore,
		metricsManager:     metricsManager,
		defaultRestSeconds: defaultRestSeconds,
	}
}

type StartParams struct {
	AuthorID           string             `json:"authorId"`
	Name               string             `json:"name"`
	TemplateID         string             `json:"templateId,omitempty"`
	ScheduledWorkoutID string             `json:"scheduledWorkoutId,omitempty"`
	Exercises          []workout.Exercise `json:"exercises"`
	ActivityType       string             `json:"activityType,omitempty"`
	Location           string             `json:"location,omitempty"`
}

// StartWorkout creates and persists a new session and spins up the
// recording pipeline for it.
func (t *Tracker) StartWorkout(ctx context.Context, params StartParams) (_ *workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.startWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mu.Lock()
	if t.session != nil {
		t.mu.Unlock()
		return nil, ErrWorkoutInProgress
	}
	session := &workout.Session{
		ID:                 uuid.NewString(),
		AuthorID:           params.AuthorID,
		Name:               params.Name,
		CreatedAt:          time.Now(),
		Exercises:          params.Exercises,
		TemplateID:         params.TemplateID,
		ScheduledWorkoutID: params.ScheduledWorkoutID,
	}
	t.session = session
	t.currentExerciseIndex = 0
	snapshot := session.Clone()
	t.mu.Unlock()

	span.SetAttributes(attribute.String("session.id", snapshot.ID))

	if err := t.repo.Add(ctx, snapshot); err != nil {
		t.mu.Lock()
		t.session = nil
		t.mu.Unlock()
		return nil, fmt.Errorf("persist new session: %w", err)
	}

	activityType := params.ActivityType
	if activityType == "" {
		activityType = "traditional_strength_training"
	}
	location := params.Location
	if location == "" {
		location = "indoor"
	}
	t.adapter.SetConfiguration(healthsession.Configuration{
		ActivityType: activityType,
		Location:     location,
	})
	t.adapter.PrepareWorkout(ctx)
	t.adapter.StartWorkout(ctx, snapshot)

	t.metricsManager.CounterWorkoutsStarted.Inc()
	log.Debugf("workout started: %s", snapshot)

	return snapshot, nil
}

// Current returns a snapshot of the active session, nil when none.
func (t *Tracker) Current() *workout.Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session == nil {
		return nil
	}
	return t.session.Clone()
}

func (t *Tracker) CurrentExerciseIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentExerciseIndex
}

// CompleteSet marks a set done. The rest timer is started exactly when
// the completion timestamp flips from nil to non-nil - an already
// completed set changes nothing and starts nothing.
func (t *Tracker) CompleteSet(ctx context.Context, exerciseIndex, setIndex int) (_ *workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.completeSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("exercise.index", exerciseIndex),
		attribute.Int("set.index", setIndex),
	)

	t.mu.Lock()
	session := t.session
	if session == nil {
		t.mu.Unlock()
		return nil, ErrNoActiveWorkout
	}

	completedSet, err := session.CompleteSet(exerciseIndex, setIndex, time.Now())
	if err != nil {
		t.mu.Unlock()
		return nil, err
	}

	// all sets of this exercise done, move the focus to the next one
	if exercise := session.Exercise(exerciseIndex); exercise != nil &&
		exercise.TargetSet() == nil &&
		exerciseIndex+1 < len(session.Exercises) {
		t.currentExerciseIndex = exerciseIndex + 1
	} else {
		t.currentExerciseIndex = exerciseIndex
	}
	currentExerciseIndex := t.currentExerciseIndex
	setCopy := *completedSet
	snapshot := session.Clone()
	t.mu.Unlock()

	t.persist(ctx, snapshot)
	t.adapter.SetCurrentExercise(currentExerciseIndex)
	t.adapter.StartRest(ctx, t.defaultRestSeconds, snapshot, currentExerciseIndex)
	t.metricsManager.CounterSetsCompleted.Inc()

	return &setCopy, nil
}

func (t *Tracker) AddSet(ctx context.Context, exerciseIndex int, set workout.Set) (_ *workout.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mu.Lock()
	session := t.session
	if session == nil {
		t.mu.Unlock()
		return nil, ErrNoActiveWorkout
	}
	addedSet, err := session.AddSet(exerciseIndex, set)
	if err != nil {
		t.mu.Unlock()
		return nil, err
	}
	setCopy := *addedSet
	snapshot := session.Clone()
	t.mu.Unlock()

	t.persist(ctx, snapshot)
	t.adapter.RefreshLiveActivity(ctx, snapshot)

	return &setCopy, nil
}

func (t *Tracker) DeleteSet(ctx context.Context, exerciseIndex, setIndex int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.deleteSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mu.Lock()
	session := t.session
	if session == nil {
		t.mu.Unlock()
		return ErrNoActiveWorkout
	}
	if err := session.DeleteSet(exerciseIndex, setIndex); err != nil {
		t.mu.Unlock()
		return err
	}
	snapshot := session.Clone()
	t.mu.Unlock()

	t.persist(ctx, snapshot)
	t.adapter.RefreshLiveActivity(ctx, snapshot)

	return nil
}

func (t *Tracker) TogglePause(ctx context.Context) error {
	t.mu.Lock()
	session := t.session
	t.mu.Unlock()
	if session == nil {
		return ErrNoActiveWorkout
	}
	t.adapter.TogglePause(ctx)
	return nil
}

// Finish finalizes the end time, persists, and tears down the
// recording pipeline. The live activity ends when the recorder
// confirms the stop.
func (t *Tracker) Finish(ctx context.Context) (_ *workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mu.Lock()
	session := t.session
	if session == nil {
		t.mu.Unlock()
		return nil, ErrNoActiveWorkout
	}
	if err := session.Finish(time.Now()); err != nil {
		t.mu.Unlock()
		return nil, err
	}
	t.session = nil
	t.currentExerciseIndex = 0
	snapshot := session.Clone()
	t.mu.Unlock()

	span.SetAttributes(attribute.String("session.id", snapshot.ID))

	if err := t.repo.Update(ctx, snapshot); err != nil {
		// the finish still proceeds, the workout data lives in the
		// response and can be re-synced
		log.Errorf("persist finished session %s: %s", snapshot.ID, err)
	}

	t.adapter.EndWorkout(ctx)
	t.metricsManager.CounterWorkoutsFinished.Inc()
	log.Debugf("workout finished: %s", snapshot)

	return snapshot, nil
}

// Cancel discards the active workout: the session row is removed and
// the live activity is dismissed immediately, nothing of the finish
// transition is persisted.
func (t *Tracker) Cancel(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mu.Lock()
	session := t.session
	t.session = nil
	t.currentExerciseIndex = 0
	t.mu.Unlock()

	if session == nil {
		return ErrNoActiveWorkout
	}

	t.adapter.CancelRest(ctx)
	// end the widget before the recorder stop so the asynchronous
	// finalization cannot end it as "completed"
	t.live.EndLiveActivity(ctx, session, false, "Workout discarded")
	t.adapter.EndWorkout(ctx)

	if err := t.repo.Delete(ctx, session.ID); err != nil && !errors.Is(err, workout.ErrSessionNotFound) {
		log.Errorf("delete discarded session %s: %s", session.ID, err)
	}

	log.Debugf("workout discarded: %s", session)
	return nil
}

// AdjustRest shifts the shared rest end time by the given delta, the
// way the widget buttons do: only the shared store is written, the
// reconciliation poll picks the change up and reschedules the local
// deadline.
func (t *Tracker) AdjustRest(ctx context.Context, delta time.Duration) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.adjustRest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	endTime, err := t.restStore.RestEndTime(ctx)
	if err != nil {
		return fmt.Errorf("read rest end time: %w", err)
	}
	if endTime == nil {
		return ErrNoActiveRest
	}

	adjusted := endTime.Add(delta)
	if !adjusted.After(time.Now()) {
		// shrunk into the past, same as skipping
		t.metricsManager.CounterWidgetIntents.WithLabelValues("adjust_rest").Inc()
		return t.restStore.ClearRestEndTime(ctx)
	}

	if err := t.restStore.SetRestEndTime(ctx, adjusted); err != nil {
		return fmt.Errorf("store adjusted rest end time: %w", err)
	}

	t.metricsManager.CounterWidgetIntents.WithLabelValues("adjust_rest").Inc()
	return nil
}

// SkipRest clears the rest timer on behalf of the widget.
func (t *Tracker) SkipRest(ctx context.Context) error {
	t.mu.Lock()
	session := t.session
	t.mu.Unlock()
	if session == nil {
		return ErrNoActiveWorkout
	}

	t.adapter.CancelRest(ctx)
	t.metricsManager.CounterWidgetIntents.WithLabelValues("skip_rest").Inc()
	return nil
}

// CompleteTargetSet completes the first incomplete set of the current
// exercise, the widget "done" button semantics.
func (t *Tracker) CompleteTargetSet(ctx context.Context) (*workout.Set, error) {
	t.mu.Lock()
	session := t.session
	if session == nil {
		t.mu.Unlock()
		return nil, ErrNoActiveWorkout
	}
	exerciseIndex := t.currentExerciseIndex
	exercise := session.Exercise(exerciseIndex)
	if exercise == nil {
		t.mu.Unlock()
		return nil, workout.ErrExerciseNotFound
	}
	targetSet := exercise.TargetSet()
	if targetSet == nil {
		t.mu.Unlock()
		return nil, ErrNoTargetSet
	}
	setIndex := targetSet.Index
	t.mu.Unlock()

	t.metricsManager.CounterWidgetIntents.WithLabelValues("complete_set").Inc()
	return t.CompleteSet(ctx, exerciseIndex, setIndex)
}

// persist is log-and-continue: the in-memory session stays
// authoritative even when the write fails.
func (t *Tracker) persist(ctx context.Context, session *workout.Session) {
	if err := t.repo.Update(ctx, session); err != nil {
		log.Errorf("persist session %s: %s", session.ID, err)
	}
}
