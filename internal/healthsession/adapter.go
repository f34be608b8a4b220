package healthsession

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/liveworkout/internal/liveactivity"
	"github.com/2beens/liveworkout/internal/rest"
	"github.com/2beens/liveworkout/internal/telemetry/metrics"
	"github.com/2beens/liveworkout/internal/workout"

	log "github.com/sirupsen/logrus"
)

const (
	stateEventBufferSize = 8
	defaultRefreshPeriod = time.Second

	// externally written rest end times within this delta of the local
	// deadline are treated as equal, everything larger is a resync
	restEndTimeTolerance = 500 * time.Millisecond

	statusWorkingOut = "Working out"
	statusResting    = "Resting"
	statusPaused     = "Paused"
)

// LiveUpdater is the narrow surface the adapter needs from the live
// activity manager. The manager holds no reference back.
type LiveUpdater interface {
	StartLiveActivity(ctx context.Context, session *workout.Session, params liveactivity.UpdateParams)
	EnsureLiveActivity(ctx context.Context, session *workout.Session, params liveactivity.UpdateParams)
	UpdateLiveActivity(ctx context.Context, session *workout.Session, params liveactivity.UpdateParams)
	UpdateRestAndActive(ctx context.Context, isActive bool, restEndsAt *time.Time, statusMessage string)
	EndLiveActivity(ctx context.Context, session *workout.Session, isCompleted bool, statusMessage string)
}

// Adapter drives a Recorder through the workout session lifecycle and
// keeps the live activity and the cross-process rest timer in sync
// with it. Recorder state callbacks are funneled through a single
// consumer goroutine, so transitions are processed serially in arrival
// order no matter which goroutine delivered them.
type Adapter struct {
	recorder       Recorder
	live           LiveUpdater
	restStore      RestStore
	scheduler      *rest.Scheduler
	metricsManager *metrics.Manager

	funnel       *stateFunnel
	consumerDone chan struct{}

	mu                   sync.Mutex
	state                State
	config               *Configuration
	session              *workout.Session
	currentExerciseIndex int
	liveMetrics          Metrics
	summary              *Summary
	refreshPeriod        time.Duration
	refreshCancel        context.CancelFunc
}

func NewAdapter(
	recorder Recorder,
	live LiveUpdater,
	restStore RestStore,
	scheduler *rest.Scheduler,
	metricsManager *metrics.Manager,
) *Adapter {
	a := &Adapter{
		recorder:       recorder,
		live:           live,
		restStore:      restStore,
		scheduler:      scheduler,
		metricsManager: metricsManager,
		funnel:         newStateFunnel(stateEventBufferSize),
		consumerDone:   make(chan struct{}),
		state:          StateNotStarted,
		refreshPeriod:  defaultRefreshPeriod,
	}

	go func() {
		a.funnel.run(a.processStateEvent)
		close(a.consumerDone)
	}()

	return a
}

// Close stops the event consumer and the refresh loop. The adapter is
// unusable afterwards.
func (a *Adapter) Close() {
	a.stopRefreshLoop()
	a.funnel.close()
	<-a.consumerDone
}

func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Adapter) setState(state State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == state {
		return
	}
	log.Debugf("workout session state: %s -> %s", a.state, state)
	a.state = state
}

// Metrics returns the latest statistics mirror.
func (a *Adapter) Metrics() Metrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.liveMetrics
}

// Summary returns the finalized workout summary, nil before the
// session ended.
func (a *Adapter) Summary() *Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.summary == nil {
		return nil
	}
	summaryCopy := *a.summary
	return &summaryCopy
}

func (a *Adapter) SetConfiguration(cfg Configuration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.config = &cfg
}

// PrepareWorkout constructs and wires the recorder session. A missing
// configuration or a recorder failure reverts to not-started without
// surfacing an error - the workout itself can still be tracked.
func (a *Adapter) PrepareWorkout(ctx context.Context) {
	a.mu.Lock()
	config := a.config
	a.mu.Unlock()

	if config == nil {
		log.Errorln("prepare workout: no configuration set")
		a.setState(StateNotStarted)
		return
	}

	err := a.recorder.Prepare(ctx, *config, Callbacks{
		OnStateChange: a.funnel.publish,
		OnMetrics:     a.onMetrics,
	})
	if err != nil {
		log.Errorf("prepare workout recorder: %s", err)
		a.setState(StateNotStarted)
		return
	}

	a.setState(StatePrepared)
}

// StartWorkout begins data collection at "now", starts the periodic
// refresh and puts a live activity on screen for the session.
func (a *Adapter) StartWorkout(ctx context.Context, session *workout.Session) {
	if state := a.State(); state != StatePrepared {
		log.Errorf("start workout ignored in state %s", state)
		return
	}

	if err := a.recorder.Begin(ctx, time.Now()); err != nil {
		log.Errorf("start workout recorder: %s", err)
		return
	}

	a.mu.Lock()
	a.session = session
	a.state = StateRunning
	a.mu.Unlock()

	a.startRefreshLoop()
	a.metricsManager.GaugeActiveWorkouts.Inc()

	a.live.StartLiveActivity(ctx, session, liveactivity.UpdateParams{
		IsActive:      true,
		StatusMessage: statusWorkingOut,
	})
}

func (a *Adapter) Pause(ctx context.Context) {
	if err := a.recorder.Pause(ctx); err != nil {
		log.Errorf("pause workout recorder: %s", err)
	}
}

func (a *Adapter) Resume(ctx context.Context) {
	if err := a.recorder.Resume(ctx); err != nil {
		log.Errorf("resume workout recorder: %s", err)
	}
}

func (a *Adapter) TogglePause(ctx context.Context) {
	switch state := a.State(); state {
	case StateRunning:
		a.Pause(ctx)
	case StatePaused:
		a.Resume(ctx)
	default:
		log.Debugf("toggle pause ignored in state %s", state)
	}
}

// EndWorkout requests the recorder stop and tears down the refresh
// loop and any pending rest. Collection finalization happens
// asynchronously when the stopped event arrives on the state stream.
func (a *Adapter) EndWorkout(ctx context.Context) {
	a.stopRefreshLoop()
	a.CancelRest(ctx)

	if err := a.recorder.Stop(ctx, time.Now()); err != nil {
		log.Errorf("end workout recorder stop: %s", err)
	}
}

// SetCurrentExercise records which exercise the refresh loop should
// report on.
func (a *Adapter) SetCurrentExercise(index int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentExerciseIndex = index
}

// StartRest cancels any rest in progress, publishes the new end time
// to the shared store, pushes an immediate live update and arms the
// deadline timer.
func (a *Adapter) StartRest(
	ctx context.Context,
	durationSeconds int,
	session *workout.Session,
	currentExerciseIndex int,
) {
	a.scheduler.Cancel()

	endsAt := time.Now().Add(time.Duration(durationSeconds) * time.Second)

	a.mu.Lock()
	a.session = session
	a.currentExerciseIndex = currentExerciseIndex
	a.mu.Unlock()

	if err := a.restStore.SetRestEndTime(ctx, endsAt); err != nil {
		log.Errorf("start rest: store end time: %s", err)
	}

	a.live.UpdateLiveActivity(ctx, session, liveactivity.UpdateParams{
		IsActive:             true,
		CurrentExerciseIndex: currentExerciseIndex,
		RestEndsAt:           &endsAt,
		StatusMessage:        statusResting,
	})

	a.scheduler.Schedule(endsAt, func() {
		a.endRest(context.Background())
	})
	a.metricsManager.CounterRestScheduled.Inc()
}

// CancelRest disarms the deadline timer, clears the shared store and
// pushes a live update with rest removed and everything else as it
// was. Safe to call with no rest in progress.
func (a *Adapter) CancelRest(ctx context.Context) {
	a.scheduler.Cancel()

	if err := a.restStore.ClearRestEndTime(ctx); err != nil {
		log.Errorf("cancel rest: clear end time: %s", err)
	}

	a.pushRestCleared(ctx)
	a.metricsManager.CounterRestCanceled.Inc()
}

// endRest fires from the deadline timer. It tolerates a cancel racing
// it and a session that is already gone.
func (a *Adapter) endRest(ctx context.Context) {
	a.mu.Lock()
	session := a.session
	a.mu.Unlock()

	if session == nil {
		log.Debugln("rest ended with no active session")
	}

	if err := a.restStore.ClearRestEndTime(ctx); err != nil {
		log.Errorf("end rest: clear end time: %s", err)
	}

	a.pushRestCleared(ctx)
}

// pushRestCleared removes the rest from the widget without touching
// the pause state: a rest skipped or run out while paused stays
// "Paused", not "Working out".
func (a *Adapter) pushRestCleared(ctx context.Context) {
	if a.State() == StatePaused {
		a.live.UpdateRestAndActive(ctx, false, nil, statusPaused)
		return
	}
	a.live.UpdateRestAndActive(ctx, true, nil, statusWorkingOut)
}

// syncRestEndTime reconciles the local deadline timer against the
// shared store, picking up rest adjustments made by the other process
// (the widget's +15s / -15s / skip controls).
func (a *Adapter) syncRestEndTime(ctx context.Context) {
	stored, err := a.restStore.RestEndTime(ctx)
	if err != nil {
		log.Errorf("sync rest end time: %s", err)
		return
	}

	local := a.scheduler.EndsAt()

	switch {
	case stored == nil && local == nil:
		return
	case stored == nil:
		// cleared externally, e.g. widget "skip rest"
		log.Debugln("rest cleared externally, canceling local timer")
		a.scheduler.Cancel()
		a.pushRestCleared(ctx)
		a.metricsManager.CounterRestResynced.Inc()
	case local == nil:
		log.Debugf("rest started externally, ends at %s", stored)
		a.rescheduleRest(ctx, *stored)
	default:
		delta := stored.Sub(*local)
		if delta < 0 {
			delta = -delta
		}
		if delta <= restEndTimeTolerance {
			return
		}
		log.Debugf("rest end time adjusted externally by %s", stored.Sub(*local))
		a.rescheduleRest(ctx, *stored)
	}
}

func (a *Adapter) rescheduleRest(ctx context.Context, endsAt time.Time) {
	a.scheduler.Schedule(endsAt, func() {
		a.endRest(context.Background())
	})
	a.live.UpdateRestAndActive(ctx, true, &endsAt, statusResting)
	a.metricsManager.CounterRestResynced.Inc()
}

func (a *Adapter) onMetrics(m Metrics) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.liveMetrics = m
}

func (a *Adapter) processStateEvent(state State) {
	log.Debugf("workout session event: %s", state)

	switch state {
	case StateRunning:
		a.setState(StateRunning)
	case StatePaused:
		a.setState(StatePaused)
	case StateStopped:
		a.setState(StateStopped)
		a.finalize(context.Background())
	default:
		log.Warnf("unexpected workout session event: %s", state)
	}
}

// finalize runs on the event consumer after the recorder confirmed the
// stop. Whether collection finalized cleanly decides how the live
// activity ends.
func (a *Adapter) finalize(ctx context.Context) {
	summary, err := a.recorder.Finalize(ctx)
	completed := err == nil

	statusMessage := "Workout complete"
	if err != nil {
		log.Errorf("finalize workout collection: %s", err)
		statusMessage = "Workout could not be saved"
	}

	a.mu.Lock()
	session := a.session
	a.summary = summary
	a.mu.Unlock()

	if session != nil {
		a.live.EndLiveActivity(ctx, session, completed, statusMessage)
	}

	a.setState(StateEnded)
	a.metricsManager.GaugeActiveWorkouts.Dec()
}

func (a *Adapter) startRefreshLoop() {
	ctx, cancel := context.WithCancel(context.Background())

	a.mu.Lock()
	if a.refreshCancel != nil {
		a.refreshCancel()
	}
	a.refreshCancel = cancel
	period := a.refreshPeriod
	a.mu.Unlock()

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.refresh(context.Background())
			}
		}
	}()
}

func (a *Adapter) stopRefreshLoop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.refreshCancel != nil {
		a.refreshCancel()
		a.refreshCancel = nil
	}
}

// RefreshLiveActivity swaps in the given session snapshot and pushes
// the derived state out of band, used after session mutations that
// should show up right away. The snapshot must not be mutated by the
// caller afterwards - the refresh goroutine keeps reading it.
func (a *Adapter) RefreshLiveActivity(ctx context.Context, session *workout.Session) {
	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
	a.refresh(ctx)
}

// refresh is the 1 s tick: reconcile the rest timer with the shared
// store, refresh the elapsed time and push a live update. The push is
// cheap - the content diff drops it unless something visible changed.
// Ensure also re-creates the activity if it was cleared by the
// self-healing path, so a dismissed widget comes back on its own.
func (a *Adapter) refresh(ctx context.Context) {
	a.syncRestEndTime(ctx)

	a.mu.Lock()
	session := a.session
	currentExerciseIndex := a.currentExerciseIndex
	state := a.state
	// the recorder's elapsed excludes pause gaps, wall clock does not
	elapsed := a.liveMetrics.Elapsed
	a.mu.Unlock()

	if session == nil {
		return
	}

	restEndsAt := a.scheduler.EndsAt()

	statusMessage := statusWorkingOut
	switch {
	case state == StatePaused:
		statusMessage = statusPaused
	case restEndsAt != nil:
		statusMessage = statusResting
	}

	a.live.EnsureLiveActivity(ctx, session, liveactivity.UpdateParams{
		IsActive:             state == StateRunning,
		CurrentExerciseIndex: currentExerciseIndex,
		RestEndsAt:           restEndsAt,
		StatusMessage:        statusMessage,
		ElapsedTime:          elapsed,
	})
}
