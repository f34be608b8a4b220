package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liveworkout/internal/healthsession"
	"github.com/2beens/liveworkout/internal/telemetry/tracing"
	"github.com/2beens/liveworkout/internal/workout"
	"github.com/2beens/liveworkout/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	snapshotCacheKey    = "workout:current"
	snapshotCacheExpire = 2 // seconds

	maxRestAdjustSeconds = 300
)

type sampleIngestor interface {
	AddSample(ctx context.Context, sample healthsession.Sample) error
	Metrics() healthsession.Metrics
}

type SnapshotResponse struct {
	Session              *workout.Session `json:"session"`
	CurrentExerciseIndex int              `json:"currentExerciseIndex"`
}

type ListSessionsResponse struct {
	Sessions []workout.Session `json:"sessions"`
	Total    int               `json:"total"`
}

type CompleteSetRequest struct {
	ExerciseIndex int `json:"exerciseIndex"`
	SetIndex      int `json:"setIndex"`
}

type AddSetRequest struct {
	ExerciseIndex int         `json:"exerciseIndex"`
	Set           workout.Set `json:"set"`
}

type AdjustRestRequest struct {
	DeltaSeconds int `json:"deltaSeconds"`
}

type Handler struct {
	tracker *Tracker
	repo    sessionRepo
	samples sampleIngestor
	cache   *freecache.Cache
}

func NewHandler(tracker *Tracker, repo sessionRepo, samples sampleIngestor) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		tracker: tracker,
		repo:    repo,
		samples: samples,
		cache:   freecache.NewCache(megabyte),
	}
}

func (handler *Handler) HandleStartWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.start")
	defer span.End()

	var params StartParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("start workout, unmarshal json params: %s", err)
		http.Error(w, "invalid start workout params", http.StatusBadRequest)
		return
	}

	if params.Name == "" || len(params.Exercises) == 0 {
		http.Error(w, "error, workout name or exercises empty", http.StatusBadRequest)
		return
	}
	for _, exercise := range params.Exercises {
		if !exercise.Mode.IsValid() {
			http.Error(w, fmt.Sprintf("invalid tracking mode %q", exercise.Mode), http.StatusBadRequest)
			return
		}
	}

	session, err := handler.tracker.StartWorkout(ctx, params)
	if err != nil {
		if errors.Is(err, ErrWorkoutInProgress) {
			http.Error(w, "another workout is in progress", http.StatusConflict)
			return
		}
		log.Errorf("start workout: %s", err)
		http.Error(w, "failed to start workout", http.StatusInternalServerError)
		return
	}

	handler.invalidateSnapshot()
	handler.writeJSON(w, session)
}

func (handler *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.current")
	defer span.End()

	if cached, err := handler.cache.Get([]byte(snapshotCacheKey)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	session := handler.tracker.Current()
	if session == nil {
		http.Error(w, "no active workout", http.StatusNotFound)
		return
	}

	snapshotJson, err := json.Marshal(SnapshotResponse{
		Session:              session,
		CurrentExerciseIndex: handler.tracker.CurrentExerciseIndex(),
	})
	if err != nil {
		log.Errorf("marshal workout snapshot: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(snapshotCacheKey), snapshotJson, snapshotCacheExpire); err != nil {
		log.Warnf("cache workout snapshot: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, snapshotJson)
}

func (handler *Handler) HandleCompleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.completeSet")
	defer span.End()

	var req CompleteSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid complete set params", http.StatusBadRequest)
		return
	}

	completedSet, err := handler.tracker.CompleteSet(ctx, req.ExerciseIndex, req.SetIndex)
	if err != nil {
		handler.writeSessionError(w, "complete set", err)
		return
	}

	handler.invalidateSnapshot()
	handler.writeJSON(w, completedSet)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addSet")
	defer span.End()

	var req AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid add set params", http.StatusBadRequest)
		return
	}

	addedSet, err := handler.tracker.AddSet(ctx, req.ExerciseIndex, req.Set)
	if err != nil {
		handler.writeSessionError(w, "add set", err)
		return
	}

	handler.invalidateSnapshot()
	handler.writeJSON(w, addedSet)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.deleteSet")
	defer span.End()

	vars := mux.Vars(r)
	exerciseIndex, err := strconv.Atoi(vars["exerciseIndex"])
	if err != nil {
		http.Error(w, "invalid exercise index", http.StatusBadRequest)
		return
	}
	setIndex, err := strconv.Atoi(vars["setIndex"])
	if err != nil {
		http.Error(w, "invalid set index", http.StatusBadRequest)
		return
	}

	if err := handler.tracker.DeleteSet(ctx, exerciseIndex, setIndex); err != nil {
		handler.writeSessionError(w, "delete set", err)
		return
	}

	handler.invalidateSnapshot()
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"deletedSetIndex":%d}`, setIndex))
}

func (handler *Handler) HandleTogglePause(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.togglePause")
	defer span.End()

	if err := handler.tracker.TogglePause(ctx); err != nil {
		handler.writeSessionError(w, "toggle pause", err)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"toggled":true}`)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.finish")
	defer span.End()

	session, err := handler.tracker.Finish(ctx)
	if err != nil {
		handler.writeSessionError(w, "finish workout", err)
		return
	}

	handler.invalidateSnapshot()
	handler.writeJSON(w, session)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.cancel")
	defer span.End()

	if err := handler.tracker.Cancel(ctx); err != nil {
		handler.writeSessionError(w, "cancel workout", err)
		return
	}

	handler.invalidateSnapshot()
	pkg.WriteJSONResponseOK(w, `{"canceled":true}`)
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.listSessions")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}

	sessions, total, err := handler.repo.List(ctx, workout.ListParams{
		AuthorID: r.URL.Query().Get("authorId"),
		Page:     page,
		Size:     size,
	})
	if err != nil {
		log.Errorf("list workout sessions: %s", err)
		http.Error(w, "failed to list workout sessions", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, ListSessionsResponse{
		Sessions: sessions,
		Total:    total,
	})
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.getSession")
	defer span.End()

	session, err := handler.repo.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, workout.ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout session: %s", err)
		http.Error(w, "failed to get workout session", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, session)
}

// HandleAdjustRest is the widget "+15s / -15s" intent.
func (handler *Handler) HandleAdjustRest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.intents.adjustRest")
	defer span.End()

	var req AdjustRestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid adjust rest params", http.StatusBadRequest)
		return
	}
	if req.DeltaSeconds == 0 || req.DeltaSeconds > maxRestAdjustSeconds || req.DeltaSeconds < -maxRestAdjustSeconds {
		http.Error(w, "invalid rest delta", http.StatusBadRequest)
		return
	}

	err := handler.tracker.AdjustRest(ctx, time.Duration(req.DeltaSeconds)*time.Second)
	if err != nil {
		if errors.Is(err, ErrNoActiveRest) {
			http.Error(w, "no rest in progress", http.StatusNotFound)
			return
		}
		log.Errorf("adjust rest: %s", err)
		http.Error(w, "failed to adjust rest", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"adjusted":true}`)
}

// HandleSkipRest is the widget "skip rest" intent.
func (handler *Handler) HandleSkipRest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.intents.skipRest")
	defer span.End()

	if err := handler.tracker.SkipRest(ctx); err != nil {
		handler.writeSessionError(w, "skip rest", err)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"skipped":true}`)
}

// HandleCompleteTargetSet is the widget "complete set" intent: it
// completes whatever set the live activity currently shows as the
// target.
func (handler *Handler) HandleCompleteTargetSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.intents.completeSet")
	defer span.End()

	completedSet, err := handler.tracker.CompleteTargetSet(ctx)
	if err != nil {
		if errors.Is(err, ErrNoTargetSet) {
			http.Error(w, "no incomplete set to complete", http.StatusConflict)
			return
		}
		handler.writeSessionError(w, "complete target set", err)
		return
	}

	handler.invalidateSnapshot()
	handler.writeJSON(w, completedSet)
}

func (handler *Handler) HandleAddSample(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addSample")
	defer span.End()

	var sample healthsession.Sample
	if err := json.NewDecoder(r.Body).Decode(&sample); err != nil {
		http.Error(w, "invalid sample", http.StatusBadRequest)
		return
	}
	if sample.At.IsZero() {
		sample.At = time.Now()
	}

	if err := handler.samples.AddSample(ctx, sample); err != nil {
		switch {
		case errors.Is(err, healthsession.ErrInvalidSample):
			http.Error(w, "invalid sample", http.StatusBadRequest)
		case errors.Is(err, healthsession.ErrNotCollecting):
			http.Error(w, "workout is not collecting", http.StatusConflict)
		default:
			log.Errorf("add sample: %s", err)
			http.Error(w, "failed to add sample", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSONResponseOK(w, `{"added":true}`)
}

func (handler *Handler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.metrics")
	defer span.End()

	handler.writeJSON(w, handler.samples.Metrics())
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload interface{}) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, payloadJson)
}

func (handler *Handler) writeSessionError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, ErrNoActiveWorkout):
		http.Error(w, "no active workout", http.StatusNotFound)
	case errors.Is(err, workout.ErrSessionFinished):
		http.Error(w, "workout session already finished", http.StatusConflict)
	case errors.Is(err, workout.ErrSetCompleted):
		http.Error(w, "set already completed", http.StatusConflict)
	case errors.Is(err, workout.ErrSetNotFound):
		http.Error(w, "set not found", http.StatusNotFound)
	case errors.Is(err, workout.ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, fmt.Sprintf("failed to %s", action), http.StatusInternalServerError)
	}
}

func (handler *Handler) invalidateSnapshot() {
	handler.cache.Del([]byte(snapshotCacheKey))
}
