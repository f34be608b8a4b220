package liveactivity

import (
	"time"

	"github.com/2beens/liveworkout/internal/workout"
)

// ActivityAttributes are fixed at activity creation and never change
// for the lifetime of the widget.
type ActivityAttributes struct {
	SessionID   string    `json:"sessionId"`
	WorkoutName string    `json:"workoutName"`
	StartedAt   time.Time `json:"startedAt"`
	TemplateID  string    `json:"templateId,omitempty"`
}

// TargetSetState is the "what should the user do next" display block.
type TargetSetState struct {
	Index          int      `json:"index"`
	WeightKg       *float64 `json:"weightKg,omitempty"`
	Reps           *int     `json:"reps,omitempty"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
	DurationSec    *int     `json:"durationSec,omitempty"`
}

// ContentState is the full mutable widget payload. It is recomputed
// from the session snapshot on every push and never read back.
type ContentState struct {
	IsActive bool `json:"isActive"`

	CompletedSetsCount int `json:"completedSetsCount"`
	TotalSetsCount     int `json:"totalSetsCount"`

	CurrentExerciseIndex         int    `json:"currentExerciseIndex"`
	CurrentExerciseName          string `json:"currentExerciseName,omitempty"`
	CurrentExerciseImage         string `json:"currentExerciseImage,omitempty"`
	CurrentExerciseCompletedSets int    `json:"currentExerciseCompletedSets"`
	CurrentExerciseTotalSets     int    `json:"currentExerciseTotalSets"`
	TotalExercisesCount          int    `json:"totalExercisesCount"`

	TargetSet *TargetSetState `json:"targetSet,omitempty"`

	RestEndsAt    *time.Time `json:"restEndsAt,omitempty"`
	StatusMessage string     `json:"statusMessage,omitempty"`

	TotalVolumeKg   float64 `json:"totalVolumeKg"`
	Progress        float64 `json:"progress"`
	ElapsedSeconds  int     `json:"elapsedSeconds"`
	AllSetsComplete bool    `json:"allSetsComplete"`

	// bookkeeping for widget-initiated intents
	ProcessingIntent bool       `json:"processingIntent"`
	LastIntentAt     *time.Time `json:"lastIntentAt,omitempty"`

	// terminal sub-state, populated by EndLiveActivity only
	IsEnded             bool    `json:"isEnded"`
	IsCompleted         bool    `json:"isCompleted"`
	FinalDurationSec    int     `json:"finalDurationSec,omitempty"`
	FinalVolumeKg       float64 `json:"finalVolumeKg,omitempty"`
	FinalCompletedSets  int     `json:"finalCompletedSets,omitempty"`
	FinalExercisesCount int     `json:"finalExercisesCount,omitempty"`
}

type DeriveParams struct {
	IsActive             bool
	CurrentExerciseIndex int
	RestEndsAt           *time.Time
	StatusMessage        string
	ElapsedTime          time.Duration
}

// TotalVolumeKg sums weight x reps over all sets carrying both fields.
// Sets missing either field contribute nothing - they are excluded,
// not counted as zero.
func TotalVolumeKg(session *workout.Session) float64 {
	var volume float64
	for i := range session.Exercises {
		for _, set := range session.Exercises[i].Sets {
			if set.WeightKg == nil || set.Reps == nil {
				continue
			}
			volume += *set.WeightKg * float64(*set.Reps)
		}
	}
	return volume
}

// Progress returns completed/total sets, 0 for an empty session.
func Progress(session *workout.Session) float64 {
	total := session.TotalSetsCount()
	if total == 0 {
		return 0
	}
	return float64(session.CompletedSetsCount()) / float64(total)
}

// DeriveContentState recomputes the full widget payload from the
// session snapshot. Pure and read-only over the session.
func DeriveContentState(session *workout.Session, params DeriveParams) ContentState {
	completedSets := session.CompletedSetsCount()
	totalSets := session.TotalSetsCount()

	state := ContentState{
		IsActive:             params.IsActive,
		CompletedSetsCount:   completedSets,
		TotalSetsCount:       totalSets,
		CurrentExerciseIndex: params.CurrentExerciseIndex,
		TotalExercisesCount:  len(session.Exercises),
		RestEndsAt:           params.RestEndsAt,
		StatusMessage:        params.StatusMessage,
		TotalVolumeKg:        TotalVolumeKg(session),
		Progress:             Progress(session),
		ElapsedSeconds:       int(params.ElapsedTime.Seconds()),
		AllSetsComplete:      totalSets > 0 && completedSets == totalSets,
	}

	// current exercise resolved by index, nil-safe when the workout
	// just finished and the index ran past the list
	if exercise := session.Exercise(params.CurrentExerciseIndex); exercise != nil {
		state.CurrentExerciseName = exercise.Name
		state.CurrentExerciseImage = exercise.ImageName
		state.CurrentExerciseCompletedSets = exercise.CompletedSetsCount()
		state.CurrentExerciseTotalSets = len(exercise.Sets)

		if target := exercise.TargetSet(); target != nil {
			state.TargetSet = &TargetSetState{
				Index:          target.Index,
				WeightKg:       target.WeightKg,
				Reps:           target.Reps,
				DistanceMeters: target.DistanceMeters,
				DurationSec:    target.DurationSec,
			}
		}
	}

	return state
}

// DeriveEndState computes the terminal content state. Summary metrics
// are carried only for a completed workout, not for a discarded one.
func DeriveEndState(session *workout.Session, isCompleted bool, statusMessage string, now time.Time) ContentState {
	state := ContentState{
		IsActive:      false,
		IsEnded:       true,
		IsCompleted:   isCompleted,
		StatusMessage: statusMessage,
	}

	if isCompleted {
		state.FinalDurationSec = int(session.Duration(now).Seconds())
		state.FinalVolumeKg = TotalVolumeKg(session)
		state.FinalCompletedSets = session.CompletedSetsCount()
		state.FinalExercisesCount = len(session.Exercises)
	}

	return state
}
