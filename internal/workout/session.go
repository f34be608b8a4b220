package workout

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSessionFinished  = errors.New("workout session already finished")
	ErrSetCompleted     = errors.New("set already completed")
	ErrSetNotFound      = errors.New("set not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// TrackingMode selects which set fields are meaningful for an exercise:
//   - weight_reps:   weight + reps
//   - reps_only:     reps
//   - time_only:     duration
//   - distance_time: distance + duration
type TrackingMode string

const (
	TrackingWeightReps   TrackingMode = "weight_reps"
	TrackingRepsOnly     TrackingMode = "reps_only"
	TrackingTimeOnly     TrackingMode = "time_only"
	TrackingDistanceTime TrackingMode = "distance_time"
)

func (tm TrackingMode) String() string {
	return string(tm)
}

func (tm TrackingMode) IsValid() bool {
	switch tm {
	case TrackingWeightReps, TrackingRepsOnly, TrackingTimeOnly, TrackingDistanceTime:
		return true
	default:
		return false
	}
}

// Set is one set of an exercise. Fields irrelevant to the exercise
// tracking mode are simply ignored. A non-nil CompletedAt marks the
// set complete and is immutable afterwards - it is the rest trigger.
type Set struct {
	Index          int        `json:"index"` // 1-based, contiguous
	Reps           *int       `json:"reps,omitempty"`
	WeightKg       *float64   `json:"weightKg,omitempty"`
	DurationSec    *int       `json:"durationSec,omitempty"`
	DistanceMeters *float64   `json:"distanceMeters,omitempty"`
	RPE            *int       `json:"rpe,omitempty"`
	Warmup         bool       `json:"warmup"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

func (s *Set) Completed() bool {
	return s.CompletedAt != nil
}

type Exercise struct {
	TemplateID string       `json:"templateId"`
	Name       string       `json:"name"`
	Mode       TrackingMode `json:"mode"`
	Sets       []Set        `json:"sets"`
	// ImageName is the bundled image shown by the live activity widget.
	ImageName string `json:"imageName,omitempty"`
}

func (e *Exercise) CompletedSetsCount() int {
	count := 0
	for i := range e.Sets {
		if e.Sets[i].Completed() {
			count++
		}
	}
	return count
}

// TargetSet returns the first incomplete set - "what should the user
// do next" - or nil when all sets are done.
func (e *Exercise) TargetSet() *Set {
	for i := range e.Sets {
		if !e.Sets[i].Completed() {
			return &e.Sets[i]
		}
	}
	return nil
}

// Session is the canonical mutable aggregate for one in-progress or
// completed workout. Owned exclusively by the tracker while active.
type Session struct {
	ID        string     `json:"id"`
	AuthorID  string     `json:"authorId"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	Exercises []Exercise `json:"exercises"`
	Notes     string     `json:"notes,omitempty"`
	// optional links back to the plan
	ScheduledWorkoutID string `json:"scheduledWorkoutId,omitempty"`
	TemplateID         string `json:"templateId,omitempty"`
}

func (s *Session) Ended() bool {
	return s.EndedAt != nil
}

func (s *Session) TotalSetsCount() int {
	count := 0
	for i := range s.Exercises {
		count += len(s.Exercises[i].Sets)
	}
	return count
}

func (s *Session) CompletedSetsCount() int {
	count := 0
	for i := range s.Exercises {
		count += s.Exercises[i].CompletedSetsCount()
	}
	return count
}

func (s *Session) Exercise(index int) *Exercise {
	if index < 0 || index >= len(s.Exercises) {
		return nil
	}
	return &s.Exercises[index]
}

// CompleteSet flips the completion timestamp of the given set from nil
// to non-nil. A completed set stays completed.
func (s *Session) CompleteSet(exerciseIndex, setIndex int, at time.Time) (*Set, error) {
	if s.Ended() {
		return nil, ErrSessionFinished
	}
	exercise := s.Exercise(exerciseIndex)
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}
	for i := range exercise.Sets {
		if exercise.Sets[i].Index != setIndex {
			continue
		}
		if exercise.Sets[i].Completed() {
			return nil, ErrSetCompleted
		}
		exercise.Sets[i].CompletedAt = &at
		return &exercise.Sets[i], nil
	}
	return nil, ErrSetNotFound
}

// AddSet appends the set to the exercise, assigning the next index.
func (s *Session) AddSet(exerciseIndex int, set Set) (*Set, error) {
	if s.Ended() {
		return nil, ErrSessionFinished
	}
	exercise := s.Exercise(exerciseIndex)
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}
	set.Index = len(exercise.Sets) + 1
	set.CompletedAt = nil
	exercise.Sets = append(exercise.Sets, set)
	return &exercise.Sets[len(exercise.Sets)-1], nil
}

// DeleteSet removes the set and renumbers the remaining ones so that
// indices stay 1-based and contiguous.
func (s *Session) DeleteSet(exerciseIndex, setIndex int) error {
	if s.Ended() {
		return ErrSessionFinished
	}
	exercise := s.Exercise(exerciseIndex)
	if exercise == nil {
		return ErrExerciseNotFound
	}
	for i := range exercise.Sets {
		if exercise.Sets[i].Index != setIndex {
			continue
		}
		exercise.Sets = append(exercise.Sets[:i], exercise.Sets[i+1:]...)
		for j := range exercise.Sets {
			exercise.Sets[j].Index = j + 1
		}
		return nil
	}
	return ErrSetNotFound
}

// Finish sets the end timestamp. It is set at most once and never un-set.
func (s *Session) Finish(at time.Time) error {
	if s.Ended() {
		return ErrSessionFinished
	}
	s.EndedAt = &at
	return nil
}

// Clone returns a deep copy, safe to hand out while the original
// keeps being mutated.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Exercises = make([]Exercise, len(s.Exercises))
	for i := range s.Exercises {
		exercise := s.Exercises[i]
		exercise.Sets = append([]Set(nil), s.Exercises[i].Sets...)
		clone.Exercises[i] = exercise
	}
	return &clone
}

func (s *Session) Duration(now time.Time) time.Duration {
	if s.EndedAt != nil {
		return s.EndedAt.Sub(s.CreatedAt)
	}
	return now.Sub(s.CreatedAt)
}

func (s *Session) String() string {
	return fmt.Sprintf(
		"session[%s: %q, %d/%d sets]",
		s.ID, s.Name, s.CompletedSetsCount(), s.TotalSetsCount(),
	)
}
