package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liveworkout/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("workout session not found")

type ListParams struct {
	AuthorID string
	From     *time.Time
	To       *time.Time
	Page     int
	Size     int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", session.ID))

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_session
				(id, author_id, name, created_at, ended_at, exercises, notes, scheduled_workout_id, template_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		session.ID, session.AuthorID, session.Name, session.CreatedAt, session.EndedAt,
		exercisesJson, session.Notes, session.ScheduledWorkoutID, session.TemplateID,
	)
	if err != nil {
		return fmt.Errorf("insert workout session: %w", err)
	}

	return nil
}

func (r *Repo) Update(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", session.ID))

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session
			SET name = $1, ended_at = $2, exercises = $3, notes = $4
			WHERE id = $5;`,
		session.Name, session.EndedAt, exercisesJson, session.Notes, session.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, author_id, name, created_at, ended_at, exercises, notes, scheduled_workout_id, template_id
			FROM workout_session
			WHERE id = $1;`,
		id,
	)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return session, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	whereClause := " WHERE author_id = $1"
	args := []interface{}{params.AuthorID}
	if params.From != nil {
		args = append(args, *params.From)
		whereClause += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if params.To != nil {
		args = append(args, *params.To)
		whereClause += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	if err := r.db.
		QueryRow(ctx, "SELECT COUNT(*) FROM workout_session"+whereClause+";", args...).
		Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count workout sessions: %w", err)
	}

	limit := params.Size
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if params.Page > 1 {
		offset = (params.Page - 1) * limit
	}
	args = append(args, limit, offset)

	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf(
			`SELECT id, author_id, name, created_at, ended_at, exercises, notes, scheduled_workout_id, template_id
				FROM workout_session
				%s
				ORDER BY created_at DESC
				LIMIT $%d OFFSET $%d;`,
			whereClause, len(args)-1, len(args),
		),
		args...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list workout sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))

	return sessions, total, nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var session Session
	var exercisesJson []byte
	if err := row.Scan(
		&session.ID,
		&session.AuthorID,
		&session.Name,
		&session.CreatedAt,
		&session.EndedAt,
		&exercisesJson,
		&session.Notes,
		&session.ScheduledWorkoutID,
		&session.TemplateID,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(exercisesJson, &session.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	return &session, nil
}
