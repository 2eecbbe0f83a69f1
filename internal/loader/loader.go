package loader

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-dashboard/internal/concurrency"
	"course-dashboard/internal/domain"
)

// ErrLoadFailed marks any error that aborted a snapshot load.
var ErrLoadFailed = errors.New("dashboard data could not be loaded")

// Source lists the five collections. recordapi.Client implements it.
type Source interface {
	ListInstructors(ctx context.Context) ([]domain.Instructor, error)
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	ListRegistrations(ctx context.Context) ([]domain.Registration, error)
}

type Loader struct {
	Source Source
	Log    *zap.Logger
	// Timeout bounds the whole load; zero means no extra deadline.
	Timeout time.Duration
}

func New(src Source, log *zap.Logger, timeout time.Duration) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{Source: src, Log: log, Timeout: timeout}
}

type fetch struct {
	collection string
	run        func(ctx context.Context) (int, error)
}

// Load fetches all five collections concurrently. It returns either a
// complete snapshot or an error marked with ErrLoadFailed, never a partial
// snapshot.
func (l *Loader) Load(ctx context.Context) (domain.Snapshot, error) {
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("load_id", uuid.NewString()))

	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	var snap domain.Snapshot
	fetches := []fetch{
		{"instructors", func(ctx context.Context) (int, error) {
			out, err := l.Source.ListInstructors(ctx)
			snap.Instructors = out
			return len(out), err
		}},
		{"participants", func(ctx context.Context) (int, error) {
			out, err := l.Source.ListParticipants(ctx)
			snap.Participants = out
			return len(out), err
		}},
		{"rooms", func(ctx context.Context) (int, error) {
			out, err := l.Source.ListRooms(ctx)
			snap.Rooms = out
			return len(out), err
		}},
		{"courses", func(ctx context.Context) (int, error) {
			out, err := l.Source.ListCourses(ctx)
			snap.Courses = out
			return len(out), err
		}},
		{"registrations", func(ctx context.Context) (int, error) {
			out, err := l.Source.ListRegistrations(ctx)
			snap.Registrations = out
			return len(out), err
		}},
	}
	done := make([]bool, len(fetches))

	start := time.Now()
	errs := concurrency.ForEach(ctx, fetches, concurrency.ParallelOptions{MaxWorkers: len(fetches)},
		func(ctx context.Context, i int, f fetch) error {
			began := time.Now()
			n, err := f.run(ctx)
			if err != nil {
				log.Warn("collection load failed",
					zap.String("collection", f.collection),
					zap.Duration("duration", time.Since(began)),
					zap.Error(err))
				return errors.Wrapf(err, "load %s", f.collection)
			}
			done[i] = true
			log.Debug("collection loaded",
				zap.String("collection", f.collection),
				zap.Int("count", n),
				zap.Duration("duration", time.Since(began)))
			return nil
		})

	if len(errs) > 0 {
		err := errors.Mark(errs[0], ErrLoadFailed)
		log.Error("dashboard load failed", zap.Int("failed", len(errs)), zap.Error(err))
		return domain.Snapshot{}, err
	}
	for i, ok := range done {
		if !ok {
			cause := ctx.Err()
			if cause == nil {
				cause = errors.New("not fetched")
			}
			err := errors.Mark(errors.Wrapf(cause, "load %s", fetches[i].collection), ErrLoadFailed)
			log.Error("dashboard load incomplete", zap.Error(err))
			return domain.Snapshot{}, err
		}
	}

	log.Info("dashboard loaded",
		zap.Int("instructors", len(snap.Instructors)),
		zap.Int("participants", len(snap.Participants)),
		zap.Int("rooms", len(snap.Rooms)),
		zap.Int("courses", len(snap.Courses)),
		zap.Int("registrations", len(snap.Registrations)),
		zap.Duration("duration", time.Since(start)))
	return snap, nil
}
