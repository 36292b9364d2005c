package recorder

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/field-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/field-tracker/internal/pkg/observable"
)

// Recorder holds the last known position and the track of the current
// session. It is not safe for concurrent mutation; the tracking service owns
// it from a single goroutine. Readers on other goroutines go through the
// observable values, which are replaced wholesale on every change.
type Recorder struct {
	logger *zap.Logger
	now    func() time.Time

	session   *observable.Value[entity.Session]
	position  *observable.Value[valueobject.Coordinate]
	recording *observable.Value[bool]
	track     *observable.Value[[]valueobject.Coordinate]
}

func NewRecorder(logger *zap.Logger, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{
		logger:    logger,
		now:       now,
		session:   observable.New(entity.Session{}),
		position:  observable.New(valueobject.EmptyCoordinate()),
		recording: observable.New(false),
		track:     observable.New([]valueobject.Coordinate{}),
	}
}

func (r *Recorder) CurrentPosition() valueobject.Coordinate {
	return r.position.Get()
}

func (r *Recorder) IsRecording() bool {
	return r.recording.Get()
}

func (r *Recorder) Track() []valueobject.Coordinate {
	return slices.Clone(r.track.Get())
}

// Session returns the current or most recent session.
func (r *Recorder) Session() (entity.Session, bool) {
	s := r.session.Get()
	return s, s.ID != uuid.Nil
}

func (r *Recorder) Positions() *observable.Value[valueobject.Coordinate] {
	return r.position
}

func (r *Recorder) Recording() *observable.Value[bool] {
	return r.recording
}

func (r *Recorder) Tracks() *observable.Value[[]valueobject.Coordinate] {
	return r.track
}

// StartSession opens a new recording session. The new track is seeded with
// the current position when that position is valid. Returns false when a
// session is already recording.
func (r *Recorder) StartSession() bool {
	if r.recording.Get() {
		return false
	}

	session := entity.NewSession(r.now())
	r.session.Set(*session)

	seed := []valueobject.Coordinate{}
	if cur := r.position.Get(); cur.Valid() {
		seed = append(seed, cur)
	}
	r.track.Set(seed)
	r.recording.Set(true)

	r.logger.Info("session started",
		zap.String("session_id", session.ID.String()),
		zap.Int64("started_at", session.StartedAt),
		zap.Int("seed_points", len(seed)),
	)
	return true
}

// StopSession closes the recording session and keeps its track.
func (r *Recorder) StopSession() bool {
	if !r.recording.Get() {
		return false
	}

	session := r.session.Get()
	session.Stop(r.now())
	r.session.Set(session)
	r.recording.Set(false)

	r.logger.Info("session stopped",
		zap.String("session_id", session.ID.String()),
		zap.Int("points", len(r.track.Get())),
	)
	return true
}

// Ingest offers a normalized coordinate. Invalid, duplicate and stale
// coordinates are dropped. An accepted coordinate becomes the current
// position and is appended to the track while recording.
func (r *Recorder) Ingest(c valueobject.Coordinate) bool {
	if !c.Valid() {
		r.logger.Debug("dropping sample without latitude", zap.Int64("time", c.Time))
		return false
	}

	last := r.position.Get()
	if c.Equal(last) {
		return false
	}
	if c.Time < last.Time {
		r.logger.Debug("dropping stale sample",
			zap.Int64("time", c.Time),
			zap.Int64("last_time", last.Time),
		)
		return false
	}

	if r.recording.Get() {
		cur := r.track.Get()
		next := make([]valueobject.Coordinate, 0, len(cur)+1)
		next = append(next, cur...)
		next = append(next, c)
		r.track.Set(next)
	}
	r.position.Set(c)
	return true
}

// ReconcileBacklog folds samples buffered by the background service into the
// track. Only samples newer than the last track point, or the session start
// when the track is empty, are ingested, oldest first. Returns the number of
// points appended to the track.
func (r *Recorder) ReconcileBacklog(samples []valueobject.RawSample) int {
	if len(samples) == 0 {
		return 0
	}

	mark := r.lowWaterMark()

	fresh := make([]valueobject.Coordinate, 0, len(samples))
	for _, s := range samples {
		c := valueobject.Normalize(s)
		if c.Time > mark {
			fresh = append(fresh, c)
		}
	}
	slices.SortStableFunc(fresh, func(a, b valueobject.Coordinate) int {
		return cmp.Compare(a.Time, b.Time)
	})

	before := len(r.track.Get())
	for _, c := range fresh {
		r.Ingest(c)
	}
	appended := len(r.track.Get()) - before

	r.logger.Info("backlog reconciled",
		zap.Int("received", len(samples)),
		zap.Int("newer", len(fresh)),
		zap.Int("appended", appended),
		zap.Int64("low_water_mark", mark),
	)
	return appended
}

func (r *Recorder) lowWaterMark() int64 {
	if track := r.track.Get(); len(track) > 0 {
		return track[len(track)-1].Time
	}
	return r.session.Get().StartedAt
}
