// ABOUTME: Sync controller holding the in-memory view of fitness data.
// ABOUTME: Refreshes the snapshot from the store on change events, debounced.
package sync

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/notify"
	"github.com/harperreed/fittrack/internal/stats"
	"github.com/harperreed/fittrack/internal/store"
)

// defaultDebounce is how long the controller waits after a change
// event before refetching, so a burst of writes costs one read.
const defaultDebounce = 250 * time.Millisecond

// Controller owns one user's synchronized view of their fitness data.
// All reads come from an in-memory snapshot; every successful write
// publishes a change trigger and the snapshot is rebuilt by a full
// refetch. Derived statistics are recomputed on every refresh, never
// patched incrementally.
type Controller struct {
	store     store.Store
	notifier  notify.Notifier
	logger    *zap.Logger
	userID    string
	now       func() time.Time
	debounce  time.Duration
	onRefresh func()

	mu      stdsync.RWMutex
	snap    store.Snapshot
	stats   models.UserStats
	loading bool
	lastErr error

	// kicks carries refresh requests from local mutations into the
	// same debounced path that change events use.
	kicks     chan struct{}
	cancelSub func()
	done      chan struct{}
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source used for derived statistics.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithDebounce overrides the event batching window.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

// WithOnRefresh registers a callback invoked after every successful
// refresh. The watch command uses it to re-render.
func WithOnRefresh(fn func()) Option {
	return func(c *Controller) { c.onRefresh = fn }
}

// New builds a controller over the given backend and notifier. The
// userID scopes change channels; guest mode passes an empty id with a
// no-op notifier.
func New(s store.Store, n notify.Notifier, userID string, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		store:    s,
		notifier: n,
		logger:   logger,
		userID:   userID,
		now:      time.Now,
		debounce: defaultDebounce,
		kicks:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh refetches the full snapshot and recomputes derived stats.
// On failure the previous snapshot is kept and the error is recorded;
// callers can keep rendering stale data.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	snap, err := c.store.FetchAll(ctx)
	if err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		c.logger.Warn("refresh failed", zap.Error(err))
		return fmt.Errorf("refresh: %w", err)
	}

	c.mu.Lock()
	c.snap = *snap
	c.stats = stats.Compute(snap.Workouts, snap.Profile, snap.Records, c.now())
	c.lastErr = nil
	c.mu.Unlock()

	c.logger.Debug("refreshed",
		zap.Int("workouts", len(snap.Workouts)),
		zap.Int("records", len(snap.Records)))
	if c.onRefresh != nil {
		c.onRefresh()
	}
	return nil
}

// Start performs an initial refresh, subscribes to change events, and
// launches the debounced refetch loop. Call Stop to tear it down.
func (c *Controller) Start(ctx context.Context) error {
	events, cancel, err := c.notifier.Subscribe(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	c.cancelSub = cancel
	c.done = make(chan struct{})

	if err := c.Refresh(ctx); err != nil {
		// Stale-but-running beats dead: the loop still starts and the
		// next change event retries the fetch.
		c.logger.Warn("initial refresh failed", zap.Error(err))
	}

	go c.loop(ctx, events)
	return nil
}

// Stop cancels the subscription and waits for the refetch loop to
// exit. Safe to call when Start was never called.
func (c *Controller) Stop() {
	if c.cancelSub != nil {
		c.cancelSub()
		c.cancelSub = nil
	}
	if c.done != nil {
		<-c.done
		c.done = nil
	}
}

// loop batches change events and local kicks into debounced refreshes.
func (c *Controller) loop(ctx context.Context, events <-chan notify.Event) {
	defer close(c.done)

	var timer *time.Timer
	var fire <-chan time.Time
	arm := func() {
		if timer == nil {
			timer = time.NewTimer(c.debounce)
			fire = timer.C
		}
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				return
			}
			c.logger.Debug("change event", zap.String("table", ev.Table))
			arm()
		case <-c.kicks:
			arm()
		case <-fire:
			timer = nil
			fire = nil
			_ = c.Refresh(ctx)
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// kick schedules a debounced refresh without a pub/sub round trip.
// Guest mode has no notifier to echo publishes back, so mutations
// kick directly; in authenticated mode the duplicate trigger folds
// into the same batching window.
func (c *Controller) kick() {
	select {
	case c.kicks <- struct{}{}:
	default:
	}
}

// AddWorkout validates and persists a workout. A zero calorie count is
// filled from the duration-based estimate before the write.
func (c *Controller) AddWorkout(ctx context.Context, w models.Workout) (*models.Workout, error) {
	if w.Calories == 0 {
		w.Calories = models.EstimateCalories(w.Duration)
	}
	if w.Date == "" {
		w.Date = c.now().Format(models.DateLayout)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	stored, err := c.store.AddWorkout(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	c.publish(ctx, notify.TableWorkouts)
	if len(stored.Exercises) > 0 {
		c.publish(ctx, notify.TableExercises)
	}
	c.kick()
	return stored, nil
}

// DeleteWorkout removes a workout. A missing id is treated as already
// deleted, so concurrent deletes converge instead of erroring.
func (c *Controller) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	if err := c.store.DeleteWorkout(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.logger.Debug("delete of missing workout", zap.String("id", id.String()))
			return nil
		}
		return fmt.Errorf("delete workout: %w", err)
	}

	c.publish(ctx, notify.TableWorkouts)
	c.publish(ctx, notify.TableExercises)
	c.kick()
	return nil
}

// UpdateProfile upserts the user's profile and schedules a refresh so
// goal-dependent stats pick up the change.
func (c *Controller) UpdateProfile(ctx context.Context, p models.UserProfile) error {
	if err := c.store.UpdateProfile(ctx, p); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	c.kick()
	return nil
}

// AddMeasurement appends a body measurement to the timeline.
func (c *Controller) AddMeasurement(ctx context.Context, m models.Measurement) error {
	if m.Date == "" {
		m.Date = c.now().Format(models.DateLayout)
	}
	if err := c.store.AddMeasurement(ctx, m); err != nil {
		return fmt.Errorf("add measurement: %w", err)
	}
	c.publish(ctx, notify.TableMeasures)
	c.kick()
	return nil
}

// AddPersonalRecord persists a new personal record.
func (c *Controller) AddPersonalRecord(ctx context.Context, r models.PersonalRecord) (*models.PersonalRecord, error) {
	if r.Date == "" {
		r.Date = c.now().Format(models.DateLayout)
	}
	stored, err := c.store.AddPersonalRecord(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("add personal record: %w", err)
	}
	c.publish(ctx, notify.TableRecords)
	c.kick()
	return stored, nil
}

func (c *Controller) publish(ctx context.Context, table string) {
	if err := c.notifier.Publish(ctx, c.userID, table); err != nil {
		// The write already landed; peers catch up on their next
		// trigger. Losing one notification is not worth failing the
		// mutation over.
		c.logger.Warn("publish failed", zap.String("table", table), zap.Error(err))
	}
}

// Workouts returns the current snapshot's workouts, newest first.
func (c *Controller) Workouts() []models.Workout {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Workouts
}

// Profile returns the current profile, or nil when none exists yet.
func (c *Controller) Profile() *models.UserProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Profile
}

// Measurements returns the measurement timeline, newest first.
func (c *Controller) Measurements() []models.Measurement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Measurements
}

// Records returns the personal records, newest first.
func (c *Controller) Records() []models.PersonalRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Records
}

// Stats returns the derived statistics from the last refresh.
func (c *Controller) Stats() models.UserStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Loading reports whether a refresh is in flight.
func (c *Controller) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the error from the most recent failed refresh, cleared
// by the next successful one.
func (c *Controller) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}
