package calendar

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/advisor-calendar/backend/internal/storage"
	"github.com/advisor-calendar/backend/internal/storage/models"
)

// ReminderSink receives reminder notifications for delivery to
// connected clients. Satisfied by the websocket event broadcaster.
type ReminderSink interface {
	BroadcastNotification(level, title, message string)
}

// ReminderScheduler periodically scans for events starting soon and
// pushes reminder notifications. Each event is reminded at most once.
type ReminderScheduler struct {
	cron      *cron.Cron
	eventRepo *storage.EventRepository
	sink      ReminderSink

	interval  time.Duration
	lookahead time.Duration

	remindedMu sync.Mutex
	reminded   map[string]time.Time
}

// NewReminderScheduler creates a scheduler that checks every
// intervalMin minutes for events starting within lookaheadMin minutes.
func NewReminderScheduler(eventRepo *storage.EventRepository, sink ReminderSink, intervalMin, lookaheadMin int) *ReminderScheduler {
	if intervalMin <= 0 {
		intervalMin = 5
	}
	if lookaheadMin <= 0 {
		lookaheadMin = 15
	}

	return &ReminderScheduler{
		cron:      cron.New(),
		eventRepo: eventRepo,
		sink:      sink,
		interval:  time.Duration(intervalMin) * time.Minute,
		lookahead: time.Duration(lookaheadMin) * time.Minute,
		reminded:  make(map[string]time.Time),
	}
}

// Start begins the periodic reminder checks.
func (s *ReminderScheduler) Start() error {
	spec := "@every " + s.interval.String()
	if _, err := s.cron.AddFunc(spec, func() {
		s.CheckUpcoming(context.Background())
	}); err != nil {
		return fmt.Errorf("scheduling reminder job: %w", err)
	}

	s.cron.Start()
	log.Printf("Reminder scheduler started (every %s, lookahead %s)", s.interval, s.lookahead)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Reminder scheduler stopped")
}

// CheckUpcoming scans the lookahead window once and broadcasts a
// reminder for each not-yet-reminded event.
func (s *ReminderScheduler) CheckUpcoming(ctx context.Context) {
	now := time.Now().UTC()
	from := models.NewTimestamp(now)
	to := models.NewTimestamp(now.Add(s.lookahead))

	events, err := s.eventRepo.ListUpcoming(ctx, from, to)
	if err != nil {
		log.Printf("Failed to load upcoming events: %v", err)
		return
	}

	for _, ev := range events {
		if !s.markReminded(ev.ID) {
			continue
		}
		minutes := int(ev.Start.Sub(now).Minutes())
		msg := fmt.Sprintf("%s starts in %d minutes", ev.Title, minutes)
		if s.sink != nil {
			s.sink.BroadcastNotification("info", "Upcoming event", msg)
		}
		log.Printf("Reminder sent for event %s (%s)", ev.ID, ev.Title)
	}

	s.pruneReminded(now)
}

// markReminded records the event as reminded; false if already sent.
func (s *ReminderScheduler) markReminded(eventID string) bool {
	s.remindedMu.Lock()
	defer s.remindedMu.Unlock()

	if _, ok := s.reminded[eventID]; ok {
		return false
	}
	s.reminded[eventID] = time.Now().UTC()
	return true
}

// pruneReminded drops reminder records older than a day so the map
// does not grow without bound.
func (s *ReminderScheduler) pruneReminded(now time.Time) {
	s.remindedMu.Lock()
	defer s.remindedMu.Unlock()

	cutoff := now.Add(-24 * time.Hour)
	for id, at := range s.reminded {
		if at.Before(cutoff) {
			delete(s.reminded, id)
		}
	}
}
