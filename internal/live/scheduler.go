// Package live drives the periodic conference-day timeline: it classifies
// selected talks against the clock and broadcasts status transitions.
package live

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/conference-planner/backend/internal/planner"
	"github.com/conference-planner/backend/internal/schedule"
	"github.com/conference-planner/backend/internal/storage/models"
	"github.com/conference-planner/backend/internal/websocket"
)

// TalkState is one selected talk's live classification.
type TalkState struct {
	TalkID string              `json:"talk_id"`
	Title  string              `json:"title"`
	DayID  string              `json:"day_id"`
	Time   string              `json:"time"`
	Status schedule.TalkStatus `json:"status"`
}

// Snapshot is the live timeline for the active schedule at one instant.
type Snapshot struct {
	ScheduleID   string         `json:"schedule_id"`
	ScheduleName string         `json:"schedule_name"`
	Now          time.Time      `json:"now"`
	Running      bool           `json:"running"`
	Current      *schedule.Talk `json:"current,omitempty"`
	Next         *schedule.Talk `json:"next,omitempty"`
	Talks        []TalkState    `json:"talks"`
	Live         int            `json:"live"`
	Upcoming     int            `json:"upcoming"`
	Past         int            `json:"past"`
}

// Scheduler runs the periodic live timeline job.
type Scheduler struct {
	cron        *cron.Cron
	service     *planner.Service
	broadcaster *websocket.EventBroadcaster
	interval    time.Duration

	mu         sync.Mutex
	running    bool
	lastStatus map[string]schedule.TalkStatus
	now        func() time.Time
}

// NewScheduler creates a new live timeline scheduler.
func NewScheduler(service *planner.Service, broadcaster *websocket.EventBroadcaster, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Scheduler{
		cron:        cron.New(),
		service:     service,
		broadcaster: broadcaster,
		interval:    interval,
		lastStatus:  make(map[string]schedule.TalkStatus),
		now:         time.Now,
	}
}

// Start begins the periodic tick job. The timeline stays paused until
// Resume is called.
func (s *Scheduler) Start() error {
	spec := "@every " + s.interval.String()
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Live timeline scheduler started (interval %s)", s.interval)
	return nil
}

// Stop gracefully shuts down the scheduler, waiting for a running tick.
func (s *Scheduler) Stop() {
	log.Println("Stopping live timeline scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Live timeline scheduler stopped")
}

// Resume turns the timeline on and fires an immediate tick.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	s.running = true
	s.lastStatus = make(map[string]schedule.TalkStatus)
	s.mu.Unlock()
	go s.tick()
}

// Pause turns the timeline off. The cron job keeps running but ticks become
// no-ops until Resume.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Running reports whether the timeline is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Snapshot classifies a schedule's selected talks at the current instant.
func (s *Scheduler) Snapshot(ctx context.Context, scheduleID string) (*Snapshot, error) {
	stored, talks, err := s.service.SelectedTalks(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	snap := &Snapshot{
		ScheduleID:   stored.ID,
		ScheduleName: stored.Name,
		Now:          now,
		Running:      s.Running(),
		Talks:        make([]TalkState, 0, len(talks)),
	}

	for i := range talks {
		status := schedule.StatusAt(&talks[i], now)
		snap.Talks = append(snap.Talks, TalkState{
			TalkID: talks[i].ID,
			Title:  talks[i].Title,
			DayID:  talks[i].DayID,
			Time:   talks[i].Time,
			Status: status,
		})
		switch status {
		case schedule.StatusLive:
			snap.Live++
		case schedule.StatusUpcoming:
			snap.Upcoming++
		case schedule.StatusPast:
			snap.Past++
		}
	}

	snap.Current, snap.Next = schedule.CurrentAndNext(talks, now)
	return snap, nil
}

// tick classifies the active selection and broadcasts transitions.
func (s *Scheduler) tick() {
	if !s.Running() {
		return
	}

	ctx := context.Background()
	stored, talks, err := s.selectedTalks(ctx)
	if err != nil {
		if !errors.Is(err, planner.ErrNotFound) {
			log.Printf("Live tick failed: %v", err)
		}
		return
	}

	now := s.now()
	var live, upcoming, past int

	s.mu.Lock()
	for i := range talks {
		status := schedule.StatusAt(&talks[i], now)
		switch status {
		case schedule.StatusLive:
			live++
		case schedule.StatusUpcoming:
			upcoming++
		case schedule.StatusPast:
			past++
		}

		key := stored.ID + "/" + talks[i].ID
		previous, known := s.lastStatus[key]
		s.lastStatus[key] = status
		if known && previous != status {
			s.broadcaster.BroadcastTalkStatusChanged(stored.ID, talks[i], previous, status)
		}
	}
	s.mu.Unlock()

	current, next := schedule.CurrentAndNext(talks, now)
	s.broadcaster.BroadcastLiveTick(stored.ID, now, current, next, live, upcoming, past)
}

func (s *Scheduler) selectedTalks(ctx context.Context) (*models.Schedule, []schedule.Talk, error) {
	stored, err := s.service.LoadActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	return stored, schedule.ResolveTalks(stored.Data, stored.Selections), nil
}
