package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/storlay/book-bookings-api/internal/services"
)

// ExpirySweeper periodically purges bookings whose end date has passed.
// Each tick runs one sweep in its own unit of work; a failed sweep is logged
// and simply tried again at the next tick.
type ExpirySweeper struct {
	bookings *services.BookingsService
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewExpirySweeper creates a new sweeper with a cron schedule
// (standard five-field format, e.g. "0 0 * * *" for daily at midnight).
func NewExpirySweeper(bookings *services.BookingsService, schedule string) *ExpirySweeper {
	return &ExpirySweeper{
		bookings: bookings,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *ExpirySweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Expiry sweep scheduler: started with schedule '%s'. Next run: %v",
		s.schedule, s.cron.Entry(entryID).Next)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep to finish.
func (s *ExpirySweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Expiry sweep scheduler: stopped")
}

// RunNow triggers an immediate sweep.
func (s *ExpirySweeper) RunNow() {
	go s.runSweep()
}

// IsRunning returns whether the scheduler is active.
func (s *ExpirySweeper) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *ExpirySweeper) runSweep() {
	today := services.Today()
	purged, err := s.bookings.RemoveExpired(today)
	if err != nil {
		log.Printf("Expiry sweep failed: %v", err)
		return
	}
	log.Printf("Expiry sweep completed: removed %d expired bookings (as of %s)", purged, today)
}
