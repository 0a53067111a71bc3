package plugin

import (
	"context"
	"sync"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/domain/repository"
	"github.com/bnema/linkpeek/internal/logging"
)

const journalQueueSize = 64

// JournalObserver writes shown previews to the preview journal. Events are
// queued on the loop and persisted by Run on its own goroutine.
type JournalObserver struct {
	repo  repository.PreviewJournalRepository
	queue chan entity.PreviewRecord

	open map[string]*entity.PreviewRecord

	mu      sync.Mutex
	closed  bool
	dropped int
}

var _ port.PreviewObserver = (*JournalObserver)(nil)

// NewJournalObserver creates an observer persisting to repo.
func NewJournalObserver(repo repository.PreviewJournalRepository) *JournalObserver {
	return &JournalObserver{
		repo:  repo,
		queue: make(chan entity.PreviewRecord, journalQueueSize),
		open:  make(map[string]*entity.PreviewRecord),
	}
}

// PreviewChanged runs on the loop and never blocks it.
func (j *JournalObserver) PreviewChanged(ev port.PreviewEvent) {
	if ev.PreviewID == "" {
		return
	}
	rec, ok := j.open[ev.PreviewID]
	switch ev.Kind {
	case port.PreviewEventShown:
		rec = &entity.PreviewRecord{
			ID:      ev.PreviewID,
			URL:     ev.URL,
			ShownAt: ev.At,
			Outcome: entity.OutcomePending,
		}
		j.open[ev.PreviewID] = rec
	case port.PreviewEventReady:
		if !ok {
			return
		}
		rec.Outcome = entity.OutcomeLoaded
	case port.PreviewEventFailed:
		if !ok {
			return
		}
		rec.Outcome = entity.OutcomeFailed
	case port.PreviewEventClosed:
		if !ok {
			return
		}
		closedAt := ev.At
		rec.ClosedAt = &closedAt
		rec.Reason = ev.Reason
		delete(j.open, ev.PreviewID)
	default:
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return
	}
	select {
	case j.queue <- *rec:
	default:
		j.dropped++
	}
}

// Run persists queued records until ctx is done or Close is called, in which
// case the remaining records are flushed first.
func (j *JournalObserver) Run(ctx context.Context) error {
	log := logging.FromContext(logging.WithComponent(ctx, "journal"))
	for {
		select {
		case <-ctx.Done():
			return nil
		case rec, ok := <-j.queue:
			if !ok {
				return nil
			}
			if err := j.repo.Save(ctx, &rec); err != nil {
				log.Warn().Err(err).Str("preview_id", rec.ID).Msg("failed to journal preview")
			}
		}
	}
}

// Close stops accepting events and lets Run drain the queue.
func (j *JournalObserver) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.closed {
		j.closed = true
		close(j.queue)
	}
}

// Dropped returns how many events were lost to a full queue.
func (j *JournalObserver) Dropped() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.dropped
}
