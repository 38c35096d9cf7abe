package application

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/bnema/dcms-cli/internal/ports"
)

type RefreshState string

const (
	RefreshIdle    RefreshState = "idle"
	RefreshLoading RefreshState = "loading"
	RefreshReady   RefreshState = "ready"
	RefreshFailed  RefreshState = "failed"
)

// FetchTicket identifies one issued fetch. Only the ticket with the latest Seq may apply
// its result.
type FetchTicket struct {
	Seq      uint64
	Identity domain.UserID
}

type Snapshot struct {
	State           RefreshState
	Identity        domain.UserID
	Correspondences []domain.Correspondence
	Meetings        []domain.Meeting
	Stats           domain.Stats
	Err             error
	UpdatedAt       time.Time
}

func (s Snapshot) Loading() bool {
	return s.State == RefreshLoading
}

type RefreshController struct {
	gateway ports.Gateway
	clock   ports.Clock
	logger  *log.Logger

	mu       sync.Mutex
	seq      uint64
	snapshot Snapshot
}

func NewRefreshController(gateway ports.Gateway, clock ports.Clock, logger *log.Logger) *RefreshController {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &RefreshController{
		gateway: gateway,
		clock:   clock,
		logger:  logger,
		snapshot: Snapshot{
			State:           RefreshIdle,
			Correspondences: []domain.Correspondence{},
			Meetings:        []domain.Meeting{},
		},
	}
}

// Begin moves to Loading for identity and returns the ticket the matching fetch must carry.
// Lists and stats belonging to another identity are dropped immediately.
func (c *RefreshController) Begin(identity domain.UserID) FetchTicket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if c.snapshot.Identity != identity {
		c.snapshot.Correspondences = []domain.Correspondence{}
		c.snapshot.Meetings = []domain.Meeting{}
		c.snapshot.Stats = domain.Stats{}
	}
	c.snapshot.State = RefreshLoading
	c.snapshot.Identity = identity
	c.snapshot.Err = nil

	return FetchTicket{Seq: c.seq, Identity: identity}
}

// Complete applies a fetch outcome. It reports false and leaves state untouched when the
// ticket has been superseded.
func (c *RefreshController) Complete(ticket FetchTicket, bundle domain.Bundle, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket.Seq != c.seq {
		c.logger.Printf("[refresh] discarding stale result for identity=%s (ticket %d, latest %d)", ticket.Identity, ticket.Seq, c.seq)
		return false
	}

	c.snapshot.UpdatedAt = c.clock.Now()
	if err != nil {
		c.logger.Printf("[refresh] fetch failed for identity=%s: %v", ticket.Identity, err)
		c.snapshot.State = RefreshFailed
		c.snapshot.Err = err
		c.snapshot.Correspondences = []domain.Correspondence{}
		c.snapshot.Meetings = []domain.Meeting{}
		return true
	}

	bundle.Normalize()
	c.snapshot.State = RefreshReady
	c.snapshot.Err = nil
	c.snapshot.Correspondences = bundle.Correspondences
	c.snapshot.Meetings = bundle.Meetings
	if bundle.Stats != nil {
		c.snapshot.Stats = *bundle.Stats
	}

	return true
}

// Run performs the fetch for ticket and applies it.
func (c *RefreshController) Run(ctx context.Context, ticket FetchTicket) (Snapshot, bool) {
	bundle, err := c.gateway.FetchBundle(ctx, ticket.Identity)
	applied := c.Complete(ticket, bundle, err)
	return c.Snapshot(), applied
}

func (c *RefreshController) Refresh(ctx context.Context, identity domain.UserID) Snapshot {
	snapshot, _ := c.Run(ctx, c.Begin(identity))
	return snapshot
}

// Retry refetches for the identity currently shown.
func (c *RefreshController) Retry() FetchTicket {
	c.mu.Lock()
	identity := c.snapshot.Identity
	c.mu.Unlock()

	return c.Begin(identity)
}

func (c *RefreshController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.snapshot
	snapshot.Correspondences = append([]domain.Correspondence(nil), c.snapshot.Correspondences...)
	snapshot.Meetings = append([]domain.Meeting(nil), c.snapshot.Meetings...)
	if snapshot.Correspondences == nil {
		snapshot.Correspondences = []domain.Correspondence{}
	}
	if snapshot.Meetings == nil {
		snapshot.Meetings = []domain.Meeting{}
	}

	return snapshot
}
