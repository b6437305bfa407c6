// Package pursuit holds the authoritative game session. Every exported
// Coordinator method runs under one mutex; nothing it returns aliases
// live state.
package pursuit

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rocketscienceinc/pokemonou-backend/internal/apperror"
	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
)

type Status string

const (
	StatusActive Status = "active"
	StatusOver   Status = "over"
)

const (
	// CaptureFailed is returned by Capture when no evader shares the cell.
	CaptureFailed = "failure"
	// Free is returned by Captured for an evader nobody caught.
	Free = "free"

	DefaultMaxPlacementAttempts = 64
)

type Options struct {
	BoardSize       int
	ExpectedEvaders int

	SeekerIcons []string
	EvaderIcons []string

	// MaxPlacementAttempts bounds random probing for a free cell before
	// falling back to a scan of the remaining empty cells.
	MaxPlacementAttempts int

	Rand *rand.Rand
	Now  func() time.Time
}

type Coordinator struct {
	mu sync.Mutex

	rng   *rand.Rand
	board *entity.Board

	seekers   map[string]*entity.Agent
	evaders   map[string]*entity.Agent
	iconOwner map[string]*entity.Agent
	pools     map[entity.Class]*entity.IconPool

	expectedEvaders      int
	maxPlacementAttempts int
	status               Status
	log                  *ActionLog
}

func New(opts Options) (*Coordinator, error) {
	if opts.BoardSize <= 0 {
		return nil, fmt.Errorf("board size must be positive, got %d", opts.BoardSize)
	}
	if opts.ExpectedEvaders <= 0 {
		return nil, fmt.Errorf("expected evaders must be positive, got %d", opts.ExpectedEvaders)
	}

	seekerIcons, evaderIcons := opts.SeekerIcons, opts.EvaderIcons
	if len(seekerIcons) == 0 {
		seekerIcons = entity.DefaultSeekerIcons
	}
	if len(evaderIcons) == 0 {
		evaderIcons = entity.DefaultEvaderIcons
	}
	if err := checkDisjoint(seekerIcons, evaderIcons); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // gameplay randomness
	}

	attempts := opts.MaxPlacementAttempts
	if attempts <= 0 {
		attempts = DefaultMaxPlacementAttempts
	}

	return &Coordinator{
		rng:       rng,
		board:     entity.NewBoard(opts.BoardSize),
		seekers:   make(map[string]*entity.Agent),
		evaders:   make(map[string]*entity.Agent),
		iconOwner: make(map[string]*entity.Agent),
		pools: map[entity.Class]*entity.IconPool{
			entity.Seeker: entity.NewIconPool(seekerIcons),
			entity.Evader: entity.NewIconPool(evaderIcons),
		},
		expectedEvaders:      opts.ExpectedEvaders,
		maxPlacementAttempts: attempts,
		status:               StatusActive,
		log:                  NewActionLog(opts.Now),
	}, nil
}

func (that *Coordinator) BoardSize() int {
	return that.board.Size()
}

// GameStatus recounts captured evaders; once over the status never reverts.
func (that *Coordinator) GameStatus() Status {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.refreshStatus()

	return that.status
}

// EventsSince returns log entries with Seq greater than seq.
func (that *Coordinator) EventsSince(seq int) []Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.log.Since(seq)
}

type Snapshot struct {
	Size     int            `json:"size"`
	Cells    [][]string     `json:"cells"`
	Seekers  []entity.Agent `json:"trainers"`
	Evaders  []entity.Agent `json:"pokemon"`
	Status   Status         `json:"status"`
	Captured int            `json:"captured"`
	Expected int            `json:"expected"`
	LastSeq  int            `json:"last_seq"`
}

// Snapshot is a deep copy of the session taken under the lock.
func (that *Coordinator) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.refreshStatus()

	snap := Snapshot{
		Size:     that.board.Size(),
		Cells:    that.board.Cells(),
		Status:   that.status,
		Captured: that.capturedCount(),
		Expected: that.expectedEvaders,
		LastSeq:  that.log.Len(),
	}

	for _, name := range sortedNames(that.seekers) {
		snap.Seekers = append(snap.Seekers, that.seekers[name].Clone())
	}
	for _, name := range sortedNames(that.evaders) {
		snap.Evaders = append(snap.Evaders, that.evaders[name].Clone())
	}

	return snap
}

func (that *Coordinator) refreshStatus() {
	if that.status == StatusOver {
		return
	}

	if that.capturedCount() == that.expectedEvaders {
		that.status = StatusOver
		that.log.Append(EventGameOver, "", fmt.Sprintf("game over: %d of %d pokemon captured", that.expectedEvaders, that.expectedEvaders))
	}
}

// capturedCount counts distinct evaders across every pokedex.
func (that *Coordinator) capturedCount() int {
	seen := make(map[string]struct{})
	for _, seeker := range that.seekers {
		for _, name := range seeker.Pokedex {
			seen[name] = struct{}{}
		}
	}

	return len(seen)
}

func (that *Coordinator) agents(class entity.Class) map[string]*entity.Agent {
	if class == entity.Seeker {
		return that.seekers
	}
	return that.evaders
}

func (that *Coordinator) lookup(name string, class entity.Class) (*entity.Agent, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidClass, class)
	}

	agent, ok := that.agents(class)[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", apperror.ErrAgentNotFound, class, name)
	}

	return agent, nil
}

// blockedFor reports whether another live agent of mover's class stands on
// pos. The board shows one icon per cell, so agent positions are checked.
func (that *Coordinator) blockedFor(mover *entity.Agent, pos entity.Position) func(string) bool {
	return func(string) bool {
		for _, other := range that.agents(mover.Class) {
			if other != mover && !other.IsCaptured() && other.Position == pos {
				return true
			}
		}
		return false
	}
}

func sortedNames(agents map[string]*entity.Agent) []string {
	names := make([]string, 0, len(agents))
	for name := range agents {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func checkDisjoint(seekerIcons, evaderIcons []string) error {
	seen := make(map[string]struct{}, len(seekerIcons))
	for _, icon := range seekerIcons {
		seen[icon] = struct{}{}
	}

	for _, icon := range evaderIcons {
		if _, ok := seen[icon]; ok {
			return fmt.Errorf("icon %q is in both pools", icon)
		}
	}

	return nil
}
