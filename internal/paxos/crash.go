package paxos

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"paxosbot/internal/metrics"
)

type CrashMode int

const (
	CrashNone CrashMode = iota
	CrashInPhase1
	CrashInPhase2
)

func (m CrashMode) String() string {
	switch m {
	case CrashInPhase1:
		return "CrashInPhase1"
	case CrashInPhase2:
		return "CrashInPhase2"
	default:
		return "CrashNone"
	}
}

// ParseCrashMode accepts the tag names and the short crashP1/crashP2 forms,
// case-insensitively.
func ParseCrashMode(tag string) (CrashMode, error) {
	switch strings.ToLower(tag) {
	case "crashinphase1", "crashp1":
		return CrashInPhase1, nil
	case "crashinphase2", "crashp2":
		return CrashInPhase2, nil
	default:
		return CrashNone, fmt.Errorf("unknown crash tag %q", tag)
	}
}

type FailureInjection struct {
	Mode    CrashMode
	Victims [2]string
}

func (f FailureInjection) targets(identity string) bool {
	return f.Mode != CrashNone && slices.Contains(f.Victims[:], identity)
}

type Liveness int

const (
	Active Liveness = iota
	InactiveForPhase1
	InactiveForPhase2
)

func (l Liveness) String() string {
	switch l {
	case InactiveForPhase1:
		return "inactive-phase1"
	case InactiveForPhase2:
		return "inactive-phase2"
	default:
		return "active"
	}
}

// CrashInjector drives the acceptor's liveness from the RPCs it receives.
// A CrashInPhase1 victim goes down on every Prepare and comes back on the next
// Accept; a CrashInPhase2 victim does the opposite. Non-victims stay Active.
type CrashInjector struct {
	mode   CrashMode
	victim bool

	mu    sync.Mutex
	state Liveness
}

func NewCrashInjector(identity string, cfg FailureInjection) *CrashInjector {
	return &CrashInjector{mode: cfg.Mode, victim: cfg.targets(identity)}
}

// OnPrepare applies the Prepare transition and reports whether the acceptor
// may answer this call.
func (c *CrashInjector) OnPrepare() bool {
	if !c.victim {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.mode {
	case CrashInPhase1:
		c.state = InactiveForPhase1
	case CrashInPhase2:
		c.state = Active
	}
	return c.answer(PhasePrepare)
}

// OnAccept applies the Accept transition and reports whether the acceptor
// may answer this call.
func (c *CrashInjector) OnAccept() bool {
	if !c.victim {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.mode {
	case CrashInPhase1:
		c.state = Active
	case CrashInPhase2:
		c.state = InactiveForPhase2
	}
	return c.answer(PhaseAccept)
}

func (c *CrashInjector) answer(phase Phase) bool {
	if c.state == Active {
		return true
	}
	slog.Warn("acceptor crashed", "phase", phase, "mode", c.mode)
	metrics.CrashRejectionsTotal.WithLabelValues(phase.String()).Inc()
	return false
}

func (c *CrashInjector) State() Liveness {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
