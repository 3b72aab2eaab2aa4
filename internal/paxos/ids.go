package paxos

import (
	"fmt"
	"math"
	"net"
	"strconv"
	"sync"
	"time"
)

// ProposalID orders competing proposals. It is the proposer's wall clock in
// milliseconds followed by its five-digit port, read as one integer.
type ProposalID int64

// NoProposal is the promise an acceptor holds for a key after a commit.
const NoProposal ProposalID = math.MinInt64

const portDigits = 100000

func (id ProposalID) String() string {
	if id == NoProposal {
		return "none"
	}
	return strconv.FormatInt(int64(id), 10)
}

type IDGenerator struct {
	suffix int64
	clock  func() time.Time

	mu   sync.Mutex
	last int64
}

// NewIDGenerator derives the id suffix from the port of identity ("host:port").
func NewIDGenerator(identity string, clock func() time.Time) (*IDGenerator, error) {
	port, err := identityPort(identity)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = time.Now
	}
	return &IDGenerator{suffix: int64(port), clock: clock}, nil
}

// Next returns an id strictly greater than any id this generator returned before.
func (g *IDGenerator) Next() ProposalID {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.clock().UnixMilli()
	if millis <= g.last {
		millis = g.last + 1
	}
	g.last = millis

	return ProposalID(millis*portDigits + g.suffix)
}

func identityPort(identity string) (int, error) {
	_, portStr, err := net.SplitHostPort(identity)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidIdentity, identity, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port >= portDigits {
		return 0, fmt.Errorf("%w %q: bad port", ErrInvalidIdentity, identity)
	}
	return port, nil
}
