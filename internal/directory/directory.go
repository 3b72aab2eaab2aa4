package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"paxosbot/internal/paxos"
	"sync"
)

var (
	ErrTopologySize    = errors.New("replica topology must list distinct endpoints")
	ErrUnknownEndpoint = errors.New("endpoint is not part of the replica set")
)

// Dialer opens a replica handle for a remote endpoint. Dialing must not
// block on the peer being up; failures surface on the first call.
type Dialer func(endpoint string) (paxos.Replica, error)

// Directory maps the fixed replica endpoints to replica handles.
type Directory struct {
	endpoints []string
	members   map[string]struct{}
	dial      Dialer

	mu       sync.Mutex
	replicas map[string]paxos.Replica
	dialed   map[string]struct{}
}

var _ paxos.Directory = (*Directory)(nil)

func New(endpoints []string, dial Dialer) (*Directory, error) {
	if len(endpoints) != paxos.ReplicaCount {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrTopologySize, paxos.ReplicaCount, len(endpoints))
	}

	members := make(map[string]struct{}, len(endpoints))
	for _, ep := range endpoints {
		if _, dup := members[ep]; dup {
			return nil, fmt.Errorf("%w: %s listed twice", ErrTopologySize, ep)
		}
		members[ep] = struct{}{}
	}

	return &Directory{
		endpoints: append([]string(nil), endpoints...),
		members:   members,
		dial:      dial,
		replicas:  make(map[string]paxos.Replica, len(endpoints)),
		dialed:    make(map[string]struct{}),
	}, nil
}

// Endpoints returns the replica set in its configured order.
func (d *Directory) Endpoints() []string {
	return append([]string(nil), d.endpoints...)
}

// Register binds an in-process handle, typically the local replica itself.
func (d *Directory) Register(endpoint string, r paxos.Replica) error {
	if _, ok := d.members[endpoint]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEndpoint, endpoint)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.replicas[endpoint] = r
	delete(d.dialed, endpoint)
	return nil
}

func (d *Directory) Resolve(ctx context.Context, endpoint string) (paxos.Replica, error) {
	if _, ok := d.members[endpoint]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, endpoint)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.replicas[endpoint]; ok {
		return r, nil
	}
	if d.dial == nil {
		return nil, fmt.Errorf("resolve %s: no dialer configured", endpoint)
	}

	r, err := d.dial(endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	d.replicas[endpoint] = r
	d.dialed[endpoint] = struct{}{}
	slog.Debug("replica dialed", "endpoint", endpoint)
	return r, nil
}

// Close releases dialed handles. Registered handles are left to their owner.
func (d *Directory) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []error
	for ep := range d.dialed {
		if c, ok := d.replicas[ep].(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", ep, err))
			}
		}
		delete(d.replicas, ep)
	}
	clear(d.dialed)
	return errors.Join(errs...)
}
