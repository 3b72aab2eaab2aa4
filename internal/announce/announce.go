package announce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"paxosbot/internal/configuration"
	"time"

	"golang.org/x/net/ipv4"
)

const (
	DefaultGroup = "224.0.0.1"
	DefaultPort  = 2048

	maxDatagram = 256
)

var ErrNotMulticast = errors.New("announce group is not a multicast address")

// Announcer tells other clients on the local network that a client came online.
type Announcer struct {
	group *net.UDPAddr
	clock func() time.Time
}

func New(cfg *configuration.AnnounceProperties) (*Announcer, error) {
	host, port := cfg.Group, cfg.Port
	if host == "" {
		host = DefaultGroup
	}
	if port == 0 {
		port = DefaultPort
	}

	ip := net.ParseIP(host)
	if ip == nil || !ip.IsMulticast() || ip.To4() == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotMulticast, host)
	}

	return &Announcer{
		group: &net.UDPAddr{IP: ip, Port: port},
		clock: time.Now,
	}, nil
}

func (a *Announcer) Group() *net.UDPAddr {
	return a.group
}

func (a *Announcer) Message() string {
	return fmt.Sprintf("A new client is online at %s!", a.clock().Format(time.RFC1123))
}

// Announce sends one datagram to the group with loopback enabled, so
// listeners on this host hear it too.
func (a *Announcer) Announce() error {
	c, err := net.ListenPacket("udp4", "0.0.0.0:0")
	if err != nil {
		return fmt.Errorf("announce socket: %w", err)
	}
	defer c.Close()

	p := ipv4.NewPacketConn(c)
	if err := p.SetMulticastTTL(1); err != nil {
		return fmt.Errorf("announce ttl: %w", err)
	}
	if err := p.SetMulticastLoopback(true); err != nil {
		return fmt.Errorf("announce loopback: %w", err)
	}

	if _, err := p.WriteTo([]byte(a.Message()), nil, a.group); err != nil {
		return fmt.Errorf("announce send: %w", err)
	}
	slog.Debug("announcement sent", "group", a.group.String())
	return nil
}

// Listen joins the group and hands every announcement to handle until ctx ends.
func (a *Announcer) Listen(ctx context.Context, handle func(string)) error {
	c, err := net.ListenPacket("udp4", fmt.Sprintf("0.0.0.0:%d", a.group.Port))
	if err != nil {
		return fmt.Errorf("announce listen: %w", err)
	}
	defer c.Close()

	p := ipv4.NewPacketConn(c)
	if err := p.JoinGroup(nil, &net.UDPAddr{IP: a.group.IP}); err != nil {
		return fmt.Errorf("join %s: %w", a.group.IP, err)
	}
	defer func() { _ = p.LeaveGroup(nil, &net.UDPAddr{IP: a.group.IP}) }()

	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	buf := make([]byte, maxDatagram)
	for {
		n, _, src, err := p.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("announce read: %w", err)
		}
		slog.Debug("announcement received", "from", src)
		handle(string(buf[:n]))
	}
}
