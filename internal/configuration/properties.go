package configuration

import (
	"net"
	"strconv"
	"time"
)

type Properties struct {
	App       AppProperties       `yaml:"app"`
	Transport TransportProperties `yaml:"transport"`
	Paxos     PaxosProperties     `yaml:"paxos"`
	Metrics   MetricsProperties   `yaml:"metrics"`
	Quote     QuoteProperties     `yaml:"quote"`
	Announce  AnnounceProperties  `yaml:"announce"`
}

type AppProperties struct {
	Profile  string `yaml:"profile"`
	LogLevel string `yaml:"log-level"`
}

type TransportProperties struct {
	Network string `yaml:"network"`
	Address string `yaml:"address"`
	// Timeout bounds one inbound call, in seconds. A CreateRecord call spans
	// the whole round, delays included.
	Timeout uint64 `yaml:"timeout"`

	// CallTimeout bounds one outbound peer call, in milliseconds.
	CallTimeout          uint64 `yaml:"call-timeout"`
	KeepaliveTime        uint64 `yaml:"keepalive-time"`
	MaxConcurrentStreams uint32 `yaml:"max-concurrent-streams"`
}

// Delays are in milliseconds; zero disables them.
type PaxosProperties struct {
	PromiseDelay   uint64 `yaml:"promise-delay"`
	AcceptDelay    uint64 `yaml:"accept-delay"`
	CommitDelay    uint64 `yaml:"commit-delay"`
	AdoptionPolicy string `yaml:"adoption-policy"`
}

type MetricsProperties struct {
	Enabled    bool `yaml:"enabled"`
	PortOffset int  `yaml:"port-offset"`
}

// Address places the metrics listener PortOffset ports above the replica's own.
func (m *MetricsProperties) Address(host string, replicaPort int) string {
	return net.JoinHostPort(host, strconv.Itoa(replicaPort+m.PortOffset))
}

type QuoteProperties struct {
	BaseURL string   `yaml:"base-url"`
	Token   string   `yaml:"token"`
	Timeout uint64   `yaml:"timeout"`
	Tickers []string `yaml:"tickers"`
}

type AnnounceProperties struct {
	Enabled bool   `yaml:"enabled"`
	Group   string `yaml:"group"`
	Port    int    `yaml:"port"`
}

func (t *TransportProperties) RequestTimeout() time.Duration {
	if t.Timeout == 0 {
		return time.Second
	}
	return time.Duration(t.Timeout) * time.Second
}

func (t *TransportProperties) PeerCallTimeout() time.Duration {
	return time.Duration(t.CallTimeout) * time.Millisecond
}

func (t *TransportProperties) Keepalive() time.Duration {
	if t.KeepaliveTime == 0 {
		return 30 * time.Second
	}
	return time.Duration(t.KeepaliveTime) * time.Second
}

func (p *PaxosProperties) PromiseDelayDuration() time.Duration {
	return time.Duration(p.PromiseDelay) * time.Millisecond
}

func (p *PaxosProperties) AcceptDelayDuration() time.Duration {
	return time.Duration(p.AcceptDelay) * time.Millisecond
}

func (p *PaxosProperties) CommitDelayDuration() time.Duration {
	return time.Duration(p.CommitDelay) * time.Millisecond
}

func (q *QuoteProperties) RequestTimeout() time.Duration {
	return time.Duration(q.Timeout) * time.Millisecond
}
