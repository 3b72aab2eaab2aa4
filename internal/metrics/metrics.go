package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "paxos",
		Name:      "rounds_total",
		Help:      "Consensus rounds started by this proposer, by outcome",
	}, []string{"outcome"})

	RoundDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "paxosbot",
		Subsystem: "paxos",
		Name:      "round_duration_seconds",
		Help:      "Time from Prepare broadcast to the end of the Commit broadcast",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
	})

	PhaseVotes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "paxosbot",
		Subsystem: "paxos",
		Name:      "phase_votes",
		Help:      "Affirmative responses collected per phase",
		Buckets:   prometheus.LinearBuckets(0, 1, 6),
	}, []string{"phase"})

	PromisesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "acceptor",
		Name:      "promises_total",
		Help:      "RequestPromise calls handled, by result",
	}, []string{"result"})

	ProposalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "acceptor",
		Name:      "proposals_total",
		Help:      "Proposal calls handled, by result",
	}, []string{"result"})

	CrashRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "acceptor",
		Name:      "crash_rejections_total",
		Help:      "Calls rejected because of injected crashes, by phase",
	}, []string{"phase"})

	AdoptionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "paxos",
		Name:      "adoptions_total",
		Help:      "Rounds that adopted a piggybacked value instead of their own",
	})

	CommitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "learner",
		Name:      "commits_total",
		Help:      "Records committed to the local history",
	})

	CommitBroadcastFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "paxos",
		Name:      "commit_broadcast_failures_total",
		Help:      "Commit calls that could not be delivered to a replica",
	})

	HistoryEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "paxosbot",
		Subsystem: "history",
		Name:      "entries",
		Help:      "Records held in the local history",
	})

	HistoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "history",
		Name:      "operations_total",
		Help:      "History operations",
	}, []string{"operation"})

	ElectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "election",
		Name:      "total",
		Help:      "Bully elections run",
	})

	QuoteRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "quote",
		Name:      "requests_total",
		Help:      "Quote provider lookups, by status",
	}, []string{"status"})

	GRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paxosbot",
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "Total gRPC requests",
	}, []string{"service", "method", "code"})

	GRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "paxosbot",
		Subsystem: "grpc",
		Name:      "request_duration_seconds",
		Help:      "gRPC request duration",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
	}, []string{"service", "method"})
)
