package main

import (
	"context"
	"fmt"
	"log/slog"
	"paxosbot/internal/configuration"
	"paxosbot/internal/directory"
	"paxosbot/internal/history"
	"paxosbot/internal/metrics"
	"paxosbot/internal/paxos"
	"paxosbot/internal/transport"
)

type App struct {
	Self      string
	Endpoints []string

	History   *history.Service
	Directory *directory.Directory
	Node      *paxos.Node
	Transport *transport.Service
	Metrics   *metrics.Server
}

func NewApp(cfg *configuration.Properties, args configuration.ServerArgs) (*App, error) {
	host := cfg.Transport.Address
	self := args.Self(host)
	endpoints := args.Endpoints(host)

	adoption, err := paxos.ParseAdoptionPolicy(cfg.Paxos.AdoptionPolicy)
	if err != nil {
		return nil, fmt.Errorf("paxos config: %w", err)
	}

	dir, err := directory.New(endpoints, transport.Dialer(&cfg.Transport))
	if err != nil {
		return nil, err
	}

	hist := history.NewService()
	node, err := paxos.NewNode(paxos.Config{
		Identity:     self,
		Injection:    args.Injection(host),
		PromiseDelay: cfg.Paxos.PromiseDelayDuration(),
		AcceptDelay:  cfg.Paxos.AcceptDelayDuration(),
		CommitDelay:  cfg.Paxos.CommitDelayDuration(),
		Adoption:     adoption,
	}, dir, &historyLog{Service: hist})
	if err != nil {
		return nil, err
	}
	if err := dir.Register(self, node); err != nil {
		return nil, err
	}

	app := &App{
		Self:      self,
		Endpoints: endpoints,
		History:   hist,
		Directory: dir,
		Node:      node,
		Transport: transport.NewService(&cfg.Transport, node, hist, dir),
	}

	if cfg.Metrics.Enabled {
		app.Metrics = metrics.NewServer(cfg.Metrics.Address(host, args.Port()), node.Health)
	}

	return app, nil
}

func (a *App) Start() error {
	if _, err := a.Transport.Start(a.Self); err != nil {
		return fmt.Errorf("start transport: %w", err)
	}
	if a.Metrics != nil {
		if _, err := a.Metrics.Start(); err != nil {
			a.Transport.Stop()
			return fmt.Errorf("start metrics: %w", err)
		}
	}
	return nil
}

func (a *App) Stop() {
	a.Transport.Stop()
	if a.Metrics != nil {
		a.Metrics.Stop()
	}
	if err := a.Directory.Close(); err != nil {
		slog.Warn("closing peer connections", "error", err)
	}
}

// historyLog prints the whole history after every commit.
type historyLog struct {
	*history.Service
}

func (h *historyLog) Put(rec paxos.Record) {
	h.Service.Put(rec)
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, entry := range h.Entries() {
		slog.Debug("history", "key", entry.Key, "value", entry.Value())
	}
}
