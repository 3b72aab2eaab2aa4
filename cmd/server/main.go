package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"paxosbot/internal/configuration"
	"paxosbot/internal/election"
	"paxosbot/internal/logging"
	"strings"
	"syscall"
)

const usage = "usage: server <port1> <port2> <port3> <port4> <port5> <index 1-5> [CrashInPhase1|CrashInPhase2 <victim-port> <victim-port>]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin io.Reader) int {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg, err := configuration.Load(configuration.ConfigDir())
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}
	logging.Init(cfg.App.LogLevel)

	serverArgs, err := configuration.ParseServerArgs(args)
	if err != nil {
		var argErr *configuration.ArgError
		if errors.As(err, &argErr) {
			slog.Error("invalid arguments", "error", err)
			fmt.Fprintln(os.Stderr, usage)
			return 2
		}
		slog.Error("failed to parse arguments", "error", err)
		return 1
	}

	app, err := NewApp(cfg, serverArgs)
	if err != nil {
		slog.Error("failed to initialize replica", "error", err)
		return 1
	}
	if err := app.Start(); err != nil {
		slog.Error("failed to start replica", "error", err)
		return 1
	}
	defer app.Stop()

	slog.Info("replica ready",
		"self", app.Self,
		"index", serverArgs.Index,
		"crash_mode", serverArgs.Crash,
		"profile", cfg.App.Profile,
	)

	exit := make(chan struct{})
	go watchStdin(stdin, exit)

	select {
	case <-ctx.Done():
		slog.Info("shutting down replica")
		return 0
	case <-exit:
	}

	result, err := election.Elect(app.Endpoints, app.Self)
	if err != nil {
		slog.Error("election failed", "error", err)
		return 1
	}
	fmt.Printf("New leader elected: %s\n", result.Leader.Endpoint)
	return 0
}

// watchStdin closes exit once the operator types "exit".
func watchStdin(stdin io.Reader, exit chan<- struct{}) {
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if strings.EqualFold(strings.TrimSpace(sc.Text()), "exit") {
			close(exit)
			return
		}
	}
}
