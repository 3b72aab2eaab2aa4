package main

import (
	"net/http"
	"net/http/httptest"
	"paxosbot/internal/configuration"
	"paxosbot/internal/history"
	"paxosbot/internal/paxos"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchStdin_Exit(t *testing.T) {
	exit := make(chan struct{})
	go watchStdin(strings.NewReader("hello\n  EXIT \n"), exit)

	select {
	case <-exit:
	case <-time.After(time.Second):
		t.Fatal("exit was not signalled")
	}
}

func TestWatchStdin_EOFWithoutExit(t *testing.T) {
	exit := make(chan struct{})
	watchStdin(strings.NewReader("status\n"), exit)

	select {
	case <-exit:
		t.Fatal("exit signalled without the command")
	default:
	}
}

func TestRun_BadArgumentsExitCode(t *testing.T) {
	t.Setenv(configuration.ConfigDirEnv, "../../internal/static")
	t.Setenv(configuration.ProfileEnv, "test")

	assert.Equal(t, 2, run([]string{"5001", "5002"}, strings.NewReader("")))
	assert.Equal(t, 2, run([]string{"5001", "5002", "5003", "5004", "5005", "1", "CrashInPhase1", "5002", "9999"}, strings.NewReader("")))
}

func TestNewApp_Wiring(t *testing.T) {
	t.Setenv(configuration.ProfileEnv, "test")
	cfg, err := configuration.Load("../../internal/static")
	require.NoError(t, err)
	cfg.Metrics.Enabled = true

	args, err := configuration.ParseServerArgs([]string{"5001", "5002", "5003", "5004", "5005", "2", "crashP2", "5001", "5002"})
	require.NoError(t, err)

	app, err := NewApp(cfg, args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5002", app.Self)
	assert.Len(t, app.Endpoints, 5)
	require.NotNil(t, app.Metrics)

	rec := httptest.NewRecorder()
	app.Metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "replica health is served on the metrics port")

	self, err := app.Directory.Resolve(t.Context(), app.Self)
	require.NoError(t, err)
	assert.Same(t, app.Node, self)
}

func TestHistoryLog_Put(t *testing.T) {
	h := &historyLog{Service: history.NewService()}
	h.Put(paxos.Record{Key: 1, Ticker: "AAPL", Price: "1"})

	assert.Equal(t, 1, h.Len())
}
