package paxos

import (
	"log/slog"

	"paxosbot/internal/metrics"
)

type Learner struct {
	history  History
	acceptor *Acceptor
}

func NewLearner(history History, acceptor *Acceptor) *Learner {
	return &Learner{history: history, acceptor: acceptor}
}

// Learn writes rec to the history, last commit wins, and recycles the key's
// acceptor state so it no longer piggybacks the committed value.
func (l *Learner) Learn(rec Record) {
	l.history.Put(rec)
	l.acceptor.Reset(rec.Key)
	metrics.CommitsTotal.Inc()

	slog.Info("record committed", "key", rec.Key, "value", rec.Value())
}
