package history

import (
	"paxosbot/internal/paxos"
	"sync"
)

type Store struct {
	data map[paxos.RoundKey]paxos.Record
	mu   sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		data: make(map[paxos.RoundKey]paxos.Record),
	}
}

func (s *Store) Put(rec paxos.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[rec.Key] = rec
}

func (s *Store) Get(key paxos.RoundKey) (paxos.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.data[key]
	return rec, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *Store) Data() map[paxos.RoundKey]paxos.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[paxos.RoundKey]paxos.Record, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
