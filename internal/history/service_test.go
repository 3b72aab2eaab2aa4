package history

import (
	"paxosbot/internal/paxos"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_PutOverwrites(t *testing.T) {
	s := NewService()

	s.Put(paxos.Record{Key: 1000, Ticker: "AAPL", Price: "150"})
	s.Put(paxos.Record{Key: 1000, Ticker: "MSFT", Price: "410"})

	got, ok := s.Get(1000)
	require.True(t, ok)
	assert.Equal(t, "MSFT 410", got.Value())
	assert.Equal(t, 1, s.Len())
}

func TestService_GetMissing(t *testing.T) {
	s := NewService()

	_, ok := s.Get(42)
	assert.False(t, ok)
}

func TestService_EntriesSortedByKey(t *testing.T) {
	s := NewService()
	s.Put(paxos.Record{Key: 3000, Ticker: "TSLA", Price: "240"})
	s.Put(paxos.Record{Key: 1000, Ticker: "AAPL", Price: "150"})
	s.Put(paxos.Record{Key: 2000, Ticker: "MSFT", Price: "410"})

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, paxos.RoundKey(1000), entries[0].Key)
	assert.Equal(t, paxos.RoundKey(2000), entries[1].Key)
	assert.Equal(t, paxos.RoundKey(3000), entries[2].Key)
}

func TestService_SnapshotRoundTrip(t *testing.T) {
	src := NewService()
	src.Put(paxos.Record{Key: 2000, Ticker: "MSFT", Price: "410.5"})
	src.Put(paxos.Record{Key: 1000, Ticker: "AAPL", Price: "150"})

	entries, err := DecodeSnapshot(src.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, src.Entries(), entries)
}

func TestService_EmptySnapshot(t *testing.T) {
	entries, err := DecodeSnapshot(NewService().Snapshot())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecodeSnapshot_Corrupt(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0x0a, 0x05, 0x01})
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestService_ConcurrentPut(t *testing.T) {
	s := NewService()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Put(paxos.Record{Key: paxos.RoundKey(i), Ticker: "AAPL", Price: "1"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
