package configuration

import (
	"paxosbot/internal/paxos"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ports = []string{"5001", "5002", "5003", "5004", "5005"}

func withArgs(extra ...string) []string {
	return append(append([]string{}, ports...), extra...)
}

func TestParseServerArgs_Plain(t *testing.T) {
	args, err := ParseServerArgs(withArgs("3"))
	require.NoError(t, err)

	assert.Equal(t, []int{5001, 5002, 5003, 5004, 5005}, args.Ports)
	assert.Equal(t, 5003, args.Port())
	assert.Equal(t, "127.0.0.1:5003", args.Self("127.0.0.1"))
	assert.Equal(t, paxos.CrashNone, args.Crash)
	assert.Equal(t, paxos.FailureInjection{}, args.Injection("127.0.0.1"))
	assert.Equal(t, []string{
		"127.0.0.1:5001", "127.0.0.1:5002", "127.0.0.1:5003", "127.0.0.1:5004", "127.0.0.1:5005",
	}, args.Endpoints("127.0.0.1"))
}

func TestParseServerArgs_CrashTags(t *testing.T) {
	cases := map[string]paxos.CrashMode{
		"CrashInPhase1": paxos.CrashInPhase1,
		"crashinphase2": paxos.CrashInPhase2,
		"crashP1":       paxos.CrashInPhase1,
		"CRASHP2":       paxos.CrashInPhase2,
	}
	for tag, want := range cases {
		t.Run(tag, func(t *testing.T) {
			args, err := ParseServerArgs(withArgs("1", tag, "5002", "5003"))
			require.NoError(t, err)
			assert.Equal(t, want, args.Crash)

			inj := args.Injection("localhost")
			assert.Equal(t, want, inj.Mode)
			assert.Equal(t, [2]string{"localhost:5002", "localhost:5003"}, inj.Victims)
		})
	}
}

func TestParseServerArgs_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"too few", ports, ErrArgCount},
		{"seven args", withArgs("1", "CrashInPhase1"), ErrArgCount},
		{"port below range", []string{"1023", "5002", "5003", "5004", "5005", "1"}, ErrInvalidPort},
		{"port above range", []string{"5001", "65536", "5003", "5004", "5005", "1"}, ErrInvalidPort},
		{"port not a number", []string{"5001", "abc", "5003", "5004", "5005", "1"}, ErrInvalidPort},
		{"duplicate port", []string{"5001", "5001", "5003", "5004", "5005", "1"}, ErrDuplicate},
		{"index zero", withArgs("0"), ErrIndex},
		{"index six", withArgs("6"), ErrIndex},
		{"index not a number", withArgs("x"), ErrIndex},
		{"unknown tag", withArgs("1", "CrashInPhase3", "5002", "5003"), ErrCrashTag},
		{"victim outside set", withArgs("1", "CrashInPhase1", "5002", "6000"), ErrVictim},
		{"victim invalid", withArgs("1", "CrashInPhase1", "80", "5003"), ErrInvalidPort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseServerArgs(tc.args)
			require.ErrorIs(t, err, tc.want)

			var argErr *ArgError
			assert.ErrorAs(t, err, &argErr)
		})
	}
}

func TestParsePort_Bounds(t *testing.T) {
	p, err := ParsePort("1024")
	require.NoError(t, err)
	assert.Equal(t, 1024, p)

	p, err = ParsePort("65535")
	require.NoError(t, err)
	assert.Equal(t, 65535, p)
}
