package configuration

import (
	"errors"
	"fmt"
	"net"
	"paxosbot/internal/paxos"
	"slices"
	"strconv"
)

const (
	MinPort = 1024
	MaxPort = 65535
)

var (
	ErrArgCount    = errors.New("expected 5 ports and an index, optionally followed by a crash tag and 2 victim ports")
	ErrInvalidPort = errors.New("port must be a number between 1024 and 65535")
	ErrDuplicate   = errors.New("ports must be distinct")
	ErrIndex       = errors.New("index must be a number between 1 and 5")
	ErrCrashTag    = errors.New("crash tag must be CrashInPhase1 or CrashInPhase2")
	ErrVictim      = errors.New("victim ports must be among the 5 replica ports")
)

// ArgError is a startup argument problem. The server exits before serving.
type ArgError struct {
	Arg   string
	Value string
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("argument %s=%q: %v", e.Arg, e.Value, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

type ServerArgs struct {
	Ports   []int
	// Index is 1-based into Ports.
	Index   int
	Crash   paxos.CrashMode
	Victims [2]int
}

// Port is the port this replica listens on.
func (a ServerArgs) Port() int {
	return a.Ports[a.Index-1]
}

// Endpoints joins every replica port with host, in argument order.
func (a ServerArgs) Endpoints(host string) []string {
	out := make([]string, len(a.Ports))
	for i, p := range a.Ports {
		out[i] = net.JoinHostPort(host, strconv.Itoa(p))
	}
	return out
}

func (a ServerArgs) Self(host string) string {
	return net.JoinHostPort(host, strconv.Itoa(a.Port()))
}

func (a ServerArgs) Injection(host string) paxos.FailureInjection {
	if a.Crash == paxos.CrashNone {
		return paxos.FailureInjection{}
	}
	return paxos.FailureInjection{
		Mode: a.Crash,
		Victims: [2]string{
			net.JoinHostPort(host, strconv.Itoa(a.Victims[0])),
			net.JoinHostPort(host, strconv.Itoa(a.Victims[1])),
		},
	}
}

// ParseServerArgs validates `<p1> <p2> <p3> <p4> <p5> <index> [<crash-tag> <victim1> <victim2>]`.
func ParseServerArgs(args []string) (ServerArgs, error) {
	if len(args) != 6 && len(args) != 9 {
		return ServerArgs{}, &ArgError{Arg: "args", Value: strconv.Itoa(len(args)), Err: ErrArgCount}
	}

	var out ServerArgs
	for i := range paxos.ReplicaCount {
		port, err := ParsePort(args[i])
		if err != nil {
			return ServerArgs{}, &ArgError{Arg: fmt.Sprintf("port%d", i+1), Value: args[i], Err: err}
		}
		if slices.Contains(out.Ports, port) {
			return ServerArgs{}, &ArgError{Arg: fmt.Sprintf("port%d", i+1), Value: args[i], Err: ErrDuplicate}
		}
		out.Ports = append(out.Ports, port)
	}

	index, err := strconv.Atoi(args[5])
	if err != nil || index < 1 || index > paxos.ReplicaCount {
		return ServerArgs{}, &ArgError{Arg: "index", Value: args[5], Err: ErrIndex}
	}
	out.Index = index

	if len(args) == 6 {
		return out, nil
	}

	mode, err := paxos.ParseCrashMode(args[6])
	if err != nil {
		return ServerArgs{}, &ArgError{Arg: "crash-tag", Value: args[6], Err: ErrCrashTag}
	}
	out.Crash = mode

	for i, raw := range args[7:9] {
		name := fmt.Sprintf("victim%d", i+1)
		port, err := ParsePort(raw)
		if err != nil {
			return ServerArgs{}, &ArgError{Arg: name, Value: raw, Err: err}
		}
		if !slices.Contains(out.Ports, port) {
			return ServerArgs{}, &ArgError{Arg: name, Value: raw, Err: ErrVictim}
		}
		out.Victims[i] = port
	}

	return out, nil
}

func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < MinPort || port > MaxPort {
		return 0, ErrInvalidPort
	}
	return port, nil
}
