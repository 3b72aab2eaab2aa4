package paxos

import (
	"fmt"
	"strconv"
	"strings"
)

// RoundKey scopes one consensus round. Clients use the request timestamp.
type RoundKey int64

type Record struct {
	Key    RoundKey
	Ticker string
	Price  string
}

func (r Record) Validate() error {
	if r.Ticker == "" || strings.ContainsAny(r.Ticker, " \t\n") {
		return fmt.Errorf("%w: ticker %q", ErrInvalidRecord, r.Ticker)
	}
	if r.Price == "" || strings.ContainsAny(r.Price, " \t\n") {
		return fmt.Errorf("%w: price %q", ErrInvalidRecord, r.Price)
	}
	return nil
}

// Value is the form a record takes in the history: "<ticker> <price>".
func (r Record) Value() string {
	return r.Ticker + " " + r.Price
}

// Encode renders the record as "<key> <ticker> <price>".
func (r Record) Encode() string {
	return strconv.FormatInt(int64(r.Key), 10) + " " + r.Value()
}

func (r Record) String() string {
	return r.Encode()
}

// Accepted is the last value an acceptor accepted for a key.
type Accepted struct {
	ProposalID ProposalID
	Record     Record
}

// Promise is an acceptor's answer to RequestPromise. Prior carries the
// piggybacked value, if the acceptor had accepted one for the key.
type Promise struct {
	Granted    bool
	ProposalID ProposalID
	Prior      *Accepted
}

// Encode renders the promise in the space-delimited reply format:
// "fail", "<id> null" or "<id> <priorId> <key> <ticker> <price>".
func (p Promise) Encode() string {
	if !p.Granted {
		return "fail"
	}
	if p.Prior == nil {
		return p.ProposalID.String() + " null"
	}
	return fmt.Sprintf("%d %d %s", p.ProposalID, p.Prior.ProposalID, p.Prior.Record.Encode())
}

