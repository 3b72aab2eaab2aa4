package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"paxosbot/internal/announce"
	"paxosbot/internal/configuration"
	"paxosbot/internal/logging"
	"paxosbot/internal/paxos"
	"paxosbot/internal/quote"
	"paxosbot/internal/transport"
	"paxosbot/internal/transport/handler"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const historyCommand = "history"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := configuration.Load(configuration.ConfigDir())
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.App.LogLevel)

	c := &client{
		cfg:    cfg,
		quotes: quote.NewClient(&cfg.Quote),
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
	}

	if cfg.Announce.Enabled {
		a, err := announce.New(&cfg.Announce)
		if err != nil {
			slog.Warn("announcements disabled", "error", err)
		} else {
			c.announcer = a
			go func() {
				if err := a.Listen(ctx, func(msg string) { fmt.Fprintln(os.Stdout, msg) }); err != nil {
					slog.Warn("announcement listener stopped", "error", err)
				}
			}()
		}
	}

	if err := c.loop(ctx); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("client stopped", "error", err)
		os.Exit(1)
	}
}

type client struct {
	cfg       *configuration.Properties
	quotes    *quote.Client
	announcer *announce.Announcer
	in        *bufio.Scanner
	out       io.Writer
}

func (c *client) loop(ctx context.Context) error {
	for ctx.Err() == nil {
		if c.announcer != nil {
			if err := c.announcer.Announce(); err != nil {
				slog.Warn("announcement failed", "error", err)
			} else {
				fmt.Fprintln(c.out, "Successfully sent out multicast message!")
			}
		}

		port, err := c.prompt("Enter the proposer port you want to connect to: ")
		if err != nil {
			return err
		}
		if _, err := configuration.ParsePort(port); err != nil {
			fmt.Fprintf(c.out, "Invalid port %q: %v\n", port, err)
			continue
		}

		ticker, err := c.prompt(fmt.Sprintf("Enter the ticker symbol whose price you want to query (or %q): ", historyCommand))
		if err != nil {
			return err
		}

		c.handle(ctx, net.JoinHostPort(c.cfg.Transport.Address, port), ticker)
	}
	return ctx.Err()
}

func (c *client) handle(ctx context.Context, endpoint, ticker string) {
	replica, err := transport.Dial(endpoint, &c.cfg.Transport)
	if err != nil {
		fmt.Fprintln(c.out, "Remote call failed.")
		slog.Debug("dial failed", "endpoint", endpoint, "error", err)
		return
	}
	defer replica.Close()

	if strings.EqualFold(ticker, historyCommand) {
		c.printHistory(ctx, replica)
		return
	}

	symbol, err := c.quotes.Normalize(ticker)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid ticker or operation.")
		return
	}

	price, err := c.quotes.Price(ctx, symbol)
	if err != nil {
		fmt.Fprintf(c.out, "Price lookup failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Current Price : %s\n", price)

	rec := paxos.Record{Key: paxos.RoundKey(time.Now().UnixMilli()), Ticker: symbol, Price: price}
	status, decided, err := replica.CreateRecord(ctx, rec)
	if err != nil {
		fmt.Fprintln(c.out, "Remote call failed.")
		slog.Debug("create record failed", "endpoint", endpoint, "error", err)
		return
	}

	if status != handler.StatusSuccess {
		fmt.Fprintln(c.out, "Chat History not saved for this operation.")
		return
	}
	if decided != rec {
		fmt.Fprintf(c.out, "Round settled on an earlier value: %s\n", decided.Value())
	}
	fmt.Fprintln(c.out, "Chat History saved for this operation.")
}

func (c *client) printHistory(ctx context.Context, replica *transport.PeerClient) {
	entries, err := replica.ListHistory(ctx)
	if err != nil {
		fmt.Fprintln(c.out, "Remote call failed.")
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "Chat history is empty.")
		return
	}
	for _, rec := range entries {
		at := time.UnixMilli(int64(rec.Key)).Format(time.DateTime)
		fmt.Fprintf(c.out, "%s  %s (%s)\n", at, rec.Value(), strconv.FormatInt(int64(rec.Key), 10))
	}
}

func (c *client) prompt(question string) (string, error) {
	fmt.Fprint(c.out, question)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
