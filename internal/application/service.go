package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/logdata/internal/domain"
	"github.com/bnema/logdata/internal/ports"
	"github.com/rs/zerolog"
)

type Service struct {
	clock  ports.Clock
	users  ports.UserResolver
	logger zerolog.Logger
}

func NewService(clock ports.Clock, users ports.UserResolver, logger zerolog.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		clock:  clock,
		users:  users,
		logger: logger,
	}
}

// Ingest folds every event of source into a new Accumulator, in order, and
// closes the sessions still open at the end with the current time.
func (s *Service) Ingest(ctx context.Context, source ports.RecordSource) (*Accumulator, error) {
	acc := NewAccumulator(s.logger)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		event, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read session record: %w", err)
		}

		acc.RecordEvent(event)
	}

	acc.Finalize(s.clock.Now().Unix())

	stats := acc.Stats()
	s.logger.Info().
		Int("events", stats.Events).
		Int("skipped", stats.Skipped).
		Int("users", len(acc.accounts)).
		Int("open_at_end", stats.ClosedAtFinalize).
		Msg("Session log ingested")

	return acc, nil
}

func (s *Service) Report(acc *Accumulator, query ReportQuery) (Report, error) {
	report := Report{Mode: query.Mode()}
	if now, ok := acc.FinalizedAt(); ok {
		report.AsOf = time.Unix(now, 0).UTC()
	}

	switch report.Mode {
	case SelectAll:
		for _, account := range acc.AllAccounts() {
			report.Rows = append(report.Rows, rowFromAccount(account))
		}
	case SelectUsers:
		for _, username := range query.Usernames {
			report.Rows = append(report.Rows, lookupRow(acc, username))
		}
	default:
		username, err := s.currentUsername()
		if err != nil {
			return Report{}, err
		}
		report.Rows = append(report.Rows, lookupRow(acc, username))
	}

	if query.Sum {
		var total int64
		for _, row := range report.Rows {
			total += row.Seconds
		}
		report.Total = &total
	}

	return report, nil
}

func (s *Service) currentUsername() (string, error) {
	if s.users == nil {
		return "", domain.ErrCurrentUserUnknown
	}

	username, err := s.users.CurrentUsername()
	if err != nil {
		return "", fmt.Errorf("resolve current user: %w", err)
	}
	if username == "" {
		return "", domain.ErrCurrentUserUnknown
	}

	return username, nil
}

func lookupRow(acc *Accumulator, username string) ReportRow {
	account, ok := acc.Lookup(username)
	if !ok {
		return ReportRow{Username: username}
	}

	return rowFromAccount(account)
}

func rowFromAccount(account domain.UserAccount) ReportRow {
	return ReportRow{
		Username: account.Username,
		Seconds:  account.TotalDuration,
		Known:    true,
	}
}
