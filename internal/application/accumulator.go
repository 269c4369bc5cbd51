package application

import (
	"github.com/bnema/logdata/internal/domain"
	"github.com/rs/zerolog"
)

// AccumulatorStats counts the events folded into an Accumulator and the
// anomalies seen along the way. Anomalies never change the accounting.
type AccumulatorStats struct {
	Events            int
	Skipped           int
	OverwrittenStarts int
	UnmatchedEnds     int
	NegativeSessions  int
	ClosedAtFinalize  int
}

// Accumulator pairs session starts and ends per user and keeps a running
// total of logged-in seconds. It is not safe for concurrent use.
type Accumulator struct {
	accounts  []*domain.UserAccount
	index     map[string]int
	stats     AccumulatorStats
	finalized bool
	now       int64
	logger    zerolog.Logger
}

func NewAccumulator(logger zerolog.Logger) *Accumulator {
	return &Accumulator{
		index:  make(map[string]int),
		logger: logger.With().Str("component", "accumulator").Logger(),
	}
}

func (a *Accumulator) RecordEvent(event domain.SessionEvent) {
	switch event.Type {
	case domain.EventSessionStart:
		a.stats.Events++
		a.openSession(domain.NormalizeUsername(event.Username), event.Timestamp)
	case domain.EventSessionEnd:
		a.stats.Events++
		a.endSession(domain.NormalizeUsername(event.Username), event.Timestamp)
	default:
		a.stats.Skipped++
	}
}

func (a *Accumulator) openSession(username string, at int64) {
	account := a.find(username)
	if account == nil {
		account = &domain.UserAccount{Username: username}
		a.index[username] = len(a.accounts)
		a.accounts = append(a.accounts, account)
	} else if account.IsOpen {
		a.stats.OverwrittenStarts++
		a.logger.Debug().
			Str("user", username).
			Int64("opened_at", account.OpenedAt).
			Int64("reopened_at", at).
			Msg("Discarding unmatched session start")
	}

	account.OpenedAt = at
	account.IsOpen = true
}

func (a *Accumulator) endSession(username string, at int64) {
	account := a.find(username)
	if account == nil || !account.IsOpen {
		a.stats.UnmatchedEnds++
		a.logger.Debug().
			Str("user", username).
			Int64("ended_at", at).
			Msg("Ignoring session end without open session")
		return
	}

	a.close(account, at)
}

// close adds the session length to the account total as-is, negative or not.
func (a *Accumulator) close(account *domain.UserAccount, at int64) {
	elapsed := at - account.OpenedAt
	if elapsed < 0 {
		a.stats.NegativeSessions++
		a.logger.Warn().
			Str("user", account.Username).
			Int64("opened_at", account.OpenedAt).
			Int64("closed_at", at).
			Int64("elapsed", elapsed).
			Msg("Session ends before it starts")
	}

	account.TotalDuration += elapsed
	account.IsOpen = false
}

// Finalize closes every open session at now. Sessions already closed are
// left alone, so a second call adds nothing.
func (a *Accumulator) Finalize(now int64) {
	for _, account := range a.accounts {
		if !account.IsOpen {
			continue
		}
		a.stats.ClosedAtFinalize++
		a.close(account, now)
	}

	a.finalized = true
	a.now = now
}

// FinalizedAt reports the timestamp passed to Finalize.
func (a *Accumulator) FinalizedAt() (int64, bool) {
	return a.now, a.finalized
}

// Lookup matches username exactly after cutting it to the stored width.
func (a *Accumulator) Lookup(username string) (domain.UserAccount, bool) {
	account := a.find(domain.NormalizeUsername(username))
	if account == nil {
		return domain.UserAccount{}, false
	}

	return *account, true
}

// AllAccounts returns a copy of every account in first-seen order.
func (a *Accumulator) AllAccounts() []domain.UserAccount {
	accounts := make([]domain.UserAccount, 0, len(a.accounts))
	for _, account := range a.accounts {
		accounts = append(accounts, *account)
	}

	return accounts
}

func (a *Accumulator) Stats() AccumulatorStats {
	return a.stats
}

func (a *Accumulator) find(username string) *domain.UserAccount {
	i, ok := a.index[username]
	if !ok {
		return nil
	}

	return a.accounts[i]
}
