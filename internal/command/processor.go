package command

import (
	"context"                    // Context for store and price operations
	"crypto_bot/internal/domain" // Importing domain models
	"crypto_bot/internal/price"  // Price lookup
	"crypto_bot/internal/store"  // User store
	"errors"                     // Sentinel error matching
	"fmt"                        // Reply formatting
	"sort"                       // Deterministic summary ordering
	"strings"                    // Reply assembly
	"sync"                       // Serializing store access

	"github.com/sirupsen/logrus" // Logging library
)

// Processor turns one inbound text message into one reply. It owns the
// load-mutate-save cycle against the store and the price lookups.
type Processor struct {
	mu     sync.Mutex    // Serializes overlapping webhook deliveries
	store  store.Store   // User store
	prices price.Service // Price lookup
	rate   float64       // USD to local currency multiplier
}

// NewProcessor returns a processor over the given store and price service
func NewProcessor(st store.Store, prices price.Service, rate float64) *Processor {
	return &Processor{store: st, prices: prices, rate: rate}
}

// Handle processes one text event and returns the reply to send. A returned
// error means an internal fault; the caller logs it and replies generically.
func (p *Processor) Handle(ctx context.Context, userID, text string) (string, error) {
	// Overlapping deliveries would each load a stale snapshot and overwrite
	// the other's update, so the whole cycle runs under one lock.
	p.mu.Lock()
	defer p.mu.Unlock()

	users, err := p.store.Load(ctx) // Load the full store snapshot
	if err != nil {
		return "", fmt.Errorf("load store: %w", err)
	}
	rec, ok := users[userID]
	// First contact creates the record lazily with defaults
	if !ok {
		rec = domain.NewUserRecord()
		users[userID] = rec
	}

	cmd, err := Parse(text) // Parse the message into a typed command
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			return usage.Message, nil // User-correctable, answered with usage text
		}
		return "", err
	}

	// Dispatch over the closed command set
	switch cmd.Kind {
	case KindAdd:
		return p.handleAdd(ctx, userID, users, rec, cmd)
	case KindSetGoal:
		return p.handleSetGoal(ctx, userID, users, rec, cmd)
	case KindStatus:
		return p.handleStatus(ctx, rec)
	default:
		return MsgHelp, nil
	}
}

// handleAdd overwrites one holding and persists the store
func (p *Processor) handleAdd(ctx context.Context, userID string, users map[string]*domain.UserRecord, rec *domain.UserRecord, cmd Command) (string, error) {
	rec.Assets[cmd.Symbol] = cmd.Amount // Overwrite, not additive
	if err := p.store.Save(ctx, users); err != nil {
		return "", fmt.Errorf("save store: %w", err)
	}
	// Log the mutation
	logrus.WithFields(logrus.Fields{
		"user_id": userID,     // User identifier
		"symbol":  cmd.Symbol, // Asset symbol
		"amount":  cmd.Amount, // Held quantity
	}).Info("Holding updated")
	// Confirm with the uppercased symbol and the amount as given
	return fmt.Sprintf("Saved %s = %s", strings.ToUpper(cmd.Symbol), cmd.AmountText), nil
}

// handleSetGoal overwrites the goal and persists the store
func (p *Processor) handleSetGoal(ctx context.Context, userID string, users map[string]*domain.UserRecord, rec *domain.UserRecord, cmd Command) (string, error) {
	rec.Goal = cmd.Goal // Overwrite the goal
	if err := p.store.Save(ctx, users); err != nil {
		return "", fmt.Errorf("save store: %w", err)
	}
	// Log the mutation
	logrus.WithFields(logrus.Fields{
		"user_id": userID,   // User identifier
		"goal":    cmd.Goal, // New goal
	}).Info("Goal updated")
	return fmt.Sprintf("Goal set to %d", cmd.Goal), nil
}

// handleStatus fetches prices for the user's holdings and builds the summary.
// Status never mutates or persists the store.
func (p *Processor) handleStatus(ctx context.Context, rec *domain.UserRecord) (string, error) {
	if len(rec.Assets) == 0 {
		return MsgNoHoldings, nil // Nothing tracked, no price lookup performed
	}

	// Resolve symbols to provider identifiers; unresolvable ones are dropped
	symbols := make([]string, 0, len(rec.Assets))
	ids := make([]string, 0, len(rec.Assets))
	idOf := make(map[string]string, len(rec.Assets))
	for sym := range rec.Assets {
		symbols = append(symbols, sym)
		if id, ok := price.Resolve(sym); ok {
			ids = append(ids, id)
			idOf[sym] = id
		}
	}
	if len(ids) == 0 {
		return MsgUnrecognized, nil // Nothing usable, no price lookup performed
	}
	sort.Strings(symbols) // Deterministic line order in the summary

	quotes, err := p.prices.Fetch(ctx, ids) // One batch request per status call
	if errors.Is(err, price.ErrRateLimit) {
		return MsgRateLimited, nil // Throttled upstream gets its own reply
	} else if err != nil {
		logrus.WithField("error", err.Error()).Error("Price lookup failed")
		return MsgPriceFailed, nil
	}

	// Value each priced holding; symbols without a returned price are skipped
	var lines []string
	var totalUSD float64
	for _, sym := range symbols {
		id, ok := idOf[sym]
		if !ok {
			continue // Not in the allow-list
		}
		quote, ok := quotes[id]
		if !ok {
			continue // No price available for this asset
		}
		qty := rec.Assets[sym]
		value := quote.USD * qty
		totalUSD += value
		lines = append(lines, fmt.Sprintf("%s: %g x $%.2f = $%.2f", strings.ToUpper(sym), qty, quote.USD, value))
	}

	totalLocal := totalUSD * p.rate // Fixed-rate conversion to local currency
	percent := "N/A"                // Reported as N/A until a positive goal is set
	if rec.Goal > 0 {
		percent = fmt.Sprintf("%.2f%%", totalLocal/float64(rec.Goal)*100)
	}
	lines = append(lines, fmt.Sprintf("Total: $%.2f (NT$%.2f)", totalUSD, totalLocal))
	lines = append(lines, "Goal progress: "+percent)
	return strings.Join(lines, "\n"), nil
}
