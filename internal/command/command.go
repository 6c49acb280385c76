package command

import (
	"math"    // Finite number check
	"strconv" // Number parsing
	"strings" // Message splitting
)

// Kind identifies one of the closed set of commands
type Kind int

// The commands the bot understands
const (
	KindHelp    Kind = iota // Anything that is not a known command
	KindAdd                 // /add <symbol> <amount>
	KindSetGoal             // /setgoal <amount>
	KindStatus              // /status
)

// Command is one parsed message
type Command struct {
	Kind       Kind    // Which command this is
	Symbol     string  // Lowercase asset symbol (add only)
	Amount     float64 // Held quantity (add only)
	AmountText string  // Amount exactly as the user typed it (add only)
	Goal       int64   // Target net worth (setgoal only)
}

// UsageError reports malformed command arguments. It is user-correctable and
// always answered with a usage message, never logged as a system fault.
type UsageError struct {
	Message string // The usage reply to send back
}

// Error returns the user-facing usage message
func (e *UsageError) Error() string { return e.Message }

// usageError builds a UsageError with the given reply
func usageError(msg string) *UsageError {
	return &UsageError{Message: msg}
}

// Parse splits one message text into a Command. Malformed arguments yield a
// *UsageError; unknown or missing command words fall through to KindHelp.
func Parse(text string) (Command, error) {
	parts := strings.Fields(strings.TrimSpace(text)) // Split on whitespace
	if len(parts) == 0 {
		return Command{Kind: KindHelp}, nil // Empty message gets the help reply
	}
	// The command token is matched verbatim
	switch parts[0] {
	case "/add":
		if len(parts) < 3 || parts[1] == "" {
			return Command{}, usageError(MsgAddUsage)
		}
		amount, err := strconv.ParseFloat(parts[2], 64)
		// The amount must be a finite, non-negative quantity
		if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) || amount < 0 {
			return Command{}, usageError(MsgAddUsage)
		}
		return Command{
			Kind:       KindAdd,
			Symbol:     strings.ToLower(parts[1]), // Asset keys are lowercase
			Amount:     amount,
			AmountText: parts[2], // Echoed back verbatim in the confirmation
		}, nil
	case "/setgoal":
		if len(parts) < 2 {
			return Command{}, usageError(MsgGoalUsage)
		}
		goal, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Command{}, usageError(MsgGoalUsage)
		}
		return Command{Kind: KindSetGoal, Goal: goal}, nil
	case "/status":
		return Command{Kind: KindStatus}, nil
	}
	return Command{Kind: KindHelp}, nil // Unknown commands get the help reply
}
