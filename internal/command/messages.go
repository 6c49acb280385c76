package command

// User-facing reply texts
const (
	// MsgHelp lists the three commands, sent for anything unrecognized
	MsgHelp = "Commands:\n" +
		"/add <symbol> <amount> - track a holding\n" +
		"/setgoal <amount> - set your goal in local currency\n" +
		"/status - show your portfolio value"
	// MsgAddUsage is the reply for malformed /add arguments
	MsgAddUsage = "Usage: /add <symbol> <amount>, e.g. /add btc 0.5"
	// MsgGoalUsage is the reply for malformed /setgoal arguments
	MsgGoalUsage = "Usage: /setgoal <amount>, e.g. /setgoal 1000000"
	// MsgNoHoldings is the reply for /status before anything is tracked
	MsgNoHoldings = "No holdings yet. Use /add <symbol> <amount> to track one."
	// MsgUnrecognized is the reply when no tracked symbol is in the allow-list
	MsgUnrecognized = "None of your symbols are recognized, so no prices are available."
	// MsgRateLimited is the reply when the price provider throttles us
	MsgRateLimited = "Price lookups are too frequent right now, please try again later."
	// MsgPriceFailed is the reply for any other price provider failure
	MsgPriceFailed = "Could not fetch prices right now, please try again later."
	// MsgInternal is the reply when handling an event fails unexpectedly
	MsgInternal = "Something went wrong, please try again later."
)
