package router

// Command grammar.
const (
	CommandPrefix = "/"

	VerbAdd    = "/add"
	VerbNext   = "/next"
	VerbToday  = "/today"
	VerbDone   = "/done"
	VerbSnooze = "/snooze"
)

// Corrective usage messages for malformed commands.
const (
	UsageAdd    = "Usage: /add Pay rent tomorrow 10am"
	UsageDone   = "Usage: /done 2"
	UsageSnooze = "Usage: /snooze 3 2h"

	MsgBadSnooze = "Couldn't understand that snooze request."
	MsgUnknown   = "I don't know that command yet. Try /add, /next, /today, /done, /snooze."
)
