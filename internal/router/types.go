package router

import "time"

// ActionKind discriminates the resolved intent of one inbound message.
type ActionKind string

const (
	ActionAdd     ActionKind = "ADD_TASK"
	ActionNext    ActionKind = "LIST_UPCOMING"
	ActionToday   ActionKind = "LIST_TODAY"
	ActionDone    ActionKind = "MARK_DONE"
	ActionSnooze  ActionKind = "SNOOZE"
	ActionUsage   ActionKind = "USAGE"
	ActionUnknown ActionKind = "UNKNOWN"
)

// Action is the resolved outcome for one inbound message. Exactly one
// Action is produced per message; the populated fields depend on Kind:
// Text for ADD_TASK (verbatim user text), Ordinal for MARK_DONE and
// SNOOZE, Duration for SNOOZE, Usage for USAGE (the corrective message
// to send back).
type Action struct {
	Kind     ActionKind
	Text     string
	Ordinal  int
	Duration time.Duration
	Usage    string
}
