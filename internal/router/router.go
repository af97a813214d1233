package router

import (
	"regexp"
	"strconv"
	"strings"

	"taskping/pkg/datemath"
)

// Router resolves one inbound message into one Action. Implementations
// hold no cross-message state.
type Router interface {
	Resolve(text string) Action
}

// interpreter is a first-match-wins rule list. Rule order is a designed
// priority: command-prefix rules beat phrase rules beat the catch-all.
type interpreter struct {
	markDonePattern  *regexp.Regexp
	plainDonePattern *regexp.Regexp
}

var _ Router = (*interpreter)(nil)

// New creates the command interpreter.
func New() Router {
	return &interpreter{
		markDonePattern:  regexp.MustCompile(`mark\s+task\s+(\d+)\s+as\s+done`),
		plainDonePattern: regexp.MustCompile(`done\s+(\d+)`),
	}
}

// Resolve classifies the text. Free text that matches nothing more
// specific always resolves to an add-intent with the original text
// preserved verbatim.
func (r *interpreter) Resolve(text string) Action {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, CommandPrefix) {
		return r.resolveCommand(text)
	}

	normalized := strings.ToLower(text)

	if strings.Contains(normalized, "what's next") ||
		strings.Contains(normalized, "whats next") ||
		strings.Contains(normalized, "what is next") ||
		strings.Contains(normalized, "next task") {
		return Action{Kind: ActionNext}
	}

	if strings.Contains(normalized, "show me") && strings.Contains(normalized, "today") {
		return Action{Kind: ActionToday}
	}

	if m := r.markDonePattern.FindStringSubmatch(normalized); m != nil {
		ordinal, _ := strconv.Atoi(m[1])
		return Action{Kind: ActionDone, Ordinal: ordinal}
	}

	if m := r.plainDonePattern.FindStringSubmatch(normalized); m != nil {
		ordinal, _ := strconv.Atoi(m[1])
		return Action{Kind: ActionDone, Ordinal: ordinal}
	}

	return Action{Kind: ActionAdd, Text: text}
}

// resolveCommand dispatches "/verb remainder" through the fixed verb
// table.
func (r *interpreter) resolveCommand(text string) Action {
	parts := strings.Fields(text)
	verb := parts[0]
	payload := strings.TrimSpace(strings.TrimPrefix(text, verb))

	switch verb {
	case VerbAdd:
		if payload == "" {
			return Action{Kind: ActionUsage, Usage: UsageAdd}
		}
		return Action{Kind: ActionAdd, Text: payload}

	case VerbNext:
		return Action{Kind: ActionNext}

	case VerbToday:
		return Action{Kind: ActionToday}

	case VerbDone:
		ordinal, err := strconv.Atoi(payload)
		if err != nil || ordinal < 1 {
			return Action{Kind: ActionUsage, Usage: UsageDone}
		}
		return Action{Kind: ActionDone, Ordinal: ordinal}

	case VerbSnooze:
		args := strings.Fields(payload)
		if len(args) != 2 {
			return Action{Kind: ActionUsage, Usage: UsageSnooze}
		}
		ordinal, err := strconv.Atoi(args[0])
		d, ok := datemath.ParseOffset(args[1])
		if err != nil || ordinal < 1 || !ok {
			return Action{Kind: ActionUsage, Usage: MsgBadSnooze}
		}
		return Action{Kind: ActionSnooze, Ordinal: ordinal, Duration: d}
	}

	return Action{Kind: ActionUnknown}
}
