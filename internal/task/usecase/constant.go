package usecase

// Log prefixes
const (
	logPrefixIntake  = "task/usecase.Intake"
	logPrefixExtract = "task/usecase.extractDrafts"
)

// promptExtractSystem instructs the model to return drafts as strict
// JSON. The current civil time is interpolated so relative phrasing
// ("tomorrow", "this evening") resolves against the user's zone.
const promptExtractSystem = `You are a helpful assistant that extracts tasks from user messages. The current time in Asia/Kolkata is %s. Respond with JSON only, in the shape:
{"tasks": [{"title": "...", "description": "...", "due_iso": "...", "reminder_lead_minutes": 0, "early_reminder_lead_minutes": null, "priority": "high|normal|low", "tags": ["..."]}]}

Rules:
- title is required and short; description is optional extra context.
- due_iso is an ISO 8601 datetime with the +05:30 offset, or null when the user gives no timing. Make a best-effort guess for fuzzy timing: morning = 09:00, afternoon = 15:00, evening = 19:00.
- reminder_lead_minutes is minutes before the due time for the standard reminder; use 0 to remind exactly at the due time; null when unsure.
- early_reminder_lead_minutes is an extra early offset for important tasks (e.g. 30); leave null when not needed.
- priority defaults to "normal"; choose "high" when urgency or importance is implied.
- tags are short lowercase labels like call, payment, work, personal, follow-up.
- Split combined requests into separate tasks.
- When the message contains no actionable task, return {"tasks": []}.`
