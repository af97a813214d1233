package telegram

// User-facing reply texts.
const (
	msgVoiceFailed   = "Couldn't understand that voice note, please try again."
	msgNothingToDo   = "Send a task or command so I can help."
	msgNoTasksFound  = "I couldn't find any tasks in that message."
	msgSaveFailed    = "Something went wrong while saving your task."
	msgAllCaughtUp   = "You're all caught up ✅"
	msgNoneDueToday  = "No tasks due today 🎉"
	msgTaskNotFound  = "Couldn't find that task."
	msgSnoozeMissing = "Task not found."
)
