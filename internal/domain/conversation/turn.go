package conversation

// Status values reported to callers.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Caller-facing error messages.
const (
	MessageMissingCredential = "API key not configured"
	MessageGenericFailure    = "Failed to process conversation"
)

// HistoryEntry is one prior message as sent by the caller.
type HistoryEntry map[string]any

// Turn is one chat turn. History and Data are accepted but not used in the prompt.
type Turn struct {
	UserMessage string
	History     []HistoryEntry
	CurrentStep int
	Data        map[string]any
}

// Result is the outcome of a turn. Reply is only meaningful on success.
type Result struct {
	Status  string
	Reply   string
	Message string
}

// AdvanceStep is always false; step advancement belongs to the caller.
func (Result) AdvanceStep() bool {
	return false
}

func success(reply string) Result {
	return Result{Status: StatusSuccess, Reply: reply}
}

func failure(message string) Result {
	return Result{Status: StatusError, Message: message}
}
