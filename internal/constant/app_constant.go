package constant

const (
	// Subject for the analytics event published after each answered question.
	EventQuestionAnswered = "chat.answered"

	// Default title given to a session before its first question arrives.
	DefaultSessionTitle = "Unnamed session"

	// Session titles are cut to this many characters of the first question.
	SessionTitleMaxLen = 60
)
