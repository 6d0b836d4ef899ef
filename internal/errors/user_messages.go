package errors

// User-friendly error messages
const (
	MsgLoadFailed        = "Failed to load properties. Is the backend running?"
	MsgSubmitFailed      = "Something went wrong. Please try again."
	MsgInvalidParameters = "The provided parameters are invalid. Please check your input and try again."
	MsgPropertyNotInView = "That property is no longer in your results. Please search again."
	MsgInvalidState      = "That action is not available right now."
	MsgRateLimited       = "You're searching too quickly! Please wait a moment and try again."
	MsgInternalError     = "Something went wrong on our end. Please try again later."
)
