package pager

// User-facing console messages.
const (
	MsgNoRecords   = "No records found"
	MsgTryAgain    = "Invalid input, please try again"
	MsgAutoExit    = "Invalid input, auto exit"
	MsgNoMorePages = "No more pages, auto exit"
	MsgExiting     = "Exiting..."
	MsgSelect      = "Select: "
)
