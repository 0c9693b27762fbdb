package contextkeys

// Keys shared between middleware, handlers and the logger. They are plain
// strings because gin stores them in its per-request key map.
const (
	RequestID = "request_id"
	UserID    = "userID"
	UserEmail = "userEmail"
	DB        = "db"
)
