package messages

import "time"

// Message is one entry in an advisor/client thread. Messages live only for
// the lifetime of the process; the portal does not persist them.
type Message struct {
	ID        string
	ClientID  string
	Sender    string
	Role      string
	Content   string
	Timestamp time.Time
}
