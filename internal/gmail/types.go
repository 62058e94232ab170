package gmail

// OutgoingMessage represents an email to be sent.
// Cc and Bcc are optional; an empty string omits the header entirely.
type OutgoingMessage struct {
	To      string
	Subject string
	Body    string
	Cc      string
	Bcc     string
}

// MessageDetail is the reduced view of a fetched Gmail message.
// Subject, From and Date come from the first exactly-matching payload header
// and are empty when the header is absent.
type MessageDetail struct {
	ID      string   `json:"id"`
	Subject string   `json:"subject"`
	From    string   `json:"from"`
	Date    string   `json:"date"`
	Body    string   `json:"body"`
	Labels  []string `json:"labels,omitempty"`
}
