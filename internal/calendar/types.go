package calendar

// EventTime is one boundary of an event: either a timed instant
// (DateTime plus the zone it is expressed in) or an all-day Date.
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// EventSummary is the reduced event view returned when listing events.
type EventSummary struct {
	ID       string     `json:"id"`
	Summary  string     `json:"summary"`
	Start    *EventTime `json:"start,omitempty"`
	End      *EventTime `json:"end,omitempty"`
	Location string     `json:"location,omitempty"`
}

// EventInput carries the fields for creating an event. Start and End
// are RFC3339 datetimes; the client pairs them with its configured
// time zone.
type EventInput struct {
	Summary     string
	Start       string
	End         string
	Location    string
	Description string
	Attendees   []string
}

// EventPatch carries a partial update. A zero value means "leave the
// field untouched": empty strings and nil slices are never written to
// the outgoing patch, so omission and clearing stay distinct.
type EventPatch struct {
	Summary     string
	Start       string
	End         string
	Location    string
	Description string
	Attendees   []string
}

// ListQuery selects the events to list. TimeMin and TimeMax are
// RFC3339 datetimes; TimeMax is optional.
type ListQuery struct {
	TimeMin    string
	TimeMax    string
	MaxResults int64
}
