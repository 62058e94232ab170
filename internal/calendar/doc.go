// Package calendar provides a client for interacting with the Google
// Calendar API.
//
// All operations target the primary calendar of a single delegated
// account: listing upcoming events as reduced summaries, creating
// events with attendees, applying partial updates that leave
// unmentioned fields untouched, and deleting events.
//
// Timed event boundaries are paired with the IANA time zone the client
// was configured with, so callers pass bare RFC3339 datetimes.
package calendar
