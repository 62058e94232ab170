// Package gmail provides a client for interacting with the Gmail API.
//
// The package covers the email operations exposed by the MCP tool
// surface:
//   - Listing and searching messages, expanding each listed ID into a
//     reduced detail record (subject, sender, date, plain-text body,
//     labels) with bounded concurrent fetches
//   - Sending plain-text emails, including the RFC 2822 assembly and
//     base64url raw encoding the API expects
//   - Adding and removing labels on individual messages
//
// Authentication is handled outside this package: callers construct the
// client with an already-authenticated HTTP client (see the google
// package) or with explicit Google API client options in tests.
package gmail
