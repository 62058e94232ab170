// Package google provides the shared OAuth2 plumbing for the Google
// API clients: the scope set, the OAuth2 configuration, and an HTTP
// client backed by a refresh-token token source. Credentials come from
// the environment; the server never runs an interactive consent flow.
package google
