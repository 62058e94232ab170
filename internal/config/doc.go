// Package config resolves the server configuration from a .env file
// and the process environment.
package config
