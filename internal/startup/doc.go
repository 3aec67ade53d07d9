// Package startup loads and validates runtime configuration from
// environment variables, optionally seeded from a .env file.
package startup
