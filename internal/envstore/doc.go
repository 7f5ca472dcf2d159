// Package envstore holds the in-memory mapping mirrored to a backing .env file.
//
// The mapping keeps insertion (load) order for persistence and is listed
// sorted by key for display. Every successful mutation is followed by a full
// rewrite of the backing file:
//
//   - Add: rejects empty and existing keys
//   - Edit: rejects missing keys; an empty value keeps the current one
//   - Delete: rejects missing keys; requires the confirmation token "y"
//
// Rejected operations never touch the file.
package envstore
