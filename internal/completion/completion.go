// Package completion provides prefix completion over the current key set.
package completion

import (
	"envmanager/internal/console"
	"strings"
)

// Completer completes input prefixes against a set of keys.
// The key set is replaced wholesale with Update after every mutation,
// never patched in place.
type Completer struct {
	keys []string
}

// New returns a Completer over keys, kept in the given order.
func New(keys []string) *Completer {
	c := &Completer{}
	c.Update(keys)
	return c
}

// Update replaces the key set.
func (c *Completer) Update(keys []string) {
	c.keys = append([]string(nil), keys...)
}

// Complete returns the keys starting with prefix, in key-set order.
// An empty prefix returns every key.
func (c *Completer) Complete(prefix string) []string {
	if prefix == "" {
		return append([]string(nil), c.keys...)
	}
	var matches []string
	for _, k := range c.keys {
		if strings.HasPrefix(k, prefix) {
			matches = append(matches, k)
		}
	}
	return matches
}

// Func adapts the Completer to the console line readers.
func (c *Completer) Func() console.Completer {
	return c.Complete
}
