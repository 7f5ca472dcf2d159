package envstore

import (
	"context"
	"envmanager/internal/constants"
	"envmanager/internal/envfile"
	"envmanager/internal/logger"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Entry is a key and its value.
type Entry = envfile.Pair

// Store is the ordered mapping backed by a single file.
// It is not safe for concurrent use.
type Store struct {
	path   string
	keys   []string
	values map[string]string
	exists bool
}

// New returns an empty store for path. Nothing is read until Load.
func New(path string) *Store {
	return &Store{
		path:   path,
		values: make(map[string]string),
	}
}

// Open creates a store for path and loads it.
func Open(ctx context.Context, path string) (*Store, error) {
	s := New(path)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Exists reports whether the backing file was present at the last Load or has been saved since.
func (s *Store) Exists() bool {
	return s.exists
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.keys)
}

// Keys returns the keys in persistence order.
func (s *Store) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Get returns the value for key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Load replaces the mapping with the contents of the backing file.
// A missing file yields an empty mapping and no error.
// Later duplicates overwrite earlier values but keep the first position.
func (s *Store) Load(ctx context.Context) error {
	s.keys = nil
	s.values = make(map[string]string)

	pairs, err := envfile.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.exists = false
			logger.Info(ctx, "File '{{_File_}}%s{{|-|}}' not found, starting empty.", s.path)
			return nil
		}
		return fmt.Errorf("failed to read env file %s: %w", s.path, err)
	}

	s.exists = true
	for _, p := range pairs {
		if _, dup := s.values[p.Key]; dup {
			logger.Debug(ctx, "Duplicate key '{{_Var_}}%s{{|-|}}' in '{{_File_}}%s{{|-|}}', later value wins.", p.Key, s.path)
		}
		s.set(p.Key, p.Value)
	}
	logger.Info(ctx, "Loaded %d variables from '{{_File_}}%s{{|-|}}'.", len(s.keys), s.path)
	return nil
}

// Save truncates the backing file and writes every entry in persistence order.
func (s *Store) Save(ctx context.Context) error {
	if err := envfile.WriteFile(s.path, s.pairs()); err != nil {
		return fmt.Errorf("failed to save env file %s: %w", s.path, err)
	}
	s.exists = true
	logger.Info(ctx, "Saved %d variables to '{{_File_}}%s{{|-|}}'.", len(s.keys), s.path)
	return nil
}

// List returns the entries sorted by key. An empty slice means the store is empty.
func (s *Store) List() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, k := range s.keys {
		entries = append(entries, Entry{Key: k, Value: s.values[k]})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Add inserts a new key and saves.
func (s *Store) Add(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if key == "" {
		return ErrEmptyKey
	}
	if s.Has(key) {
		return fmt.Errorf("%w: %s", ErrKeyExists, key)
	}

	s.set(key, value)
	logger.Info(ctx, "Added '{{_Var_}}%s{{|-|}}'.", key)
	return s.Save(ctx)
}

// Edit changes the value of an existing key and saves.
// An empty value keeps the current one; kept reports that case.
// The returned entry holds the value now stored.
func (s *Store) Edit(ctx context.Context, key, value string) (entry Entry, kept bool, err error) {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	current, ok := s.values[key]
	if !ok {
		return Entry{}, false, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	if value == "" {
		value = current
		kept = true
	}
	s.set(key, value)
	logger.Info(ctx, "Updated '{{_Var_}}%s{{|-|}}' (kept current: %t).", key, kept)

	if err := s.Save(ctx); err != nil {
		return Entry{}, kept, err
	}
	return Entry{Key: key, Value: value}, kept, nil
}

// Delete removes key and saves, but only when confirm is the confirmation token.
// Any other answer returns ErrDeleteCancelled and leaves the store untouched.
func (s *Store) Delete(ctx context.Context, key, confirm string) error {
	key = strings.TrimSpace(key)

	if !s.Has(key) {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if !IsConfirmation(confirm) {
		return ErrDeleteCancelled
	}

	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	logger.Info(ctx, "Deleted '{{_Var_}}%s{{|-|}}'.", key)
	return s.Save(ctx)
}

// IsConfirmation reports whether answer is the (case-insensitive) confirmation token.
func IsConfirmation(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), constants.ConfirmToken)
}

func (s *Store) set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *Store) pairs() []envfile.Pair {
	pairs := make([]envfile.Pair, 0, len(s.keys))
	for _, k := range s.keys {
		pairs = append(pairs, envfile.Pair{Key: k, Value: s.values[k]})
	}
	return pairs
}
