// Package menu drives the interactive numbered menu over an envstore.Store.
package menu

import (
	"context"
	"envmanager/internal/completion"
	"envmanager/internal/console"
	"envmanager/internal/constants"
	"envmanager/internal/envstore"
	"envmanager/internal/logger"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Tag    string
	Desc   string
	Action func(ctx context.Context) error
}

// errExit ends the loop normally.
var errExit = errors.New("exit")

// Menu is the interactive session for one store.
type Menu struct {
	store     *envstore.Store
	reader    console.LineReader
	out       io.Writer
	completer *completion.Completer
	items     []MenuItem
}

// New creates a menu session reading input from reader and writing to out.
func New(store *envstore.Store, reader console.LineReader, out io.Writer) *Menu {
	m := &Menu{
		store:     store,
		reader:    reader,
		out:       out,
		completer: completion.New(store.Keys()),
	}
	m.items = []MenuItem{
		{Tag: "1", Desc: "List all variables", Action: m.list},
		{Tag: "2", Desc: "Add new variable", Action: m.add},
		{Tag: "3", Desc: "Edit variable", Action: m.edit},
		{Tag: "4", Desc: "Delete variable", Action: m.delete},
		{Tag: "5", Desc: "Exit", Action: m.exit},
	}
	return m
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
// It returns nil on a normal exit, console.ErrInterrupted on cancellation,
// and the underlying error when saving fails.
func (m *Menu) Run(ctx context.Context) error {
	m.println("")
	m.println("{{_Tip_}}Tip: Use Ctrl+C to exit at any time{{|-|}}")
	m.println("{{_Tip_}}Tip: Use Tab for key suggestions when editing/deleting{{|-|}}")

	for {
		// Cancellation is only honored between operations
		if ctx.Err() != nil {
			return console.ErrInterrupted
		}

		m.printMenu()
		m.println("")
		choice, err := m.reader.ReadLine(ctx, fmt.Sprintf("Enter your choice (1-%d): ", len(m.items)), nil)
		if err != nil {
			return m.finish(err)
		}

		item, ok := m.lookup(strings.TrimSpace(choice))
		if !ok {
			m.println("Invalid choice. Please try again.")
			continue
		}

		logger.Debug(ctx, "Menu choice %s (%s).", item.Tag, item.Desc)
		if err := item.Action(ctx); err != nil {
			return m.finish(err)
		}
	}
}

// finish maps the error that ended the loop to the value returned by Run.
func (m *Menu) finish(err error) error {
	switch {
	case errors.Is(err, errExit):
		return nil
	case errors.Is(err, io.EOF):
		m.println("Goodbye!")
		return nil
	default:
		return err
	}
}

func (m *Menu) lookup(choice string) (MenuItem, bool) {
	for _, item := range m.items {
		if item.Tag == choice {
			return item, true
		}
	}
	return MenuItem{}, false
}

func (m *Menu) printMenu() {
	m.println("")
	m.println("{{_Heading_}}Environment Variable Manager{{|-|}}")
	for _, item := range m.items {
		m.println(fmt.Sprintf("{{_MenuKey_}}%s.{{|-|}} %s", item.Tag, item.Desc))
	}
}

// refreshCompletion recomputes the completion key set from the store.
func (m *Menu) refreshCompletion() {
	m.completer.Update(m.store.Keys())
}

// readKey prompts for a key with completion and trims the answer.
func (m *Menu) readKey(ctx context.Context, prompt string) (string, error) {
	m.println("")
	m.println("{{_Tip_}}Press Tab for suggestions or Ctrl+C to cancel{{|-|}}")
	key, err := m.reader.ReadLine(ctx, prompt, m.completer.Func())
	return strings.TrimSpace(key), err
}

func (m *Menu) list(_ context.Context) error {
	m.printList()
	return nil
}

// printList prints the sorted entries, or a notice when there are none.
func (m *Menu) printList() {
	entries := m.store.List()
	if len(entries) == 0 {
		m.println("No environment variables found.")
		return
	}

	rule := strings.Repeat("-", constants.ListRuleWidth)
	m.println("")
	m.println("{{_Heading_}}Current Environment Variables:{{|-|}}")
	m.println(rule)
	for _, e := range entries {
		fmt.Fprintf(m.out, "%s = %s\n", console.Wrap("Var", e.Key), e.Value)
	}
	m.println(rule)
}

func (m *Menu) add(ctx context.Context) error {
	key, err := m.readKey(ctx, "Enter key: ")
	if err != nil {
		return err
	}
	if key == "" {
		return m.report(envstore.ErrEmptyKey)
	}
	if m.store.Has(key) {
		return m.report(envstore.ErrKeyExists)
	}

	value, err := m.reader.ReadLine(ctx, "Enter value: ", nil)
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)

	if err := m.store.Add(ctx, key, value); err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "%s %s=%s\n", console.Wrap("Success", "Added:"), key, value)
	m.refreshCompletion()
	return nil
}

func (m *Menu) edit(ctx context.Context) error {
	m.printList()
	key, err := m.readKey(ctx, "Enter key to edit: ")
	if err != nil {
		return err
	}
	current, ok := m.store.Get(key)
	if !ok {
		return m.report(envstore.ErrKeyNotFound)
	}

	fmt.Fprintf(m.out, "Current value: %s\n", current)
	value, err := m.reader.ReadLine(ctx, "Enter new value (press Enter to keep current): ", nil)
	if err != nil {
		return err
	}

	entry, kept, err := m.store.Edit(ctx, key, value)
	if err != nil {
		return m.report(err)
	}
	if kept {
		m.println("Keeping current value.")
	}
	fmt.Fprintf(m.out, "%s %s=%s\n", console.Wrap("Success", "Updated:"), entry.Key, entry.Value)
	m.refreshCompletion()
	return nil
}

func (m *Menu) delete(ctx context.Context) error {
	m.printList()
	key, err := m.readKey(ctx, "Enter key to delete: ")
	if err != nil {
		return err
	}
	if !m.store.Has(key) {
		return m.report(envstore.ErrKeyNotFound)
	}

	answer, err := m.reader.ReadLine(ctx, fmt.Sprintf("Are you sure you want to delete %s? (y/N): ", key), nil)
	if err != nil {
		return err
	}

	if err := m.store.Delete(ctx, key, answer); err != nil {
		return m.report(err)
	}
	fmt.Fprintf(m.out, "%s %s\n", console.Wrap("Success", "Deleted:"), key)
	m.refreshCompletion()
	return nil
}

func (m *Menu) exit(_ context.Context) error {
	m.println("Goodbye!")
	return errExit
}

// report prints the message for a recoverable user error and swallows it.
// Any other error is passed through.
func (m *Menu) report(err error) error {
	if !envstore.IsUserError(err) {
		return err
	}
	m.println("{{_Failure_}}" + userMessage(err) + "{{|-|}}")
	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, envstore.ErrEmptyKey):
		return "Key cannot be empty!"
	case errors.Is(err, envstore.ErrKeyExists):
		return "Key already exists! Use edit option to modify."
	case errors.Is(err, envstore.ErrKeyNotFound):
		return "Key not found!"
	default:
		return "Deletion cancelled."
	}
}

func (m *Menu) println(text string) {
	console.Fprintln(m.out, text)
}
