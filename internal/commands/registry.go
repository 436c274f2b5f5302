// Package commands holds the named subcommands of the command-line tool.
package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/bethropolis/editscript/internal/logger"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// Func runs a command with the arguments that follow its name.
type Func func(args []string) error

// Command describes a registered subcommand.
type Command struct {
	Name    string
	Usage   string // argument synopsis, e.g. "[-o out] OLD NEW"
	Summary string
	Run     Func
}

// Registry maps command names to commands.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. Names must be non-empty and unique.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name == "" {
		return fmt.Errorf("command registration failed: name cannot be empty")
	}
	if cmd.Run == nil {
		return fmt.Errorf("command registration failed: '%s' has no run function", cmd.Name)
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return fmt.Errorf("command registration failed: '%s' already registered", cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	logger.DebugTagf("commands", "Registered command '%s'", cmd.Name)
	return nil
}

// Lookup returns the named command.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All returns the registered commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		all = append(all, cmd)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Run executes the named command.
func (r *Registry) Run(name string, args []string) error {
	cmd, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	logger.DebugTagf("commands", "Running '%s' with args %q", name, args)
	return cmd.Run(args)
}

// WriteUsage lists the commands on w.
func (r *Registry) WriteUsage(w io.Writer) {
	for _, cmd := range r.All() {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Usage)
		if cmd.Summary != "" {
			fmt.Fprintf(w, "           %s\n", cmd.Summary)
		}
	}
}

// UsageError reports wrong arguments to cmd.
func UsageError(cmd string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrUsage, cmd, fmt.Sprintf(format, args...))
}
