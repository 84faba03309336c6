package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
)

// prefix is accepted in front of a command line and dropped.
const prefix = "cmd "

// ErrUnknown is returned for a command name that is not registered.
var ErrUnknown = errors.New("unknown command")

// Command is a named action with its own flags. Run receives the positional arguments
// left after the flags are parsed.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds commands by name. Add commands with Register; run with Execute or Run.
type Registry struct {
	cmds  map[string]*Command
	print func(string)
}

// NewRegistry returns a registry holding only the built-in help command, which writes
// through print.
func NewRegistry(print func(string)) *Registry {
	r := &Registry{cmds: make(map[string]*Command), print: print}
	r.Register("help", "help: list commands", nil, func([]string) error {
		if r.print != nil {
			r.print(r.Help())
		}
		return nil
	})
	return r
}

// NewFlagSet returns a flag set that reports errors instead of exiting or printing.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a command. fs may be nil for commands without flags.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help lists each command with its usage line.
func (r *Registry) Help() string {
	var b strings.Builder
	for i, n := range r.Names() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(r.cmds[n].Usage)
	}
	return b.String()
}

// Parse tokenizes a console line with shell quoting rules, dropping a leading "cmd ".
// An empty line gives no arguments.
func Parse(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, prefix)
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", line, err)
	}
	return args, nil
}

// Execute runs the command in args[0] with args[1:] as flags and positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	name := strings.ToLower(args[0])
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, args[0])
	}
	// flags are reset so a previous run does not leak into this one
	cmd.FlagSet.VisitAll(func(f *flag.Flag) { _ = f.Value.Set(f.DefValue) })
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w (usage: %s)", name, err, cmd.Usage)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// Run parses and executes one console line.
func (r *Registry) Run(line string) error {
	args, err := Parse(line)
	if err != nil {
		return err
	}
	return r.Execute(args)
}
