package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
)

// ErrUnknown is returned by Execute for a subcommand that was never registered.
var ErrUnknown = errors.New("unknown command")

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
	def  string
}

// NewRegistry returns an empty command registry. def names the command run when no subcommand is given.
func NewRegistry(def string) *Registry {
	return &Registry{cmds: make(map[string]*Command), def: def}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after fs.Parse succeeds.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered subcommands, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Empty args, or args starting with a flag, run the default command.
func (r *Registry) Execute(args []string) error {
	name := r.def
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		name, args = args[0], args[1:]
	}
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	if err := cmd.FlagSet.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}

// PrintUsage writes one line per subcommand.
func (r *Registry) PrintUsage(w io.Writer) {
	for _, n := range r.Names() {
		fmt.Fprintf(w, "  %-10s %s\n", n, r.cmds[n].Usage)
	}
}
