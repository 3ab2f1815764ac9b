// Package interactive provides the interactive command-line interface
// for dboard-shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/inspect"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// Shell handles interactive mode for dboard-shell.
type Shell struct {
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	rl        *readline.Instance
	out       io.Writer
}

// New creates a new interactive shell over the inspector's slots.
func New(inspector *inspect.Inspector) (*Shell, error) {
	s := NewBatch(inspector, os.Stdout)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dboard> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	s.out = rl.Stdout()
	return s, nil
}

// NewBatch creates a shell without line editing that writes to out. It is
// used for -exec and scripted input.
func NewBatch(inspector *inspect.Inspector, out io.Writer) *Shell {
	f := inspect.NewFormatter()
	f.ShowMetadata = true
	return &Shell{
		inspector: inspector,
		formatter: f,
		out:       out,
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	if s.rl != nil {
		return s.rl.Stdout()
	}
	return s.out
}

// Stderr returns a writer that properly coordinates with the readline input.
func (s *Shell) Stderr() io.Writer {
	if s.rl != nil {
		return s.rl.Stderr()
	}
	return s.out
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.Execute(ctx, line) {
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns false when the shell should
// exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "inspect", "i":
		s.cmdInspect(args)

	case "get", "g":
		s.cmdGet(args)

	case "set", "s":
		s.cmdSet(args)

	case "table", "t":
		s.cmdTable(args)

	case "rget":
		s.cmdRemoteGet(ctx, args)

	case "slots":
		s.cmdSlots()

	case "ids":
		s.cmdIDs()

	case "keys":
		s.cmdKeys()

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
dboard Shell Commands:
  Inspection:
    inspect [path]     - Inspect slots (or a specific unit/sub-device/property)
    get <path>         - Read a property value
    set <path> <val>   - Write a property value
    table <path>       - Show a sub-device's properties as a table
    rget <path>        - Read through the encoded request/response path

  Hardware:
    slots              - List configured slots
    ids                - Show board IDs and names per slot
    keys               - List property keys with kind and access

  General:
    help               - Show this help
    quit               - Exit shell

  Path Format:
    [slot/]unit[/subdev][/key] - e.g., rx/AB/frequency-range, A/tx/gain
    Ranges are written min:max[:step], name lists comma separated`)
}

// cmdInspect handles the inspect command.
func (s *Shell) cmdInspect(args []string) {
	if len(args) == 0 {
		for _, name := range s.inspector.Slots() {
			tree, err := s.inspector.InspectSlot(name)
			if err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
				return
			}
			fmt.Fprint(s.out, s.inspector.FormatSlotTree(tree, s.formatter))
		}
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid path: %v\n", err)
		return
	}

	switch {
	case !path.IsPartial:
		s.printProperty(path)

	case path.Unit == 0:
		tree, err := s.inspector.InspectSlot(path.Slot)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprint(s.out, s.inspector.FormatSlotTree(tree, s.formatter))

	case !path.HasSubdev:
		info, err := s.inspector.InspectUnit(path.Slot, path.Unit)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprint(s.out, s.inspector.FormatUnit(info, s.formatter))

	default:
		info, err := s.inspector.InspectSubdev(path.Slot, path.Unit, path.Subdev)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprint(s.out, s.inspector.FormatSubdev(info, s.formatter))
	}
}

// cmdGet handles the get command.
func (s *Shell) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: get <path>")
		fmt.Fprintln(s.out, "  Example: get rx/AB/frequency-range")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid path: %v\n", err)
		return
	}
	if path.IsPartial {
		fmt.Fprintln(s.out, "Path must name a property (use inspect for sub-devices)")
		return
	}
	s.printProperty(path)
}

func (s *Shell) printProperty(path *inspect.Path) {
	value, meta, err := s.inspector.ReadProperty(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", path.NamedKey(), s.formatter.FormatValue(value, meta.Unit))
}

// cmdSet handles the set command.
func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <path> <value>")
		fmt.Fprintln(s.out, "  Example: set rx/A/gain 0")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid path: %v\n", err)
		return
	}

	text := strings.Join(args[1:], " ")
	if _, err := s.inspector.WritePropertyText(path, text); err != nil {
		fmt.Fprintf(s.out, "Set failed: %v\n", err)
		return
	}

	fmt.Fprintln(s.out, "OK")
}

// cmdTable handles the table command.
func (s *Shell) cmdTable(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: table <unit/subdev>")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid path: %v\n", err)
		return
	}
	if !path.IsPartial || path.Unit == 0 {
		fmt.Fprintln(s.out, "Path must name a unit or sub-device")
		return
	}

	info, err := s.inspector.InspectSubdev(path.Slot, path.Unit, path.Subdev)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatPropertyTable(inspect.PropertyRows(info, s.formatter)))
}

// cmdRemoteGet reads a property by encoding a request and dispatching it
// to the slot manager, as a remote host would.
func (s *Shell) cmdRemoteGet(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: rget <path>")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid path: %v\n", err)
		return
	}

	m, err := s.inspector.Manager(path.Slot)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	remote := inspect.NewRemoteInspector(inspect.Loopback(m))

	if path.IsPartial {
		values, err := remote.ReadSubdev(ctx, path.Unit, path.Subdev)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		for _, k := range prop.Keys() {
			if v, ok := values[k]; ok {
				meta, _ := prop.Describe(k)
				fmt.Fprintf(s.out, "  %s: %s\n", k, s.formatter.FormatValue(v, meta.Unit))
			}
		}
		return
	}

	value, err := remote.ReadProperty(ctx, path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	meta, _ := prop.Describe(path.Key)
	fmt.Fprintf(s.out, "%s = %s\n", path.NamedKey(), s.formatter.FormatValue(value, meta.Unit))
}

// cmdSlots handles the slots command.
func (s *Shell) cmdSlots() {
	slots := s.inspector.Slots()
	if len(slots) == 0 {
		fmt.Fprintln(s.out, "No slots configured")
		return
	}

	fmt.Fprintf(s.out, "\nSlots (%d):\n", len(slots))
	for n, name := range slots {
		marker := ""
		if n == 0 {
			marker = " (default)"
		}
		fmt.Fprintf(s.out, "  %s%s\n", name, marker)
	}
}

// cmdIDs handles the ids command.
func (s *Shell) cmdIDs() {
	fmt.Fprintf(s.out, "%-6s %-4s %-8s %s\n", "Slot", "Unit", "ID", "Board")
	fmt.Fprintln(s.out, "------------------------------------------")
	for _, name := range s.inspector.Slots() {
		m, err := s.inspector.Manager(name)
		if err != nil {
			continue
		}
		for _, unit := range []dboard.Unit{dboard.UnitRX, dboard.UnitTX} {
			fmt.Fprintf(s.out, "%-6s %-4s %-8s %s\n", name, unit, m.ID(unit), m.BoardName(unit))
		}
	}
}

// cmdKeys handles the keys command.
func (s *Shell) cmdKeys() {
	for _, k := range prop.Keys() {
		meta, _ := prop.Describe(k)
		fmt.Fprintf(s.out, "  [%2d] %-18s %-8s %s\n", k, k, inspect.FormatKind(meta.Kind), inspect.FormatAccess(meta.Access))
	}
}

// completer builds tab completion for commands and paths.
func (s *Shell) completer() *readline.PrefixCompleter {
	paths := readline.PcItemDynamic(func(string) []string { return s.pathCandidates() })
	return readline.NewPrefixCompleter(
		readline.PcItem("inspect", paths),
		readline.PcItem("get", paths),
		readline.PcItem("set", paths),
		readline.PcItem("table", paths),
		readline.PcItem("rget", paths),
		readline.PcItem("slots"),
		readline.PcItem("ids"),
		readline.PcItem("keys"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// pathCandidates lists every unit, sub-device and property path. Paths into
// slots other than the default carry the slot prefix.
func (s *Shell) pathCandidates() []string {
	var out []string
	for n, name := range s.inspector.Slots() {
		m, err := s.inspector.Manager(name)
		if err != nil {
			continue
		}
		prefix := ""
		if n > 0 {
			prefix = name + "/"
			out = append(out, name)
		}
		for _, unit := range []dboard.Unit{dboard.UnitRX, dboard.UnitTX} {
			base := prefix + unit.String()
			out = append(out, base)
			for _, sub := range m.SubdevNames(unit) {
				subBase := base
				if sub != "" {
					subBase = base + "/" + sub
					out = append(out, subBase)
				}
				for _, key := range inspect.KeyNames() {
					out = append(out, subBase+"/"+key)
				}
			}
		}
	}
	return out
}
