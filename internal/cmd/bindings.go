package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Alia5/keytab/binding"
	"github.com/Alia5/keytab/internal/configpaths"
)

// Bindings groups the key binding file subcommands.
type Bindings struct {
	Check   BindingsCheck   `cmd:"" help:"Validate a bindings file and print its contents"`
	Watch   BindingsWatch   `cmd:"" help:"Print a bindings file every time it changes"`
	Convert BindingsConvert `cmd:"" help:"Rewrite a bindings file in another format, keys by name"`
}

// BindingsCheck loads a bindings file and prints one line per action.
type BindingsCheck struct {
	File string `arg:"" optional:"" type:"path" help:"Bindings file (defaults to bindings.yaml in the keytab config directory)"`
}

// Run is called by Kong when the bindings check command is executed.
func (c *BindingsCheck) Run(logger *slog.Logger) error {
	path, err := bindingsPath(c.File)
	if err != nil {
		return err
	}
	set, err := binding.Load(path)
	if err != nil {
		return err
	}
	logger.Info("Bindings valid", "file", path, "actions", set.Len())
	printSet(os.Stdout, set)
	return nil
}

// BindingsWatch prints a bindings file, then reprints it after every change.
type BindingsWatch struct {
	File string `arg:"" optional:"" type:"path" help:"Bindings file (defaults to bindings.yaml in the keytab config directory)"`
}

// Run is called by Kong when the bindings watch command is executed.
// It returns on SIGINT or SIGTERM.
func (c *BindingsWatch) Run(logger *slog.Logger) error {
	path, err := bindingsPath(c.File)
	if err != nil {
		return err
	}

	if set, err := binding.Load(path); err != nil {
		logger.Warn("Initial bindings load failed", "file", path, "error", err)
	} else {
		printSet(os.Stdout, set)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Watching bindings", "file", path)
	return binding.Watch(ctx, path, logger, func(set *binding.Set) {
		fmt.Fprintln(os.Stdout, "---")
		printSet(os.Stdout, set)
	})
}

// BindingsConvert loads a bindings file and saves it under another name.
type BindingsConvert struct {
	From string `arg:"" type:"existingfile" help:"Source bindings file"`
	To   string `arg:"" type:"path" help:"Destination file; its extension selects the format"`
}

// Run is called by Kong when the bindings convert command is executed.
func (c *BindingsConvert) Run(logger *slog.Logger) error {
	set, err := binding.Load(c.From)
	if err != nil {
		return err
	}
	if err := set.Save(c.To); err != nil {
		return fmt.Errorf("save %s: %w", c.To, err)
	}
	logger.Info("Converted bindings", "from", c.From, "to", c.To, "actions", set.Len())
	return nil
}

func bindingsPath(file string) (string, error) {
	if file != "" {
		return file, nil
	}
	path, err := configpaths.DefaultBindingsPath()
	if err != nil {
		return "", fmt.Errorf("resolve default bindings file: %w", err)
	}
	return path, nil
}

// printSet writes one line per action: "jump: keys=SPACE,w scancodes=KP_8".
func printSet(w io.Writer, set *binding.Set) {
	for _, action := range set.Actions() {
		b, _ := set.Binding(action)
		keys := make([]string, len(b.Keys))
		for i, k := range b.Keys {
			keys[i] = k.String()
		}
		scancodes := make([]string, len(b.Scancodes))
		for i, s := range b.Scancodes {
			scancodes[i] = s.String()
		}
		fmt.Fprintf(w, "%s: keys=%s scancodes=%s\n", action, strings.Join(keys, ","), strings.Join(scancodes, ","))
	}
}
