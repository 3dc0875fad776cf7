package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/five82/scout/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "scout: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Launch starts the application. Tests replace it to inspect options.
	Launch func(ctx context.Context, opts app.Options) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Launch: app.Run}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `help:"Config file path." default:"~/.config/scout/config.toml" type:"path"`
	Prefs    string `help:"Preferences file path." default:"~/.config/scout/prefs.toml" type:"path"`
	API      string `name:"api" help:"Catalog API base URL (overrides api_url)."`
	Query    string `short:"q" help:"Start with this query committed."`
	Location string `arg:"" optional:"" help:"Shareable location to open, e.g. '/?q=term+life' or '/product/<id>'."`
}

// Run parses args and launches the TUI.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("scout"),
		kong.Description("Search and browse the product catalog from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if exited {
		// --help was printed
		return nil
	}

	return m.Launch(ctx, app.Options{
		ConfigPath: cli.Config,
		PrefsPath:  cli.Prefs,
		APIURL:     cli.API,
		Location:   cli.Location,
		Query:      cli.Query,
	})
}
