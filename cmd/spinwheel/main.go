package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"spinwheel/internal/announce"
	"spinwheel/internal/config"
	"spinwheel/internal/expr"
	"spinwheel/internal/history"
	"spinwheel/internal/itemstore"
	"spinwheel/internal/render"
	"spinwheel/internal/spin"
	"spinwheel/internal/tui"
	"spinwheel/internal/wheel"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const defaultConfigPath = "./spinwheel.yaml"

type CLI struct {
	Config   string      `help:"Path to config file" default:"./spinwheel.yaml" type:"path"`
	Run      RunCmd      `cmd:"" default:"withargs" help:"Spin the wheel interactively (default)"`
	Spin     SpinCmd     `cmd:"" help:"Spin once without a UI and print the winner"`
	Snapshot SnapshotCmd `cmd:"" help:"Render the wheel to a PNG file"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type itemCollector interface {
	Collect() ([]string, error)
}

type RunCmd struct {
	Items    []string `name:"item" short:"i" help:"Item to put on the wheel (repeatable)"`
	Remember bool     `help:"Restore the last item list and save it on exit"`

	store     *itemstore.FileStore
	collector itemCollector
}

func (c *RunCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	labels, err := c.resolveItems(cfg)
	if err != nil {
		return fmt.Errorf("resolve items: %w", err)
	}

	w, err := newWheel(labels, cfg.Palette)
	if err != nil {
		return err
	}

	// Announce errors go to the status line while the alt screen is up.
	var program *tea.Program
	announcer, err := connectAnnouncer(cfg, noticeReporter(func(msg tea.Msg) {
		if program != nil {
			program.Send(msg)
		}
	}))
	if err != nil {
		return err
	}
	defer announcer.Close()

	hist := history.New()
	model := tui.New(w, hist,
		tui.WithSettings(cfg.SpinSettings()),
		tui.WithFrameInterval(cfg.Spin.FrameInterval),
		tui.WithWinnerHandler(announcer.Announce),
	)
	defer model.Close()

	program = tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if c.Remember {
		if m, ok := final.(tui.Model); ok {
			if err := c.itemStore().Save(m.Labels()); err != nil {
				return fmt.Errorf("save items: %w", err)
			}
		}
	}

	printHistory(os.Stdout, hist)
	return nil
}

// resolveItems picks the first non-empty source: flags, config, the item
// store (with --remember), then an interactive prompt.
func (c *RunCmd) resolveItems(cfg *config.Config) ([]string, error) {
	if len(c.Items) > 0 {
		return c.Items, nil
	}

	labels, err := cfg.ActiveItems(expr.NewContext(time.Now()))
	if err != nil {
		return nil, err
	}
	if len(labels) > 0 {
		return labels, nil
	}

	if c.Remember {
		labels, err := c.itemStore().Load()
		if err != nil {
			return nil, err
		}
		if len(labels) > 0 {
			return labels, nil
		}
	}

	collector := c.collector
	if collector == nil {
		collector = tui.NewItemCollector()
	}
	return collector.Collect()
}

func (c *RunCmd) itemStore() *itemstore.FileStore {
	if c.store == nil {
		c.store = itemstore.NewFileStore(itemstore.DefaultPath())
	}
	return c.store
}

type SpinCmd struct {
	Items []string      `name:"item" short:"i" help:"Item to put on the wheel (repeatable)"`
	For   time.Duration `help:"How long to spin before stopping" default:"1s"`

	out io.Writer
}

func (c *SpinCmd) Run(cli *CLI) error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	labels, err := itemsOrConfig(c.Items, cfg)
	if err != nil {
		return fmt.Errorf("resolve items: %w", err)
	}

	w, err := newWheel(labels, cfg.Palette)
	if err != nil {
		return err
	}

	announcer, err := connectAnnouncer(cfg, func(err error) {
		fmt.Fprintf(os.Stderr, "announce: %v\n", err)
	})
	if err != nil {
		return err
	}
	defer announcer.Close()

	hist := history.New()
	runner := spin.NewRunner(cfg.Spin.FrameInterval)
	ctrl := spin.New(w, hist, runner,
		spin.WithSettings(cfg.SpinSettings()),
		spin.WithWinnerHandler(announcer.Announce),
		spin.WithWinnerHandler(func(win spin.Winner) {
			fmt.Fprintf(out, "👑 %s!\n", win.Label)
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(out, "Spinning %d items...\n", w.Len())
	if err := runner.Run(ctx, ctrl, c.For); err != nil {
		return fmt.Errorf("spin: %w", err)
	}

	printHistory(out, hist)
	return nil
}

type SnapshotCmd struct {
	Items []string `name:"item" short:"i" help:"Item to put on the wheel (repeatable)"`
	Out   string   `help:"Output PNG path" default:"wheel.png" type:"path"`
	Size  int      `help:"Image width and height in pixels" default:"512"`
	Angle float64  `help:"Wheel rotation in radians"`
}

func (c *SnapshotCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	labels, err := itemsOrConfig(c.Items, cfg)
	if err != nil {
		return fmt.Errorf("resolve items: %w", err)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	err = render.PNG(f, render.Snapshot{
		Labels:  labels,
		Angle:   c.Angle,
		Palette: cfg.Palette,
		Size:    c.Size,
	})
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}

	fmt.Printf("Wrote %s\n", c.Out)
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(cli *CLI) error {
	fmt.Printf("spinwheel %s (commit: %s, built: %s)\n", Version, Commit, Date)
	return nil
}

// loadConfig falls back to defaults only when the default config file is absent.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}

	defaultPath, absErr := filepath.Abs(defaultConfigPath)
	if absErr == nil && path == defaultPath && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}

func itemsOrConfig(flags []string, cfg *config.Config) ([]string, error) {
	if len(flags) > 0 {
		return flags, nil
	}
	return cfg.ActiveItems(expr.NewContext(time.Now()))
}

func newWheel(labels []string, palette []string) (*wheel.Model, error) {
	w := wheel.New(wheel.WithPalette(palette))
	for _, label := range labels {
		if _, err := w.AddItem(label); err != nil {
			return nil, fmt.Errorf("add item %q: %w", label, err)
		}
	}
	return w, nil
}

func connectAnnouncer(cfg *config.Config, onError func(error)) (*announce.MQTT, error) {
	announcer := announce.New(cfg.Announce.MQTT, announce.WithErrorHandler(onError))
	if err := announcer.Connect(); err != nil {
		return nil, err
	}
	return announcer, nil
}

// noticeReporter turns announce errors into TUI status-line notices.
func noticeReporter(send func(tea.Msg)) func(error) {
	return func(err error) {
		send(tui.NoticeMsg("announce: " + err.Error()))
	}
}

func printHistory(w io.Writer, hist *history.Log) {
	for _, e := range hist.Entries() {
		fmt.Fprintln(w, e.String())
	}
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("spinwheel"),
		kong.Description("Spin a wheel of choices in your terminal"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
