package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/cascade-menu/internal/app"
	"github.com/atomicstack/cascade-menu/internal/cascade"
	"github.com/atomicstack/cascade-menu/internal/config"
	"github.com/atomicstack/cascade-menu/internal/logging"
	"github.com/atomicstack/cascade-menu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := probeTerminal()
	runtimeCfg.App.Screen = tty.screen()
	events.App.Start(startupTracePayload(runtimeCfg, tty))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty terminalProbe) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"menu":   menuSource(cfg),
		"screen": screenPayload(cfg.App, tty),
		"tty":    tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// menuSource names where the menu definition is read from.
func menuSource(cfg config.Config) string {
	if cfg.App.MenuPath == "" {
		return "embedded"
	}
	return cfg.App.MenuPath
}

// screenPayload reports the size the first card is laid out against and
// where each dimension came from.
func screenPayload(cfg app.Config, tty terminalProbe) map[string]interface{} {
	width, widthSource := dimension(cfg.Width, tty.Width)
	height, heightSource := dimension(cfg.Height, tty.Height)
	return map[string]interface{}{
		"width":        width,
		"widthSource":  widthSource,
		"height":       height,
		"heightSource": heightSource,
		"anchor":       cfg.Anchor.String(),
		"label":        cfg.Label,
		"columnWidth":  cfg.Menu.ColumnWidth,
	}
}

func dimension(flagValue, ttyValue int) (int, string) {
	switch {
	case flagValue > 0:
		return flagValue, "flag"
	case ttyValue > 0:
		return ttyValue, "tty"
	default:
		return 0, "resize"
	}
}

// terminalProbe records the terminal size seen before Bubble Tea starts. It
// seeds the layout until the first resize message arrives.
type terminalProbe struct {
	Source  string   `json:"source,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Checked []string `json:"checked"`
	Errors  []string `json:"errors,omitempty"`
}

func (p terminalProbe) screen() cascade.Size {
	return cascade.Size{Width: p.Width, Height: p.Height}
}

// probeTerminal asks stdout first since that is where the menu is drawn; the
// other descriptors cover a redirected stdout.
func probeTerminal() terminalProbe {
	candidates := []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
		{"stdin", os.Stdin},
	}
	var probe terminalProbe
	for _, c := range candidates {
		probe.Checked = append(probe.Checked, c.name)
		fd := int(c.file.Fd())
		if fd < 0 || !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			probe.Errors = append(probe.Errors, fmt.Sprintf("%s: %v", c.name, err))
			continue
		}
		probe.Source, probe.Width, probe.Height = c.name, width, height
		break
	}
	return probe
}
