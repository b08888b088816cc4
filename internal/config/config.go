package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/cascade-menu/internal/app"
	"github.com/atomicstack/cascade-menu/internal/cascade"
	"github.com/atomicstack/cascade-menu/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuFile          = "CASCADE_MENU_FILE"
	envAnchor            = "CASCADE_MENU_ANCHOR"
	envLabel             = "CASCADE_MENU_LABEL"
	envWidth             = "CASCADE_MENU_WIDTH"
	envHeight            = "CASCADE_MENU_HEIGHT"
	envColumnWidth       = "CASCADE_MENU_COLUMN_WIDTH"
	envRowHeight         = "CASCADE_MENU_ROW_HEIGHT"
	envSeparatorHeight   = "CASCADE_MENU_SEPARATOR_HEIGHT"
	envGap               = "CASCADE_MENU_GAP"
	envMargin            = "CASCADE_MENU_MARGIN"
	envSelectionStyle    = "CASCADE_MENU_SELECTION_STYLE"
	envColorSelected     = "CASCADE_MENU_COLOR_SELECTED"
	envColorUnselected   = "CASCADE_MENU_COLOR_UNSELECTED"
	envColorText         = "CASCADE_MENU_COLOR_TEXT"
	envColorSelectedText = "CASCADE_MENU_COLOR_SELECTED_TEXT"
	envColorSeparator    = "CASCADE_MENU_COLOR_SEPARATOR"
	envAnimate           = "CASCADE_MENU_ANIMATE"
	envOpen              = "CASCADE_MENU_OPEN"
	envPrintPath         = "CASCADE_MENU_PRINT_PATH"
	envShowFooter        = "CASCADE_MENU_FOOTER"
	envTrace             = "CASCADE_MENU_TRACE"
	envLogFile           = "CASCADE_MENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	defaults := cascade.DefaultConfig()

	fs := flag.NewFlagSet("cascade-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuFile := fs.String("menu", envOrDefault(env, envMenuFile, ""), "path to a JSON or TOML menu file (empty uses the built-in sample)")
	anchor := fs.String("anchor", envOrDefault(env, envAnchor, "2,1"), "anchor button position as col,row; negative values count from the right/bottom")
	label := fs.String("label", envOrDefault(env, envLabel, "Menu"), "anchor button label")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	columnWidth := fs.Int("column-width", envOrInt(env, envColumnWidth, 0), "card width in cells (0 uses 30% of the width)")
	rowHeight := fs.Int("row-height", envOrInt(env, envRowHeight, defaults.RowHeight), "item row height in rows")
	separatorHeight := fs.Int("separator-height", envOrInt(env, envSeparatorHeight, defaults.SeparatorHeight), "separator row height in rows")
	gap := fs.Int("gap", envOrInt(env, envGap, defaults.Gap), "columns between adjacent cards")
	margin := fs.Int("margin", envOrInt(env, envMargin, defaults.LeftMargin), "offset of the first card from the anchor")
	selectionStyle := fs.String("selection-style", envOrDefault(env, envSelectionStyle, defaults.SelectionStyle.String()), "selection highlight: background, font or both")
	colorSelected := fs.String("color-selected", envOrDefault(env, envColorSelected, string(defaults.Colors.Selected)), "selected row background")
	colorUnselected := fs.String("color-unselected", envOrDefault(env, envColorUnselected, string(defaults.Colors.Unselected)), "row background")
	colorText := fs.String("color-text", envOrDefault(env, envColorText, string(defaults.Colors.Text)), "row text color")
	colorSelectedText := fs.String("color-selected-text", envOrDefault(env, envColorSelectedText, string(defaults.Colors.SelectedText)), "selected row text color")
	colorSeparator := fs.String("color-separator", envOrDefault(env, envColorSeparator, string(defaults.Colors.Separator)), "separator line color")
	animate := fs.Duration("animate", envOrDuration(env, envAnimate, defaults.EntranceDuration), "card entrance duration (0 disables)")
	open := fs.String("open", envOrDefault(env, envOpen, ""), "slash separated path opened on start, matched fuzzily")
	printPath := fs.Bool("print-path", envOrBool(env, envPrintPath, false), "print the tab separated path instead of the item")
	dump := fs.Bool("dump", false, "print the flattened menu table and exit")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	for _, check := range []struct {
		name string
		min  int
		v    int
	}{
		{"width", 0, *width},
		{"height", 0, *height},
		{"column-width", 0, *columnWidth},
		{"row-height", 1, *rowHeight},
		{"separator-height", 0, *separatorHeight},
		{"gap", 0, *gap},
		{"margin", 0, *margin},
	} {
		if check.v < check.min {
			return Config{}, fmt.Errorf("%s must be >= %d (got %d)", check.name, check.min, check.v)
		}
	}
	if *animate < 0 {
		return Config{}, fmt.Errorf("animate must be >= 0 (got %s)", *animate)
	}
	style, err := cascade.ParseSelectionStyle(*selectionStyle)
	if err != nil {
		return Config{}, err
	}
	anchorSpec, err := ui.ParseAnchor(*anchor)
	if err != nil {
		return Config{}, err
	}

	menu := defaults
	menu.ColumnWidth = *columnWidth
	menu.RowHeight = *rowHeight
	menu.SeparatorHeight = *separatorHeight
	menu.Gap = *gap
	menu.LeftMargin = *margin
	menu.SelectionStyle = style
	menu.EntranceDuration = *animate
	menu.Colors = cascade.Colors{
		Selected:     cascade.Color(*colorSelected),
		Unselected:   cascade.Color(*colorUnselected),
		Text:         cascade.Color(*colorText),
		SelectedText: cascade.Color(*colorSelectedText),
		Separator:    cascade.Color(*colorSeparator),
	}

	cfg := Config{
		App: app.Config{
			MenuPath:   *menuFile,
			Width:      *width,
			Height:     *height,
			Anchor:     anchorSpec,
			Label:      *label,
			Menu:       menu,
			OpenPath:   *open,
			PrintPath:  *printPath,
			Dump:       *dump,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"menu":           *menuFile,
			"anchor":         anchorSpec.String(),
			"label":          *label,
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"columnWidth":    strconv.Itoa(*columnWidth),
			"selectionStyle": style.String(),
			"animate":        animate.String(),
			"open":           *open,
			"printPath":      strconv.FormatBool(*printPath),
			"dump":           strconv.FormatBool(*dump),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks settings that depend on the environment rather than on a
// single flag.
func Validate(cfg Config) error {
	if cfg.App.MenuPath == "" {
		return nil
	}
	info, err := os.Stat(cfg.App.MenuPath)
	if err != nil {
		return fmt.Errorf("menu file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("menu file %s is a directory", cfg.App.MenuPath)
	}
	return nil
}
