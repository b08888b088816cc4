package app

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/cascade-menu/internal/cascade"
	"github.com/atomicstack/cascade-menu/internal/format/table"
	"github.com/atomicstack/cascade-menu/internal/hierarchy"
	"github.com/atomicstack/cascade-menu/internal/logging/events"
	"github.com/atomicstack/cascade-menu/internal/ui"
	"github.com/atomicstack/cascade-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

//go:embed sample_menu.json
var sampleMenu []byte

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	Width      int
	Height     int
	Screen     cascade.Size
	Anchor     ui.AnchorPos
	Label      string
	Menu       cascade.Config
	OpenPath   string
	PrintPath  bool
	Dump       bool
	ShowFooter bool
}

// Run loads the menu and either dumps its table or runs the Bubble Tea
// program, printing the chosen leaf.
func Run(cfg Config) error {
	return run(cfg, os.Stdout)
}

func run(cfg Config, out io.Writer) error {
	root, err := LoadMenu(cfg.MenuPath)
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}
	if cfg.Dump {
		return Dump(out, root)
	}
	model, err := ui.NewModel(root, cfg.Menu, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Screen:     cfg.Screen,
		Anchor:     cfg.Anchor,
		Label:      cfg.Label,
		OpenPath:   hierarchy.SplitPath(cfg.OpenPath),
		ShowFooter: cfg.ShowFooter,
	})
	if err != nil {
		return fmt.Errorf("load menu: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		return nil
	}
	if err != nil {
		return err
	}
	sel, ok := model.Selection()
	if !ok {
		events.App.Exit("dismissed")
		return nil
	}
	events.App.Selection(sel.Path)
	events.App.Exit("selected")
	_, err = fmt.Fprintln(out, FormatSelection(sel, cfg.PrintPath))
	return err
}

// LoadMenu reads the menu file at path, or the built-in sample when path is
// empty.
func LoadMenu(path string) (*hierarchy.Node, error) {
	if path == "" {
		return hierarchy.Parse(sampleMenu, hierarchy.FormatJSON)
	}
	return hierarchy.LoadFile(path)
}

// FormatSelection renders the chosen leaf, or its tab separated path.
func FormatSelection(sel command.Selection, withPath bool) string {
	if withPath && len(sel.Path) > 0 {
		return strings.Join(sel.Path, "\t")
	}
	return sel.Item
}

// Dump writes the flattened lookup table of root.
func Dump(w io.Writer, root *hierarchy.Node) error {
	t, err := hierarchy.Normalize(root)
	if err != nil {
		return err
	}
	rows := [][]string{{"KEY", "ITEMS", "ENTRIES"}}
	for _, key := range t.Keys() {
		items, _ := t.Lookup(key)
		selectable := 0
		for _, item := range items {
			if !hierarchy.IsSeparator(item) {
				selectable++
			}
		}
		rows = append(rows, []string{key, strconv.Itoa(selectable), strings.Join(items, ", ")})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	for _, name := range t.Malformed() {
		fmt.Fprintf(&b, "malformed: %s has no items, treated as a leaf\n", name)
	}
	_, err = io.WriteString(w, b.String())
	return err
}
