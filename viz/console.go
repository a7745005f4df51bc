package viz

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rbtree"
	"golang.org/x/term"
)

// indentWidth is the number of character positions per tree level.
const indentWidth = 4

// ConsoleTree is a type for outputting a red-black tree to a console
// with a fixed width font, using colors to visualize node colors.
type ConsoleTree struct {
	colors  map[bool]*color.Color // node-is-red -> display color
	ctarget int                   // linelength in fixed-width ‘en’s
}

// Config is a set of rendering parameters.
type Config struct {
	// LineWidth is the target line length; deeper nodes are clipped.
	LineWidth int
}

// NewConsoleTree creates a new renderer for consoles with a fixed width
// font.
//
// colors maps node colors (red = true) to display colors used on the
// terminal. It may be nil, in which case a default palette is used.
func NewConsoleTree(colors map[bool]*color.Color) *ConsoleTree {
	ct := &ConsoleTree{}
	if colors == nil {
		ct.colors = makeDefaultPalette()
	} else {
		ct.colors = colors
	}
	return ct
}

func makeDefaultPalette() map[bool]*color.Color {
	palette := map[bool]*color.Color{
		true:  color.New(color.FgRed),
		false: color.New(color.FgBlue),
	}
	return palette
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func (ct *ConsoleTree) Print(t *rbtree.Tree) error {
	return ct.Output(t, os.Stdout, ConfigFromTerminal())
}

// Output renders a tree sideways onto w, one node per line, largest key
// first. Nodes deeper than the line width allows are clipped and marked
// with an ellipsis.
func (ct *ConsoleTree) Output(t *rbtree.Tree, w io.Writer, config *Config) error {
	if t == nil {
		return rbtree.ErrTreeDestroyed
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	ct.ctarget = config.LineWidth
	T().Debugf("viz: rendering tree with %d nodes, line width %d", t.Len(), ct.ctarget)
	nodes := make([]rbtree.NodeInfo, 0, t.Len())
	t.EachNode(func(info rbtree.NodeInfo) bool {
		nodes = append(nodes, info)
		return true
	})
	// sideways rendering shows the rightmost (largest) key on top
	for i := len(nodes) - 1; i >= 0; i-- {
		if err := ct.line(w, nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ct *ConsoleTree) line(w io.Writer, info rbtree.NodeInfo) error {
	label := fmt.Sprintf("%d", info.Key)
	indent := info.Depth * indentWidth
	if ct.ctarget > 0 && indent+len(label) > ct.ctarget {
		clip := ct.ctarget - 1
		if clip < 0 {
			clip = 0
		}
		if _, err := io.WriteString(w, strings.Repeat(" ", clip)+"…\n"); err != nil {
			return err
		}
		return nil
	}
	if _, err := io.WriteString(w, strings.Repeat(" ", indent)); err != nil {
		return err
	}
	if c, ok := ct.colors[info.Red]; ok {
		c.Fprint(w, label)
	} else if _, err := io.WriteString(w, label); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 65
	}
	return config
}
