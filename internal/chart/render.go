package chart

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is the widest bar Render draws, in cells.
const DefaultWidth = 30

// Chart is a drawn chart attached to a mount point.
type Chart struct {
	Mount  string
	Config Config

	mu        sync.Mutex
	destroyed bool
}

// Destroy releases the chart. A destroyed chart is never drawn again.
func (c *Chart) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyed = true
}

// Destroyed reports whether Destroy was called.
func (c *Chart) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

// Renderer owns the charts on its mount points. At most one live chart
// exists per mount: Render destroys the previous one before drawing.
type Renderer struct {
	Width int

	mu     sync.Mutex
	mounts map[string]*Chart
}

// NewRenderer returns a Renderer drawing bars up to width cells wide.
// A non-positive width uses DefaultWidth.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{Width: width, mounts: make(map[string]*Chart)}
}

// Render replaces the chart on mount with cfg and draws it to w.
func (r *Renderer) Render(mount string, w io.Writer, cfg Config) (*Chart, error) {
	r.mu.Lock()
	if prev, ok := r.mounts[mount]; ok {
		prev.Destroy()
	}
	c := &Chart{Mount: mount, Config: cfg}
	r.mounts[mount] = c
	r.mu.Unlock()

	if err := r.draw(w, cfg); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", mount, err)
	}
	return c, nil
}

// Active returns the live chart on mount, if any.
func (r *Renderer) Active(mount string) (*Chart, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.mounts[mount]
	return c, ok
}

// Dispose destroys and detaches the chart on mount.
func (r *Renderer) Dispose(mount string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.mounts[mount]; ok {
		c.Destroy()
		delete(r.mounts, mount)
	}
}

// draw writes one horizontal bar per label, scaled to the largest value.
// Colors are only emitted when w is a terminal.
func (r *Renderer) draw(w io.Writer, cfg Config) error {
	lr := lipgloss.NewRenderer(w)
	title := lr.NewStyle().Bold(true)

	if len(cfg.Data.Datasets) == 0 || len(cfg.Data.Labels) == 0 {
		_, err := fmt.Fprintln(w, "No questions logged yet.")
		return err
	}

	ds := cfg.Data.Datasets[0]
	bar := lr.NewStyle().Foreground(lipgloss.Color(ds.BorderColor))

	max := 0
	for _, v := range ds.Data {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	b.WriteString(title.Render(ds.Label))
	b.WriteByte('\n')
	for i, label := range cfg.Data.Labels {
		v := 0
		if i < len(ds.Data) {
			v = ds.Data[i]
		}
		n := 0
		if max > 0 {
			n = v * r.Width / max
		}
		if v > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%s │ %s %d\n", label, bar.Render(strings.Repeat("█", n)), v)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
