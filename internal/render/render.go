// Package render prints the board and new log lines to a terminal.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/pokemonou-backend/internal/entity"
	"github.com/rocketscienceinc/pokemonou-backend/internal/pursuit"
)

const emptyGlyph = "·"

type source interface {
	Snapshot() pursuit.Snapshot
	EventsSince(seq int) []pursuit.Event
}

type Renderer struct {
	logger *slog.Logger
	source source
	out    io.Writer
	cursor int
}

func New(logger *slog.Logger, source source, out io.Writer) *Renderer {
	return &Renderer{
		logger: logger.With("component", "render"),
		source: source,
		out:    out,
	}
}

// Run redraws every interval and once more when ctx is done.
func (that *Renderer) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			that.Frame()
			return
		case <-ticker.C:
			that.Frame()
		}
	}
}

// Frame draws the current board followed by events up to the board's
// sequence number that were not printed yet.
func (that *Renderer) Frame() {
	snap := that.source.Snapshot()

	// events logged after the snapshot wait for the next frame
	events := that.source.EventsSince(that.cursor)
	for i, event := range events {
		if event.Seq > snap.LastSeq {
			events = events[:i]
			break
		}
	}

	var buf strings.Builder
	Draw(&buf, snap)
	for _, event := range events {
		fmt.Fprintf(&buf, "[%d] %s\n", event.Seq, event.Text)
	}

	if _, err := io.WriteString(that.out, buf.String()); err != nil {
		that.logger.Error("failed to write frame", "error", err)
		return
	}

	if len(events) > 0 {
		that.cursor = events[len(events)-1].Seq
	}
}

// Draw writes the grid, one row per line, and a status line.
func Draw(w io.Writer, snap pursuit.Snapshot) {
	var buf strings.Builder

	for _, row := range snap.Cells {
		glyphs := make([]string, len(row))
		for x, cell := range row {
			glyphs[x] = cell
			if cell == entity.EmptyCell {
				glyphs[x] = emptyGlyph
			}
		}
		buf.WriteString(strings.Join(glyphs, " "))
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, "status: %s, captured %d/%d\n", snap.Status, snap.Captured, snap.Expected)

	_, _ = io.WriteString(w, buf.String())
}
