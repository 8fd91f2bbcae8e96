package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

const (
	defaultBarWidth = 50
	defaultTick     = time.Second
)

// ProgressBar blocks for the given duration redrawing a countdown line on every tick
type ProgressBar struct {
	out   io.Writer
	width int
	tick  time.Duration
}

func NewProgressBar(out io.Writer) *ProgressBar {
	return &ProgressBar{
		out:   out,
		width: defaultBarWidth,
		tick:  defaultTick,
	}
}

// Wait returns ctx.Err() if interrupted before the duration elapses
func (p *ProgressBar) Wait(ctx context.Context, d time.Duration) error {
	start := time.Now()
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		elapsed := time.Since(start)
		if elapsed >= d {
			break
		}
		p.draw(elapsed, d)

		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return ctx.Err()
		case <-ticker.C:
		}
	}

	p.draw(d, d)
	fmt.Fprintln(p.out)
	return nil
}

func (p *ProgressBar) draw(elapsed, total time.Duration) {
	fmt.Fprintf(p.out, "\r%s", p.line(elapsed, total))
}

func (p *ProgressBar) line(elapsed, total time.Duration) string {
	ratio := 1.0
	if total > 0 {
		ratio = math.Min(float64(elapsed)/float64(total), 1)
	}
	filled := int(ratio * float64(p.width))
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", p.width-filled)

	eta := total - elapsed
	if eta < 0 {
		eta = 0
	}
	etaSec := int(math.Ceil(eta.Seconds()))

	return fmt.Sprintf("Next check in: [%s] %.0f%% eta %ds", bar, ratio*100, etaSec)
}
