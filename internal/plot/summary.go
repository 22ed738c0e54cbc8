package plot

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/vecmath"
)

// Summary writes one line per vector (index, x, y, length, angle) with
// numbers formatted for tag.
func Summary(w io.Writer, tag language.Tag, vecs []vecmath.Vec2) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "#", "x", "y", "length", "angle"); err != nil {
		return fmt.Errorf("plot: write summary: %w", err)
	}
	for i, v := range vecs {
		_, err := p.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%.2f\n", i, v.X, v.Y, v.Length(), v.Angle())
		if err != nil {
			return fmt.Errorf("plot: write summary: %w", err)
		}
	}
	return nil
}
