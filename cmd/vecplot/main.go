// Command vecplot draws a fan of rotated vectors to a PNG file.
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/text/language"

	"github.com/gogpu/vecmath"
	"github.com/gogpu/vecmath/internal/plot"
)

func main() {
	def := plot.DefaultConfig()
	var (
		width   = flag.Int("width", def.Width, "image width")
		height  = flag.Int("height", def.Height, "image height")
		x       = flag.Float64("x", def.Base.X, "base vector x")
		y       = flag.Float64("y", def.Base.Y, "base vector y")
		step    = flag.Float64("step", def.Step, "rotation between vectors, in degrees")
		count   = flag.Int("count", def.Count, "number of vectors")
		labels  = flag.Bool("labels", def.Labels, "draw angle labels")
		lang    = flag.String("lang", "en", "BCP 47 tag used to format the summary")
		output  = flag.String("output", "vectors.png", "output file")
		summary = flag.Bool("summary", false, "print a table of the vectors to stdout")
	)
	flag.Parse()

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid -lang %q: %v", *lang, err)
	}

	cfg := def
	cfg.Width, cfg.Height = *width, *height
	cfg.Base = vecmath.V2(*x, *y)
	cfg.Step = *step
	cfg.Count = *count
	cfg.Labels = *labels

	img, err := plot.Render(cfg)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := plot.WritePNG(f, img); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if *summary {
		if err := plot.Summary(os.Stdout, tag, plot.Vectors(cfg)); err != nil {
			log.Fatalf("Failed to write summary: %v", err)
		}
	}

	log.Printf("Vectors saved to %s (%dx%d)\n", *output, cfg.Width, cfg.Height)
}
