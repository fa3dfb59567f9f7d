// Command fen2png renders a FEN position to a PNG file.
//
//	fen2png -fen "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2" \
//	    -highlight c7,c5 -output board.png
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gogpu/ggchess"
	"github.com/gogpu/ggchess/config"
)

const sicilian = "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"

func main() {
	var (
		fen       = flag.String("fen", sicilian, "position to render")
		highlight = flag.String("highlight", "c7,c5", "comma separated squares to highlight")
		output    = flag.String("output", "board.png", "output file")
		configArg = flag.String("config", "", "TOML config file (default: XDG config and ./ggchess.toml)")
		size      = flag.Int("size", 0, "square size in pixels (overrides config)")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ggchess.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var paths []string
	if *configArg != "" {
		paths = append(paths, *configArg)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *size > 0 {
		cfg.SquareSize = *size
	}

	squares, err := parseSquares(*highlight)
	if err != nil {
		log.Fatalf("Invalid -highlight: %v", err)
	}

	start := time.Now()
	img, err := ggchess.Render(*fen, cfg.Style, cfg.SquareSize, squares...)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	elapsed := time.Since(start)

	if err := ggchess.SavePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rendered %s in %v\n", *output, elapsed)
}

func parseSquares(list string) ([]ggchess.Square, error) {
	var squares []ggchess.Square
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		sq, err := ggchess.ParseSquare(name)
		if err != nil {
			return nil, err
		}
		squares = append(squares, sq)
	}
	return squares, nil
}
