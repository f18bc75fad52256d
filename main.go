package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/tdewolff/argp"

	"SketchBoard/internal/config"
	"SketchBoard/internal/export"
	boardnet "SketchBoard/internal/net"
	"SketchBoard/internal/state"
	"SketchBoard/internal/ui"
)

// Draw opens the drawing window and serves the drawing to viewers.
type Draw struct {
	Config    string `short:"c" desc:"TOML configuration file"`
	Listen    string `short:"l" desc:"Address viewers connect to, overrides the config file"`
	Advertise bool   `short:"a" desc:"Announce the board on the local network"`
	Paths     string `short:"p" desc:"JSON file with strokes to start from"`
	Verbose   bool   `short:"v" desc:"Log board state changes"`
}

// Render converts a saved drawing to SVG or PDF.
type Render struct {
	Output string  `short:"o" desc:"Output file (.svg or .pdf), stdout when empty"`
	Minify bool    `short:"m" desc:"Minify SVG output"`
	Fit    bool    `desc:"Size the canvas to the drawing instead of width and height"`
	Width  float64 `default:"1024" desc:"Canvas width"`
	Height float64 `default:"768" desc:"Canvas height"`
	Input  string  `index:"0" desc:"Input JSON file"`
}

// Watch follows a shared board and keeps an SVG file up to date.
type Watch struct {
	Output string `short:"o" desc:"Output SVG file"`
	Minify bool   `short:"m" desc:"Minify SVG output"`
	URL    string `index:"0" desc:"WebSocket URL of the board, e.g. ws://192.168.1.5:8888/ws"`
}

// Discover lists boards announced on the local network.
type Discover struct {
	Timeout float64 `short:"t" default:"3" desc:"Seconds to listen for announcements"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "SketchBoard freehand drawing board")
	root.AddCmd(&Render{}, "render", "Render a saved drawing to SVG or PDF")
	root.AddCmd(&Watch{}, "watch", "Mirror a shared board into an SVG file")
	root.AddCmd(&Discover{}, "discover", "Find boards on the local network")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	cfg := config.Default()
	if cmd.Config != "" {
		var err error
		if cfg, err = config.Load(cmd.Config); err != nil {
			return err
		}
	}
	if cmd.Listen != "" {
		cfg.Listen = cmd.Listen
	}
	if cmd.Advertise {
		cfg.Advertise = true
	}
	if cmd.Paths != "" {
		cfg.PathsFile = cmd.Paths
	}

	if cmd.Verbose {
		state.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	hub := boardnet.NewHub(cfg.Width, cfg.Height)
	opts, err := cfg.BoardOptions(hub.Publish)
	if err != nil {
		return err
	}
	board, err := state.NewBoard(opts)
	if err != nil {
		return err
	}
	hub.Publish(state.Change{Revision: board.Revision(), Paths: board.Paths()})
	log.Printf("[HOST] Starting board %s with %d strokes", hub.ID, len(opts.Initial))

	shareLink := ""
	if cfg.Listen != "" {
		go hub.Run(ctx)
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.Listen); err != nil {
				log.Printf("[HOST] Server stopped: %v", err)
			}
		}()

		if shareLink, err = boardnet.ShareURL(cfg.Listen); err != nil {
			log.Printf("[HOST] No share link: %v", err)
		}
		if cfg.Advertise {
			port, err := boardnet.ListenPort(cfg.Listen)
			if err != nil {
				return err
			}
			server, err := boardnet.Advertise(port, "SketchBoard", "id="+hub.ID)
			if err != nil {
				log.Printf("[MDNS] %v", err)
			} else {
				log.Printf("[MDNS] Advertising %s on port %d", boardnet.ServiceType, port)
				defer server.Shutdown()
			}
		}
	}

	widget := ui.NewBoardWidget(board)
	widget.OnEdit = func() {
		widget.SetStatus(fmt.Sprintf("%d strokes, %d points, %d viewers", board.Len(), board.PointCount(), hub.Peers()))
	}
	ui.RunApp(widget, shareLink)
	return nil
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()
	strokes, err := state.Load(f)
	if err != nil {
		return err
	}
	width, height := cmd.Width, cmd.Height
	if cmd.Fit {
		if w, h, ok := export.Extent(strokes); ok {
			width, height = w, h
		}
	}

	if strings.EqualFold(filepath.Ext(cmd.Output), ".pdf") {
		out, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		if err := export.WritePDF(out, strokes, width, height); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}

	doc, err := svgDocument(strokes, width, height, cmd.Minify)
	if err != nil {
		return err
	}
	if cmd.Output == "" || cmd.Output == "-" {
		_, err = fmt.Fprintln(os.Stdout, doc)
		return err
	}
	return os.WriteFile(cmd.Output, []byte(doc), 0o644)
}

func (cmd *Watch) Run() error {
	if cmd.URL == "" {
		return argp.ShowUsage
	} else if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return boardnet.Watch(ctx, cmd.URL, func(msg boardnet.Message) {
		doc, err := svgDocument(msg.Paths, msg.Width, msg.Height, cmd.Minify)
		if err != nil {
			log.Printf("[WATCH] Revision %d: %v", msg.Revision, err)
			return
		}
		tmp := cmd.Output + ".tmp"
		if err := os.WriteFile(tmp, []byte(doc), 0o644); err != nil {
			log.Printf("[WATCH] Write failed: %v", err)
			return
		}
		if err := os.Rename(tmp, cmd.Output); err != nil {
			log.Printf("[WATCH] Write failed: %v", err)
			return
		}
		log.Printf("[WATCH] Revision %d from %s: %d strokes", msg.Revision, msg.Host, len(msg.Paths))
	})
}

func (cmd *Discover) Run() error {
	timeout := time.Duration(cmd.Timeout * float64(time.Second))
	seen := map[string]bool{}
	err := boardnet.Browse(context.Background(), timeout, func(addr string) {
		if seen[addr] {
			return
		}
		seen[addr] = true
		fmt.Printf("ws://%s/ws\n", addr)
	})
	if err != nil {
		return err
	}
	if len(seen) == 0 {
		fmt.Println("No boards found")
	}
	return nil
}

func svgDocument(strokes []state.Stroke, width, height float64, minify bool) (string, error) {
	doc := export.ToSVG(strokes, width, height)
	if !minify {
		return doc, nil
	}
	return export.MinifySVG(doc)
}
