package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"

	"SketchBoard/internal/state"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.Error(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	test.Error(t, cfg.Validate())
	test.String(t, cfg.Tool, "brush")
	test.T(t, cfg.SimplifyOptions(), state.DefaultSimplifyOptions)

	opts, err := cfg.BoardOptions(nil)
	test.Error(t, err)
	test.T(t, opts.Tool, state.Tool(state.Brush{}))
	test.That(t, opts.Enabled)
	test.Float(t, opts.Style.Thickness, 3)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "board.toml", `
color = "red"
tool = "eraser"
eraser_radius = 12
combine = true

[simplify]
simplify_paths = false
amount = 4
`)
	cfg, err := Load(path)
	test.Error(t, err)
	test.String(t, cfg.Color, "red")
	test.Float(t, cfg.Thickness, 3, "default kept")
	test.That(t, cfg.Combine)
	test.T(t, cfg.SimplifyOptions(), state.SimplifyOptions{SimplifyPaths: false, SimplifyCurrentPath: false, Amount: 4, RoundPoints: true})

	opts, err := cfg.BoardOptions(nil)
	test.Error(t, err)
	test.T(t, opts.Tool, state.Tool(state.Eraser{Radius: 12}))
	test.String(t, opts.Style.Color, "#ff0000")
}

func TestLoadInvalid(t *testing.T) {
	tests := []string{
		`thickness = 0`,
		`opacity = 2`,
		`tool = "spray"`,
		`width = -1`,
		"[simplify]\namount = -3",
		`color = `,
		`color = "octarine"`,
	}
	for _, content := range tests {
		t.Run(content, func(t *testing.T) {
			_, err := Load(writeFile(t, "board.toml", content))
			test.That(t, err != nil)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	test.That(t, err != nil)
}

func TestBoardOptionsPathsFile(t *testing.T) {
	cfg := Default()
	cfg.PathsFile = writeFile(t, "paths.json", `[{"id":"a","color":"#000","thickness":2,"opacity":1,"combine":false,"data":[[{"x":0,"y":0},{"x":5,"y":5}]],"path":["M0,0 L5,5"]}]`)
	opts, err := cfg.BoardOptions(nil)
	test.Error(t, err)
	test.T(t, len(opts.Initial), 1)
	test.String(t, opts.Initial[0].ID, "a")

	cfg.PathsFile = writeFile(t, "bad.json", `[{"color":"#000","thickness":2,"opacity":1,"data":[],"path":[]}]`)
	_, err = cfg.BoardOptions(nil)
	test.That(t, err != nil)
}
