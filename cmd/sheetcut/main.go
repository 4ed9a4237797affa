package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/okanv/spritesheet"
	"github.com/okanv/spritesheet/encode"
	"github.com/okanv/spritesheet/utils"
)

const desc = `Slices a generated sprite sheet into uniform animation frames and packages them as an animated loop or an archive of stills.`

var cli struct {
	Input  string `arg:"" help:"Sprite sheet image (png, jpeg or gif)."`
	Output string `short:"o" help:"Output path. Defaults to the input name with a format-specific suffix."`

	Frames int `short:"n" default:"6" help:"Expected pose count; the grid layout is derived from it."`
	Rows   int `help:"Explicit grid rows (use together with --cols, overrides --frames)."`
	Cols   int `help:"Explicit grid columns (use together with --rows, overrides --frames)."`

	Format string `default:"gif" enum:"gif,apng,zip,png" help:"Output format: gif, apng, zip or png (directory of stills)."`
	Fps    int    `default:"8" help:"Playback rate for animated outputs."`

	KeepBackground bool `help:"Skip background removal."`
	AutoBackground bool `help:"Estimate the sheet background color instead of assuming near-white."`
	Kmeans         bool `help:"Use k-means clustering for background estimation."`
	MaxSize        int  `help:"Cap the longer frame side in pixels (0 = no cap)."`
}

func main() {
	kong.Parse(&cli, kong.Name("sheetcut"), kong.Description(desc))

	data, err := os.ReadFile(cli.Input)
	if err != nil {
		fatal("read %s: %v", cli.Input, err)
	}

	grid := spritesheet.GridFor(cli.Frames)
	if cli.Rows > 0 && cli.Cols > 0 {
		grid = spritesheet.Grid{Rows: cli.Rows, Cols: cli.Cols}
	}

	opt := spritesheet.DefaultOptions()
	opt.RemoveBackground = !cli.KeepBackground
	opt.AutoBackground = cli.AutoBackground
	if cli.Kmeans {
		opt.Background = spritesheet.BackgroundMethodKMeans
	}
	opt.MaxFrameSize = cli.MaxSize

	frames := spritesheet.Slice(data, grid, opt)
	if len(frames) == 0 {
		fatal("no frames extracted: %s could not be decoded or holds no drawable content", cli.Input)
	}

	out := cli.Output
	switch cli.Format {
	case "gif":
		if out == "" {
			out = withSuffix(cli.Input, ".gif")
		}
		writeFile(out, func(f *os.File) error { return encode.WriteGIF(f, frames, cli.Fps) })
	case "apng":
		if out == "" {
			out = withSuffix(cli.Input, ".anim.png")
		}
		if err := encode.WriteAPNG(out, frames, cli.Fps); err != nil {
			fatal("write %s: %v", out, err)
		}
	case "zip":
		if out == "" {
			out = withSuffix(cli.Input, ".zip")
		}
		writeFile(out, func(f *os.File) error { return encode.WriteArchive(f, frames) })
	case "png":
		if out == "" {
			out = withSuffix(cli.Input, "_frames")
		}
		if err := utils.SaveFrames(frames, out); err != nil {
			fatal("write %s: %v", out, err)
		}
	}

	b := frames[0].Bounds()
	fmt.Printf("%d frames (%dx%d, %dx%d grid) -> %s\n",
		len(frames), b.Dx(), b.Dy(), grid.Rows, grid.Cols, out)
}

func writeFile(path string, write func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		fatal("create %s: %v", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		fatal("write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		fatal("close %s: %v", path, err)
	}
}

func withSuffix(input, suffix string) string {
	if i := strings.LastIndexByte(input, '.'); i > 0 {
		return input[:i] + suffix
	}
	return input + suffix
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
