// Main command logic, flag parsing, and orchestration

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lmittmann/tint"

	"github.com/arclab/arc2html/internal/arc"
	"github.com/arclab/arc2html/internal/convert"
	"github.com/arclab/arc2html/internal/version"
)

var (
	// Command line flags
	inputPath   string
	outputPath  string
	silent      bool
	verbose     bool
	showVersion bool
	findArc     bool
)

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	magentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	flag.StringVar(&inputPath, "input", "", "Explicit path to the StorableSidebar.json snapshot")
	flag.StringVar(&outputPath, "o", "", "Output file path (default arc_bookmarks_YYYY_MM_DD.html)")
	flag.BoolVar(&silent, "silent", false, "Silence all output")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print build commit hash and time")
	flag.BoolVar(&findArc, "find-arc", false, "Show the Arc Browser data path and exit")
	flag.Parse()

	setupLogging()

	if showVersion {
		info, ok := version.FromBuildInfo()
		if !ok {
			slog.Error("could not fetch VCS build metadata")
			os.Exit(1)
		}
		fmt.Printf("%s | %s [%s]\n",
			boldStyle.Render("GIT TIME"),
			greenStyle.Render(info.Time.Format("2006-01-02")),
			yellowStyle.Render(strconv.FormatInt(info.Time.Unix(), 10)))
		fmt.Printf("%s | %s\n",
			boldStyle.Render("GIT HASH"),
			magentaStyle.Render(info.Revision))
		return
	}

	if findArc {
		path, err := arc.FindDataPath()
		if err != nil {
			fmt.Printf("%s\n", redStyle.Render("Error: "+err.Error()))
			return
		}
		fmt.Printf("%s: %s\n", boldStyle.Render("Arc Data Path"), cyanStyle.Render(path))
		if _, err := os.Stat(path); err == nil {
			fmt.Println(greenStyle.Render("✓ File found"))
		} else {
			fmt.Println(redStyle.Render("✗ File not found"))
		}
		return
	}

	data, err := arc.ReadSidebar(inputPath)
	if err != nil {
		slog.Error("failed to read sidebar data", "error", err)
		os.Exit(1)
	}

	html, stats, err := convert.Run(data)
	if err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}

	out := outputPath
	if out == "" {
		out = arc.DefaultOutputName(time.Now())
	}

	slog.Info("writing HTML", "spaces", stats.Spaces, "bookmarks", stats.Bookmarks)
	if err := os.WriteFile(out, []byte(html), 0644); err != nil {
		slog.Error("failed to write output", "path", out, "error", err)
		os.Exit(1)
	}
	slog.Debug("HTML written", "path", out)

	slog.Info("done", "output", out)
}

func setupLogging() {
	if silent {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04",
	})))
}
