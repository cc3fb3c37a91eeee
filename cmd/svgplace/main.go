// Command svgplace moves the paths of an SVG document so that their
// centers land on given points.
//
//	svgplace [-config file.toml] (-plan plan.yaml | -at x,y [-id ID]) [-out file] [-report file] [-dedupe] input.svg
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mindera-gaming/svg-placer/config"
	"github.com/mindera-gaming/svg-placer/layout"
	"github.com/mindera-gaming/svg-placer/logger"
	"github.com/mindera-gaming/svg-placer/svg"
)

func main() {
	os.Exit(exitCode(run(os.Args[1:], os.Stdout), nil))
}

// exitCode logs err and returns the process status for it. Without a
// logger, one writing errors to stderr is built, since run may fail
// before its own logger exists.
func exitCode(err error, log *zap.Logger) int {
	if err == nil {
		return 0
	}

	if log == nil {
		fallback, buildErr := logger.New("error", "console")
		if buildErr != nil {
			fmt.Fprintln(os.Stderr, "svgplace:", err)
			return 1
		}
		log = fallback
	}
	log.Error("svgplace failed", zap.Error(err))
	_ = log.Sync()

	return 1
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("svgplace", flag.ContinueOnError)
	configFile := flags.String("config", "", "TOML configuration file")
	planFile := flags.String("plan", "", "YAML placement plan")
	at := flags.String("at", "", "place path centers at `x,y`")
	id := flags.String("id", "", "with -at, only place the path with this id")
	out := flags.String("out", "", "write the placed document to this file instead of stdout")
	report := flags.String("report", "", "write a YAML placement report to this file")
	dedupe := flags.Bool("dedupe", false, "drop paths that repeat an earlier path")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("expected exactly one input file")
	}
	input := flags.Arg(0)

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.ReadTOML(*configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	plan, err := buildPlan(*planFile, *at, *id)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	paths, err := svg.ParsePath(data, cfg.ParserOptions())
	if err != nil {
		return fmt.Errorf("parsing %s: %w", input, err)
	}
	log.Info("parsed document", zap.String("file", input), zap.Int("paths", len(paths)))

	if *dedupe {
		unique, err := svg.Dedupe(paths)
		if err != nil {
			return err
		}
		log.Info("dropped duplicate paths", zap.Int("count", len(paths)-len(unique)))
		paths = unique
	}

	placed, results, err := layout.Apply(plan, paths, layout.Options{
		Threshold: cfg.Math.Float64EqualityThreshold,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	doc, err := svg.Marshal(placed)
	if err != nil {
		return err
	}
	if err := writeOutput(*out, stdout, doc); err != nil {
		return err
	}

	if *report != "" {
		if err := writeReport(*report, results); err != nil {
			return err
		}
	}
	log.Info("placed paths", zap.Int("placed", len(results)))

	return nil
}

// buildPlan reads the plan file, or builds a single-target plan from -at.
func buildPlan(planFile, at, id string) (layout.Plan, error) {
	switch {
	case planFile != "" && at != "":
		return layout.Plan{}, errors.New("-plan and -at cannot be used together")
	case planFile != "":
		f, err := os.Open(planFile)
		if err != nil {
			return layout.Plan{}, err
		}
		defer f.Close()

		return layout.LoadPlan(f)
	case at != "":
		target, err := parseCoord(at)
		if err != nil {
			return layout.Plan{}, err
		}
		if id != "" {
			return layout.Plan{Paths: map[string]layout.Coord{id: target}}, nil
		}

		return layout.Plan{All: &target}, nil
	default:
		return layout.Plan{}, errors.New("nothing to place: pass -plan or -at")
	}
}

// parseCoord parses an "x,y" pair
func parseCoord(s string) (layout.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return layout.Coord{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return layout.Coord{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return layout.Coord{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}

	return layout.Coord{X: x, Y: y}, nil
}

func writeOutput(fileName string, stdout io.Writer, doc []byte) error {
	if fileName == "" {
		_, err := stdout.Write(doc)
		return err
	}

	return os.WriteFile(fileName, doc, 0o644)
}

func writeReport(fileName string, results []layout.Result) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}

	if err := layout.WriteReport(f, results); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
