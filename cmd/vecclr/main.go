// cmd/vecclr/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/go-vecmath/pkg/color"
	"github.com/opd-ai/go-vecmath/pkg/config"
	"github.com/opd-ai/go-vecmath/pkg/logging"
	"github.com/opd-ai/go-vecmath/pkg/validation"
	"github.com/opd-ai/go-vecmath/pkg/vector"
)

// errUsage marks argument errors that should print the usage text.
var errUsage = errors.New("usage")

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithRunID(context.Background(), "")

	configPath := flag.String("config", "", "Path to configuration file (defaults to $VECMATH_CONFIG)")
	createDefault := flag.Bool("default", false, "Write the default configuration to -config and exit")
	dim := flag.Int("dim", 3, "Vector dimension: 2 or 3")
	flag.Usage = usage
	flag.Parse()

	if *createDefault {
		if *configPath == "" {
			fmt.Fprintln(os.Stderr, "-default requires -config")
			os.Exit(2)
		}
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	if *configPath != "" {
		os.Setenv("VECMATH_CONFIG", *configPath)
	}
	toolConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err)
		os.Exit(1)
	}

	if err := run(ctx, logger, toolConfig, *dim, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(2)
		}
		logger.Error(ctx, "Command failed", err, "args", flag.Args())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: vecclr [flags] <command> [args]

Vector commands take comma separated components, e.g. 1,2,3:
  dot A B          dot product
  cross A B        cross product (3D only)
  normalize A      unit vector and original length
  length A         length (and XY length in 3D)
  distance A B     distance between points
  lerp A B T       linear interpolation
  angle A B        angle between vectors

Color commands:
  pack R,G,B,A     pack float channels in [0,1], or a palette name
  unpack WORD      split a packed word such as 0xFF0000FF
  hex #RRGGBB[AA]  show a hex color, or a palette name, in every form

Flags:
`)
	flag.PrintDefaults()
}

// run executes one command and writes its result to w.
func run(ctx context.Context, logger *logging.Logger, cfg *config.ToolConfig, dim int, args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, args := args[0], args[1:]
	if err := validation.ValidateCommand(cmd); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if dim != 2 && dim != 3 {
		return fmt.Errorf("%w: -dim must be 2 or 3, got %d", errUsage, dim)
	}

	logger.Debug(ctx, "Running command", "command", cmd, "dim", dim, "args", args)

	switch cmd {
	case "pack", "unpack", "hex":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s takes 1 argument, got %d", errUsage, cmd, len(args))
		}
		return runColor(cfg, cmd, args[0], w)
	}

	want := map[string]int{
		"dot": 2, "cross": 2, "normalize": 1, "length": 1,
		"distance": 2, "lerp": 3, "angle": 2,
	}[cmd]
	if len(args) != want {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", errUsage, cmd, want, len(args))
	}

	operands := make([][]float64, 0, 2)
	for _, arg := range args[:min(len(args), 2)] {
		p, err := validation.ParseComponents(arg, dim)
		if err != nil {
			return logging.WrapError(err, "parse vector %q", arg)
		}
		operands = append(operands, p)
	}

	var t float64
	if cmd == "lerp" {
		p, err := validation.ParseComponents(args[2], 1)
		if err != nil {
			return logging.WrapError(err, "parse interpolant %q", args[2])
		}
		t = p[0]
	}

	if dim == 2 {
		return run2D(cfg, cmd, operands, t, w)
	}
	return run3D(cfg, cmd, operands, t, w)
}

func run3D(cfg *config.ToolConfig, cmd string, operands [][]float64, t float64, w io.Writer) error {
	a := vector.FromSlice3D(operands[0])
	var b vector.Vector3D[float64]
	if len(operands) > 1 {
		b = vector.FromSlice3D(operands[1])
	}

	switch cmd {
	case "dot":
		fmt.Fprintln(w, cfg.FormatFloat(a.Dot(b)))
	case "cross":
		c := vector.Cross3D(a, b)
		fmt.Fprintln(w, formatVector(cfg, c.Slice()...))
	case "normalize":
		n := a
		length := n.Normalize()
		fmt.Fprintln(w, formatVector(cfg, n.Slice()...), cfg.FormatFloat(length))
	case "length":
		fmt.Fprintln(w, cfg.FormatFloat(a.Length()), cfg.FormatFloat(a.Length2D()))
	case "distance":
		fmt.Fprintln(w, cfg.FormatFloat(a.Distance(b)))
	case "lerp":
		var out vector.Vector3D[float64]
		out.Lerp(a, b, t)
		fmt.Fprintln(w, formatVector(cfg, out.Slice()...))
	case "angle":
		if a.IsZero() || b.IsZero() {
			return errors.New("angle is undefined for a zero vector")
		}
		fmt.Fprintln(w, cfg.FormatFloat(cfg.Angle(a.AngleBetween(&b))))
	}
	return nil
}

func run2D(cfg *config.ToolConfig, cmd string, operands [][]float64, t float64, w io.Writer) error {
	a := vector.FromSlice2D(operands[0])
	var b vector.Vector2D[float64]
	if len(operands) > 1 {
		b = vector.FromSlice2D(operands[1])
	}

	switch cmd {
	case "dot":
		fmt.Fprintln(w, cfg.FormatFloat(a.Dot(b)))
	case "cross":
		return fmt.Errorf("%w: cross requires -dim 3", errUsage)
	case "normalize":
		n := a
		length := n.Normalize()
		fmt.Fprintln(w, formatVector(cfg, n.Slice()...), cfg.FormatFloat(length))
	case "length":
		fmt.Fprintln(w, cfg.FormatFloat(a.Length()))
	case "distance":
		fmt.Fprintln(w, cfg.FormatFloat(a.Distance(b)))
	case "lerp":
		var out vector.Vector2D[float64]
		out.Lerp(a, b, t)
		fmt.Fprintln(w, formatVector(cfg, out.Slice()...))
	case "angle":
		if a.IsZero() || b.IsZero() {
			return errors.New("angle is undefined for a zero vector")
		}
		fmt.Fprintln(w, cfg.FormatFloat(cfg.Angle(a.AngleBetween(&b))))
	}
	return nil
}

func runColor(cfg *config.ToolConfig, cmd, arg string, w io.Writer) error {
	switch cmd {
	case "pack":
		if c, err := cfg.Color(arg); err == nil {
			fmt.Fprintf(w, "0x%08X\n", c.Packed())
			return nil
		}
		p, err := validation.ParseComponents(arg, 4)
		if err != nil {
			return logging.WrapError(err, "parse color %q", arg)
		}
		c := color.NewF(p[0], p[1], p[2], p[3])
		fmt.Fprintf(w, "0x%08X\n", c.Packed())
	case "unpack":
		word, err := strconv.ParseUint(strings.TrimSpace(arg), 0, 32)
		if err != nil {
			return logging.WrapError(err, "parse packed word %q", arg)
		}
		printColor(cfg, w, color.Unpack(uint32(word)))
	case "hex":
		c, err := cfg.Color(arg)
		if errors.Is(err, config.ErrUnknownColor) {
			c, err = color.ParseHex(arg)
		}
		if err != nil {
			return err
		}
		printColor(cfg, w, c)
	}
	return nil
}

// printColor writes the hex, packed, integral and float forms of c.
func printColor(cfg *config.ToolConfig, w io.Writer, c color.RGBA8) {
	f := color.FromIntegral[float64](c.R, c.G, c.B, c.A)
	fmt.Fprintf(w, "hex %s\n", c.Hex())
	fmt.Fprintf(w, "packed 0x%08X\n", c.Packed())
	fmt.Fprintf(w, "rgba8 %d,%d,%d,%d\n", c.R, c.G, c.B, c.A)
	fmt.Fprintf(w, "rgbaf %s\n", formatVector(cfg, f.R, f.G, f.B, f.A))
}

func formatVector(cfg *config.ToolConfig, components ...float64) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = cfg.FormatFloat(c)
	}
	return strings.Join(parts, ",")
}
