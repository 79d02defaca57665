package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	ggfilter "github.com/gogpu/gg-filter"
	"github.com/gogpu/gg-filter/pixel"
)

var errBadFilterFlag = errors.New("bad filter flag")

// applyFlags holds the flags of the apply command.
type applyFlags struct {
	filters   []string
	seed      uint64
	scale     float64
	region    string
	corrected bool
	verbose   bool
	lang      string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ggfilter",
		Short:         "Apply pixel filters to images",
		Version:       ggfilter.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newApplyCmd(), newListCmd())
	return root
}

func newApplyCmd() *cobra.Command {
	var f applyFlags

	cmd := &cobra.Command{
		Use:   "apply [flags] <input> <output>",
		Short: "Run a chain of filters over an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, &f, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&f.filters, "filter", "f", nil, "filter to apply as name[:arg,arg...] (repeatable)")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for noise and corrode (default: random)")
	flags.Float64Var(&f.scale, "scale", 1, "resize factor applied before filtering")
	flags.StringVar(&f.region, "mosaic-region", "", "region for mosaicP and mosaicX as x0,y0,x1,y1")
	flags.BoolVar(&f.corrected, "corrected-desaturate", false, "graydesat computes (max+min)/2")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log every filter to stderr")
	flags.StringVar(&f.lang, "lang", "en", "language tag for the summary line")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List filter names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range ggfilter.Filters() {
				if ggfilter.IsChannelFilter(name) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:red|green|blue\n", name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func runApply(cmd *cobra.Command, f *applyFlags, input, output string) error {
	if f.verbose {
		ggfilter.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	steps := make([]filterStep, 0, len(f.filters))
	for _, v := range f.filters {
		step, err := parseFilterFlag(v)
		if err != nil {
			return err
		}
		steps = append(steps, step)
	}

	var opts []ggfilter.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, ggfilter.WithSeed(f.seed))
	}
	if f.region != "" {
		r, err := parseRect(f.region)
		if err != nil {
			return err
		}
		opts = append(opts, ggfilter.WithMosaicRegion(r))
	}
	if f.corrected {
		opts = append(opts, ggfilter.WithCorrectedDesaturate())
	}

	buf, err := pixel.Load(input)
	if err != nil {
		return err
	}
	if f.scale != 1 {
		if !(f.scale > 0) {
			return fmt.Errorf("scale must be positive, got %v", f.scale)
		}
		w := max(1, int(float64(buf.Width())*f.scale))
		h := max(1, int(float64(buf.Height())*f.scale))
		if buf, err = buf.Scale(w, h); err != nil {
			return err
		}
	}

	e, err := ggfilter.New(buf, opts...)
	if err != nil {
		return err
	}
	for _, step := range steps {
		if err := step.run(e); err != nil {
			return err
		}
	}
	if err := e.Working().Save(output); err != nil {
		return err
	}

	p := message.NewPrinter(language.Make(f.lang))
	p.Fprintf(cmd.OutOrStdout(), "%d filters applied to %d×%d image (%d pixels), saved %s\n",
		len(steps), e.Width(), e.Height(), e.Width()*e.Height(), output)
	return nil
}

// filterStep is one parsed -f flag.
type filterStep struct {
	name    string
	args    []float64
	channel string
}

func (s filterStep) run(e *ggfilter.Engine) error {
	if ggfilter.IsChannelFilter(s.name) {
		_, err := e.ApplyChannel(s.name, s.channel)
		return err
	}
	_, err := e.Apply(s.name, s.args...)
	return err
}

// parseFilterFlag parses name[:arg,arg...]. Channel filters take the
// channel name as their single argument.
func parseFilterFlag(s string) (filterStep, error) {
	name, rest, hasArgs := strings.Cut(s, ":")
	step := filterStep{name: strings.TrimSpace(name)}
	if step.name == "" {
		return step, fmt.Errorf("%w: %q: empty name", errBadFilterFlag, s)
	}
	if !hasArgs {
		return step, nil
	}

	if ggfilter.IsChannelFilter(step.name) {
		step.channel = strings.TrimSpace(rest)
		return step, nil
	}
	for _, field := range strings.Split(rest, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return step, fmt.Errorf("%w: %q: %w", errBadFilterFlag, s, err)
		}
		step.args = append(step.args, v)
	}
	return step, nil
}

// parseRect parses x0,y0,x1,y1.
func parseRect(s string) (image.Rectangle, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return image.Rectangle{}, fmt.Errorf("region %q: want x0,y0,x1,y1", s)
	}
	var v [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("region %q: %w", s, err)
		}
		v[i] = n
	}
	return image.Rect(v[0], v[1], v[2], v[3]), nil
}
