package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gfsrg/config"
	"github.com/katalvlaran/gfsrg/factor"
	"github.com/katalvlaran/gfsrg/metrics"
	"github.com/katalvlaran/gfsrg/pipeline"
	"github.com/katalvlaran/gfsrg/report"
	"github.com/katalvlaran/gfsrg/sweep"
)

// Interactive prompts, used when no powers are given on the command line.
const (
	promptStart  = "What is the starting power of 2?: "
	promptEnd    = "What is the ending power of 2?: "
	promptOutput = "Where would you like the output (leave blank for console): "
)

type runOptions struct {
	configPath  string
	start       int
	end         int
	powers      string
	output      string
	workers     int
	taskTimeout time.Duration
	metricsFile string
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Strongly regular power-difference graphs over GF(2^n)",
		Long: `gfsrg builds, for every power n in a sweep and every nontrivial factor d
of 2^n - 1, the graph on GF(2^n) joining x and y when x - y is a nonzero
d-th power. Each graph is tested for connectivity and strong regularity.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			klog.SetFormatter(&klog.FmtConstWidth{
				FileNameCharWidth: 16,
				UseColor:          false,
			})
		},
	}

	fset := flag.NewFlagSet(appName, flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	cmd.PersistentFlags().AddGoFlagSet(fset)

	cmd.AddCommand(newRunCmd(), newFactorsCmd(), newVersionCmd())
	return cmd
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sweep powers of 2 and report graph properties",
		Example: `  gfsrg run --start 4 --end 8
  gfsrg run --powers "4..6, 8" --output results.txt --workers 4
  gfsrg run            # prompts for start, end and output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSweep(ctx, cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	f.IntVar(&opts.start, "start", 0, "First power of 2 to sweep")
	f.IntVar(&opts.end, "end", 0, "Last power of 2 to sweep (inclusive)")
	f.StringVar(&opts.powers, "powers", "", `Powers to sweep, e.g. "4..8, 10"`)
	f.StringVarP(&opts.output, "output", "o", "", `Results destination: file path, "stdout" or "stderr"`)
	f.IntVar(&opts.workers, "workers", 0, "Concurrent tasks (default: number of CPUs)")
	f.DurationVar(&opts.taskTimeout, "task-timeout", 0, "Per-task time limit (0 = none)")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile on exit")
	cmd.MarkFlagsRequiredTogether("start", "end")
	cmd.MarkFlagsMutuallyExclusive("powers", "start")

	return cmd
}

func runSweep(ctx context.Context, cmd *cobra.Command, opts runOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	var powers []int
	flags := cmd.Flags()
	switch {
	case flags.Changed("powers"):
		if powers, err = sweep.Parse(opts.powers); err != nil {
			return err
		}
	case flags.Changed("start"):
		powers = sweep.Range(opts.start, opts.end)
	default:
		in := bufio.NewReader(cmd.InOrStdin())
		start, end, dest, err := prompt(in, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		powers = sweep.Range(start, end)
		if dest != "" {
			cfg.Output = dest
		}
	}

	out, err := report.Open(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	var w io.Writer = out
	if out.Name() == report.Stdout {
		w = cmd.OutOrStdout()
	}

	m := metrics.New()
	d := pipeline.NewDispatcher(
		pipeline.WithWorkers(cfg.Workers),
		pipeline.WithTaskTimeout(cfg.TaskTimeout),
		pipeline.WithMaxPower(cfg.MaxPower),
		pipeline.WithMetrics(m),
	)
	klog.Infof("sweeping powers %v with %d workers, output %s", powers, d.Workers(), out.Name())

	sum, runErr := d.Run(ctx, powers, w)
	klog.Infof("done: %s", sum)

	if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
		klog.Errorf("%v", err)
	}
	if runErr != nil {
		return runErr
	}
	if n := len(sum.Failures); n > 0 {
		return errors.Errorf("%d task(s) failed", n)
	}
	return nil
}

// loadConfig layers defaults, the optional config file and explicit flags.
func loadConfig(cmd *cobra.Command, opts runOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		fileCfg, err := config.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, errors.Wrap(err, "load config")
		}
		cfg = fileCfg
	}

	// Explicit flags win, zero values included.
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("task-timeout") {
		cfg.TaskTimeout = opts.taskTimeout
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// prompt asks for the sweep bounds and the output destination.
func prompt(in *bufio.Reader, out io.Writer) (start, end int, dest string, err error) {
	if start, err = promptInt(in, out, promptStart); err != nil {
		return 0, 0, "", err
	}
	if end, err = promptInt(in, out, promptEnd); err != nil {
		return 0, 0, "", err
	}
	fmt.Fprint(out, promptOutput)
	dest, err = readLine(in)
	if err != nil {
		return 0, 0, "", err
	}
	return start, end, dest, nil
}

func promptInt(in *bufio.Reader, out io.Writer, msg string) (int, error) {
	fmt.Fprint(out, msg)
	line, err := readLine(in)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, errors.Errorf("malformed input %q: power must be an integer", line)
	}
	return n, nil
}

// readLine returns the next line without its terminator. A final line without
// a newline is accepted; reading past the end is an error.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimSpace(line), nil
}

func newFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors N",
		Short: "Print the nontrivial factors of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("malformed input %q: N must be an integer", args[0])
			}
			fs := factor.NonTrivialFactors(n)
			if len(fs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d has no nontrivial factors\n", n)
				return nil
			}
			parts := make([]string, len(fs))
			for i, f := range fs {
				parts[i] = strconv.Itoa(f)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
