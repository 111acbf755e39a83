package main

import (
	"fmt"
	"io"
	"path/filepath"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/quadlab/numint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries what every sub command needs once the configuration is loaded.
type app struct {
	cfgFile string
	out     io.Writer
	errOut  io.Writer
	conf    numint.Config
	logger  kitlog.Logger
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"function":      "function",
	"log-level":     "general.log_level",
	"left":          "newton.left",
	"right":         "newton.right",
	"tolerance":     "newton.tolerance",
	"max-panels":    "newton.max_panels",
	"weighted":      "newton.weighted",
	"nodes":         "gauss.nodes",
	"proper":        "gauss.proper_weight",
	"margin":        "plot.margin",
	"outer-samples": "plot.outer_samples",
	"inner-samples": "plot.inner_samples",
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:          "numint",
		Short:        "Numerical integration of the test functions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.Flags())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "TOML configuration file (default: numint.toml in $"+numint.ConfigEnv+" or .)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("function", numint.Poly1.String(), "function: poly1, poly2, linear, sinusoidal, absolute or mixed")

	root.AddCommand(a.newtonCmd(), a.gaussCmd(), a.plotCmd())
	return root
}

func intervalFlags(fs *pflag.FlagSet) {
	fs.Float64("left", -2, "left integration bound")
	fs.Float64("right", 2, "right integration bound")
	fs.Bool("weighted", true, "multiply the integrand by exp(-x²)")
}

// load reads the configuration, lets the flags which were set override it and builds the logger.
func (a *app) load(fs *pflag.FlagSet) error {
	// Until the configured level is known, configuration errors are logged at info.
	a.logger, _ = numint.NewLogger(a.errOut, "info")
	v, err := numint.NewViper(a.cfgFile)
	if err != nil {
		return a.fail(err, "msg", "could not read configuration", "file", a.cfgFile)
	}
	if err := bindFlags(v, fs); err != nil {
		return a.fail(err, "msg", "could not bind flags")
	}
	if a.conf, err = numint.ConfigFromViper(v); err != nil {
		return a.fail(err, "msg", "invalid configuration")
	}
	a.logger, err = numint.NewLogger(a.errOut, a.conf.LogLevel)
	return err
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *app) fail(err error, keyvals ...interface{}) error {
	level.Error(a.logger).Log(append(keyvals, "err", err)...)
	return err
}

func (a *app) newtonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Integrate with the composite Newton-Cotes (Simpson) method",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.conf.Newton
			nc := numint.NewNewtonCotes(c.Weight(), c.MaxPanels, a.logger)
			est, err := nc.Integrate(a.conf.Function, c.Left, c.Right, c.Tolerance)
			if err != nil {
				return a.fail(err, "method", "newton-cotes", "function", a.conf.Function)
			}
			level.Info(a.logger).Log("method", "newton-cotes", "function", a.conf.Function, "value", est.Value, "panels", est.Iterations)
			fmt.Fprintln(a.out, est)
			return nil
		},
	}
	intervalFlags(cmd.Flags())
	cmd.Flags().Float64("tolerance", 0.001, "difference between successive estimates at which to stop")
	cmd.Flags().Int("max-panels", numint.DefaultMaxPanels, "give up after this many panels")
	return cmd
}

func (a *app) gaussCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gauss",
		Short: "Integrate f(x)exp(-x²) over the real line with Gauss-Hermite quadrature",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.conf.Gauss
			val, err := numint.GaussHermite(a.conf.Function, c.Nodes, c.ProperWeight)
			if err != nil {
				return a.fail(err, "method", "gauss-hermite", "function", a.conf.Function, "nodes", c.Nodes)
			}
			level.Info(a.logger).Log("method", "gauss-hermite", "function", a.conf.Function, "nodes", c.Nodes, "value", val)
			fmt.Fprintf(a.out, "%.3f\n", val)
			return nil
		},
	}
	cmd.Flags().Int("nodes", 3, "number of nodes, from 1 to 6")
	cmd.Flags().Bool("proper", false, "compute the weights from the Hermite polynomials instead of the table")
	return cmd
}

func (a *app) plotCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Export the samples of the integrand around the integration interval as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.conf.Newton
			if outFile == "" {
				outFile = filepath.Join(a.conf.OutputDir, a.conf.Function.String()+".csv")
			}
			p := numint.Sample(a.conf.Function, c.Weight(), c.Left, c.Right, a.conf.Plot)
			if err := p.Export(outFile); err != nil {
				return a.fail(err, "file", outFile)
			}
			level.Info(a.logger).Log("msg", "plot exported", "file", outFile, "points", len(p.LeftSide)+len(p.Middle)+len(p.RightSide))
			fmt.Fprintln(a.out, outFile)
			return nil
		},
	}
	intervalFlags(cmd.Flags())
	cmd.Flags().StringVar(&outFile, "out", "", "CSV output file (default: <output_path>/<function>.csv)")
	cmd.Flags().Float64("margin", 5, "width sampled on each side of the interval")
	cmd.Flags().Int("outer-samples", 1000, "samples on each side of the interval")
	cmd.Flags().Int("inner-samples", 10000, "samples within the interval")
	return cmd
}
