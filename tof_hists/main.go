package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	"github.com/decibelcooper/delphesplot"
)

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `Usage: `+fs.Name()+` [options] <delphes-input-files>... <label>

Fills the jet pT, di-electron mass and muon/electron time-of-flight
distributions and writes histTOFmuons_<label>.png and
histTOFelectrons_<label>.png.

options:
`,
	)
	fs.PrintDefaults()
}

type options struct {
	configFile *string
	label      *string
	outDir     *string
	saveAll    *bool
	weighted   *bool
	profMode   *string
	verbose    *bool

	jetPTBins delphesplot.Binning
	massBins  delphesplot.Binning
	tofBins   delphesplot.Binning
}

func newFlagSet(name string) (*flag.FlagSet, *options) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := &options{
		configFile: fs.String("config", "", "JSON configuration file"),
		label:      fs.String("label", "", "label used in the output file names (default: last argument)"),
		outDir:     fs.String("outdir", ".", "output directory"),
		saveAll:    fs.Bool("save-all", false, "also save the jet pT and mass plots"),
		weighted:   fs.Bool("weighted", false, "fill histograms with the event weights"),
		profMode:   fs.String("profile", "none", "profile the run: cpu, mem or none"),
		verbose:    fs.Bool("v", false, "debug logging"),
	}
	fs.Var(&opts.jetPTBins, "jetpt-bins", "jet pT binning as nbins:low:high (default 100:0:100)")
	fs.Var(&opts.massBins, "mass-bins", "mass binning as nbins:low:high (default 100:0:30)")
	fs.Var(&opts.tofBins, "tof-bins", "time-of-flight binning as nbins:low:high (default 15:0:15)")
	fs.Usage = func() { printUsage(fs) }
	return fs, opts
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	fs, opts := newFlagSet(os.Args[0])
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *opts.verbose {
		level = slog.LevelDebug
	}
	logger := delphesplot.NewLogger(os.Stderr, level)
	delphesplot.SetLogger(logger)

	switch *opts.profMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	case "none", "":
	default:
		fs.Usage()
		logger.Error("invalid profile mode", "mode", *opts.profMode)
		return 1
	}

	config, err := configure(fs, opts)
	if err != nil {
		fs.Usage()
		logger.Error(err.Error())
		return 1
	}

	if err := run(context.Background(), config, logger); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}

// configure merges the configuration file with the flags that were set
// and the positional arguments of a parsed flag set.
func configure(fs *flag.FlagSet, opts *options) (delphesplot.Config, error) {
	config, err := delphesplot.LoadConfig(*opts.configFile)
	if err != nil {
		return config, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "label":
			config.Label = *opts.label
		case "outdir":
			config.OutDir = *opts.outDir
		case "save-all":
			config.SaveAll = *opts.saveAll
		case "weighted":
			config.Weighted = *opts.weighted
		case "jetpt-bins":
			config.Binnings.JetPT = opts.jetPTBins
		case "mass-bins":
			config.Binnings.Mass = opts.massBins
		case "tof-bins":
			config.Binnings.TOF = opts.tofBins
		}
	})

	args := fs.Args()
	if config.Label == "" && len(args) > 0 {
		config.Label = args[len(args)-1]
		args = args[:len(args)-1]
	}
	if len(args) > 0 {
		config.Inputs = args
	}
	if len(config.Inputs) == 0 {
		return config, delphesplot.ErrNoInputs
	}

	return config, config.Validate()
}

func run(ctx context.Context, config delphesplot.Config, logger *slog.Logger) error {
	reader, err := delphesplot.Open(config.Inputs...)
	if err != nil {
		return err
	}
	defer reader.Close()

	logger.Info(fmt.Sprintf("number of entries %d", reader.Entries()))

	analysis := delphesplot.NewAnalysis(config.Binnings)
	analysis.Weighted = config.Weighted

	n, err := analysis.Run(ctx, reader)
	if err != nil {
		return err
	}
	logger.Info("processed events", "n", n,
		"jet_pt", analysis.JetPT.Entries(),
		"mass", analysis.Mass.Entries(),
		"tof_muons", analysis.TOFMuons.Entries(),
		"tof_electrons", analysis.TOFElectrons.Entries(),
	)

	out := delphesplot.OutputNames(config.Label).In(config.OutDir)
	written, err := analysis.Plots().Save(out, config.SaveAll)
	for _, path := range written {
		logger.Info("saved plot", "file", path)
	}
	return err
}
