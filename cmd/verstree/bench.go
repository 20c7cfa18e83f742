package main

import (
	"flag"
	"os"

	"github.com/verstree/verstree/appcontext"
	"github.com/verstree/verstree/bench"
)

func cmdBench(ctx *appcontext.AppContext, args []string) int {
	logger := ctx.GetLogger()

	flags := flag.NewFlagSet("bench", flag.ExitOnError)
	var opt_config string
	var opt_out string
	flags.StringVar(&opt_config, "config", "", "bench scenario file")
	flags.StringVar(&opt_out, "out", "", "write the serialized report to this file")
	flags.Parse(args)

	if opt_config == "" {
		opt_config = ctx.Config.BenchConfig
	}

	cfg := bench.DefaultConfiguration()
	if opt_config != "" {
		var err error
		cfg, err = bench.ParseConfigFile(opt_config)
		if err != nil {
			logger.Error("bench: %s", err)
			return 1
		}
	}

	runner := bench.NewRunner(cfg, logger)
	report, err := runner.Run()
	if err != nil {
		logger.Error("bench: %s", err)
		return 1
	}

	if err := report.Render(ctx.Stdout); err != nil {
		logger.Error("bench: %s", err)
		return 1
	}

	if opt_out != "" {
		f, err := os.Create(opt_out)
		if err != nil {
			logger.Error("bench: %s", err)
			return 1
		}
		defer f.Close()
		if err := report.Serialize(f); err != nil {
			logger.Error("bench: failed to write report: %s", err)
			return 1
		}
		logger.Info("wrote report %s to %s", report.Identifier, opt_out)
	}

	return 0
}
