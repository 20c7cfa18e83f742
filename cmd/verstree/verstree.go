package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/verstree/verstree/appcontext"
	"github.com/verstree/verstree/config"
	"github.com/verstree/verstree/logging"
)

const VERSION = "0.1.0"

func main() {
	os.Exit(entryPoint())
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [options] <locate | bench | version> [args]\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func entryPoint() int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: could not get config directory: %s\n", flag.CommandLine.Name(), err)
		return 1
	}
	opt_configDefault := filepath.Join(configDir, "verstree", "verstree.yml")

	var opt_configfile string
	var opt_trace string
	var opt_quiet bool
	var opt_time bool

	flag.StringVar(&opt_configfile, "config", opt_configDefault, "configuration file")
	flag.StringVar(&opt_trace, "trace", "", "subsystems to trace, comma-separated")
	flag.BoolVar(&opt_quiet, "quiet", false, "suppress info output")
	flag.BoolVar(&opt_time, "time", false, "display command execution time")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		return 1
	}

	cfg, err := config.LoadOrCreate(opt_configfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", flag.CommandLine.Name(), err)
		return 1
	}

	logger := logging.NewLogger(os.Stdout, os.Stderr)
	if !opt_quiet {
		logger.EnableInfo()
	}
	if opt_trace == "" {
		opt_trace = cfg.Trace
	}
	if opt_trace != "" {
		logger.EnableTracing(opt_trace)
	}

	ctx := appcontext.NewAppContext()
	defer ctx.Close()
	ctx.SetLogger(logger)
	ctx.Config = cfg
	ctx.CWD = cwd
	ctx.NumCPU = runtime.GOMAXPROCS(0)
	ctx.OperatingSystem = runtime.GOOS
	ctx.Architecture = runtime.GOARCH
	ctx.ProcessID = os.Getpid()
	ctx.CommandLine = strings.Join(os.Args, " ")
	if u, err := user.Current(); err == nil {
		ctx.Username = u.Username
	}
	if hostname, err := os.Hostname(); err == nil {
		ctx.Hostname = hostname
	}

	command, args := flag.Arg(0), flag.Args()[1:]

	t0 := time.Now()
	var status int
	switch command {
	case "locate":
		status = cmdLocate(ctx, args)
	case "bench":
		status = cmdBench(ctx, args)
	case "version":
		fmt.Println(VERSION)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", flag.CommandLine.Name(), command)
		status = 1
	}

	if opt_time {
		logger.Printf("time: %s", time.Since(t0))
	}
	return status
}
