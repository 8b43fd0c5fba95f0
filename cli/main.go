package main

import (
	"context"
	"flag"
	"flagkit"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strconv"
)

func main() {
	configPath := flag.String("config", "", "YAML options file")
	flag.Parse()

	opts, err := flagkit.LoadOptions(*configPath)
	if err != nil {
		log.Fatalf("load options: %s", err)
	}
	level, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		log.Fatalf("log level: %s", err)
	}
	log.SetLevel(level)

	if err := run(context.Background(), os.Stdout, opts); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, opts *flagkit.Options) error {
	client := flagkit.NewClient(&opts.Client)
	defer client.Close()
	fmt.Fprintln(w, client.Fetch(ctx, opts.URL))

	var groupOpts []flagkit.GroupOption
	if opts.Operations.Timeout > 0 {
		groupOpts = append(groupOpts, flagkit.WithTimeout(opts.Operations.Timeout))
	}
	flags, err := flagkit.RunOperations(ctx, opts.OperationDelays(), groupOpts...)
	if err != nil {
		log.Warnf("operations: %s", err)
	}
	if flagkit.AllOperationsComplete(flags) {
		fmt.Fprintln(w, "All operations are complete")
	} else {
		fmt.Fprintln(w, "Some operations are still pending")
	}

	adjusted, err := flagkit.AdjustCacheSize(opts.CacheSize)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Adjusted cache size: %d\n", adjusted)

	cacheOpts := opts.Cache
	cacheOpts.InitialSize = opts.CacheSize
	cache, err := flagkit.NewCache(&cacheOpts)
	if err != nil {
		return err
	}
	defer cache.Close()
	if err := cache.Put("adjusted_cache_size", strconv.Itoa(adjusted)); err != nil {
		return err
	}
	if err := cache.Put("operations", flags.String()); err != nil {
		return err
	}

	var ui flagkit.Flags
	ui = flagkit.SetVisibility(ui, true)
	ui = flagkit.SetEnabled(ui, true)
	printUI(w, ui)
	ui = flagkit.SetVisibility(ui, false)
	ui = flagkit.SetEnabled(ui, false)
	printUI(w, ui)
	return nil
}

func printUI(w io.Writer, ui flagkit.Flags) {
	fmt.Fprintf(w, "UI component is visible: %t\n", flagkit.IsVisible(ui))
	fmt.Fprintf(w, "UI component is enabled: %t\n", flagkit.IsEnabled(ui))
}
