package main

import (
	"flag"
	"fmt"
	"os"

	"alumnirabatt/internal/di"
	"alumnirabatt/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the YAML config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "mirror logs to the console")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "alumnirabatt: %s\n", err)
		os.Exit(1)
	}
}
