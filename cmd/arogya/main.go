package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ama-arogya/arogya/pkg/server"
)

var version = "dev"

func main() {
	server.Version = version

	root := &cobra.Command{
		Use:     "arogya",
		Short:   "Arogya — multilingual health-advice chat service",
		Version: version,
	}

	root.AddCommand(
		newServeCmd(),
		newStatsCmd(),
		newContentCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
