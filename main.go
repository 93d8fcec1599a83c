package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"artgen/generate"
	"artgen/parallel"
)

func main() {
	var cmd generate.CLICmd
	kong.Parse(&cmd,
		kong.Name("artgen"),
		kong.Description("Generate abstract expressionist or surrealist artwork."),
	)

	if err := cmd.Run(parallel.New(cmd.Workers)); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
