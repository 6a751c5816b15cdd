// Command nojs-compiler generates Render methods from *.gt.html component templates.
//
//	go run ./cmd/nojs-compiler -in ./internal/app/components
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vcrobe/nojs-greeter/compiler"
	"github.com/vcrobe/nojs-greeter/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	inDir := flag.String("in", ".", "directory scanned for *.gt.html templates")
	framework := flag.String("framework", compiler.DefaultFrameworkPath, "import path prefix of the runtime, vdom and events packages")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	c := compiler.New(
		compiler.WithFrameworkPath(*framework),
		compiler.WithLogger(logger.NewConsole(*logLevel)),
	)
	_, err := c.Compile(*inDir)
	return err
}
