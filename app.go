// Package main is the entry point for the rstr application.
package main

import (
	"io"
	"os"

	"github.com/thirukguru/rstr/model"
	"github.com/thirukguru/rstr/service/flag"
	"github.com/thirukguru/rstr/service/generator"
	"github.com/thirukguru/rstr/service/output"
	"github.com/thirukguru/rstr/service/text"
)

var version = "1.0"

const (
	exitOK = iota
	exitUsage
	exitFatal
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run executes one invocation and returns the process exit code. A nil
// random source means crypto/rand.
func run(args []string, stdout, stderr io.Writer, random io.Reader) int {
	flagService := flag.NewService()
	outputService := output.NewService(stdout, stderr)

	req, err := flagService.Parse(args)
	if err != nil {
		outputService.ReportInvalidArguments()
		return exitUsage
	}

	var result string

	switch req.Action {
	case model.ActionHelp:
		result = newTextService(flagService).Help()
	case model.ActionVersion:
		result = newTextService(flagService).Version()
	default:
		result, err = generator.NewService(random).Generate(req.Config)
		if err != nil {
			outputService.ReportFatal(err)
			return exitFatal
		}
	}

	if err := outputService.PrintResult(result); err != nil {
		outputService.ReportFatal(err)
		return exitFatal
	}

	return exitOK
}

func newTextService(flagService flag.Service) text.Service {
	return text.NewService(model.VersionInfo{Version: version}, flagService.Usages())
}
