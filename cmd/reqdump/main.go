// Command reqdump parses a raw HTTP request read from a file or stdin and prints it
// as JSON.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/indigo-web/reqparse/config"
	"github.com/indigo-web/reqparse/http"
	"github.com/indigo-web/reqparse/http/status"
	"github.com/indigo-web/reqparse/parser"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type options struct {
	joinBody bool
	verbose  bool
	noColor  bool
}

type dumpedRequest struct {
	Method   string            `json:"method"`
	Proto    string            `json:"proto"`
	Resource string            `json:"resource"`
	Headers  map[string]string `json:"headers"`
	Body     string            `json:"body"`
}

func dump(request http.Request) dumpedRequest {
	return dumpedRequest{
		Method:   request.Method.String(),
		Proto:    request.Proto.String(),
		Resource: request.Resource.String(),
		Headers:  request.Headers,
		Body:     request.Body,
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "reqdump [file]",
		Short: "Parse a raw HTTP request and print it as JSON.",
		Long: `reqdump reads a complete HTTP/1.x request from the given file, or from stdin if
no file is given, and prints the parsed method, protocol, resource, headers and body.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.joinBody, "join-body", false, "join all the body lines instead of keeping the last one")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "report discarded body lines and overridden headers")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	color.NoColor = color.NoColor || opts.noColor

	in := cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}

		defer file.Close()
		in = file
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if opts.joinBody {
		cfg.Body.Lines = config.JoinLines
	}

	var logger parser.Logger
	if opts.verbose {
		log := logrus.New()
		log.SetOutput(cmd.ErrOrStderr())
		logger = log.WithField("component", "parser")
	}

	request, err := parser.New(cfg, logger).Parse(string(raw))
	if err != nil {
		var httpErr status.HTTPError
		if errors.As(err, &httpErr) {
			_, _ = color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%d %s: %s\n", httpErr.Code, status.Text(httpErr.Code), err)
		}

		return err
	}

	out, err := json.MarshalIndent(dump(request), "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("reqdump failed")
		os.Exit(1)
	}
}
