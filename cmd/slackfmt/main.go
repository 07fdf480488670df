package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	slackfmt "github.com/goliatone/go-slackfmt"
	convertcmd "github.com/goliatone/go-slackfmt/internal/commands/convert"
	"github.com/goliatone/go-slackfmt/pkg/interfaces"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("slackfmt: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("slackfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	from := fs.String("from", "mrkdwn", "Input format: "+formatList())
	to := fs.String("to", "layout", "Output format: "+formatList())
	in := fs.String("in", "-", "Input file, - reads stdin")
	strict := fs.Bool("strict", false, "Validate JSON input against the payload schemas")
	indent := fs.Bool("indent", false, "Indent JSON output")
	blockIDs := fs.Bool("block-ids", false, "Stamp layout blocks with deterministic block ids")
	logProvider := fs.String("log", "", "Logger provider: console or gologger (empty disables logging)")
	logLevel := fs.String("log-level", "info", "Log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := readInput(*in, stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	cfg := slackfmt.DefaultConfig()
	cfg.Validation.Strict = *strict
	cfg.Output.BlockIDs = *blockIDs
	cfg.Logging.Provider = *logProvider
	cfg.Logging.Level = *logLevel

	module, err := slackfmt.New(cfg, slackfmt.WithLogWriter(stderr))
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	var out bytes.Buffer
	cmd := convertcmd.ConvertCommand{From: *from, To: *to, Input: input}
	if err := module.ConvertHandler(&out).Execute(context.Background(), cmd); err != nil {
		return err
	}

	result := out.Bytes()
	if _, target := cmd.Formats(); *indent && isJSON(target) {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, result, "", "  "); err != nil {
			return fmt.Errorf("indent output: %w", err)
		}
		result = pretty.Bytes()
	}

	if _, err := stdout.Write(result); err != nil {
		return err
	}
	_, err = io.WriteString(stdout, "\n")
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func isJSON(format interfaces.Format) bool {
	return format == interfaces.FormatDocument || format == interfaces.FormatLayout
}

func formatList() string {
	names := make([]string, 0, len(interfaces.Formats()))
	for _, format := range interfaces.Formats() {
		names = append(names, format.String())
	}
	return strings.Join(names, ", ")
}
