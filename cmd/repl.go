package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/boolproof/internal/config"
	"github.com/gnoswap-labs/boolproof/internal/expr"
	"github.com/gnoswap-labs/boolproof/internal/parser"
	"github.com/gnoswap-labs/boolproof/internal/report"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive prove/generate/parse session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("failed to load configuration", zap.Error(err))
		}
		return runRepl(cfg, os.Stdin, cmd.OutOrStdout())
	},
}

var replPrompt = color.New(color.FgHiCyan, color.Bold)

func runRepl(cfg config.Config, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "boolproof repl - commands: prove <a> | <b>, generate <e>, parse <e>, help, quit")

	for {
		fmt.Fprint(out, replPrompt.Sprint("> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmdName, rest, _ := strings.Cut(line, " ")
		switch cmdName {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, "commands: prove <a> | <b>, generate <e>, parse <e>, help, quit")
		case "parse":
			replParse(out, rest)
		case "generate":
			replGenerate(out, cfg, rest)
		case "prove":
			replProve(out, cfg, rest)
		default:
			fmt.Fprintf(out, "unknown command %q; type help\n", cmdName)
		}
	}
	return scanner.Err()
}

func replParse(out io.Writer, text string) {
	e, err := parser.Parse(text)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintln(out, expr.Print(e))
}

func replGenerate(out io.Writer, cfg config.Config, text string) {
	e, err := parser.Parse(text)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	s := newSearch(cfg)
	report.WriteForms(out, s.GenerateEquivalentForms(e, 20))
}

func replProve(out io.Writer, cfg config.Config, text string) {
	startText, targetText, ok := strings.Cut(text, "|")
	if !ok {
		fmt.Fprintln(out, `expected "prove <start> | <target>"`)
		return
	}
	start, err := parser.Parse(strings.TrimSpace(startText))
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	target, err := parser.Parse(strings.TrimSpace(targetText))
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	s := newSearch(cfg)
	p := s.FindProof(start, target)
	report.WriteProof(out, start, p)
}
