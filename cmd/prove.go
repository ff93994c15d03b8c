package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/boolproof/internal/batchset"
	"github.com/gnoswap-labs/boolproof/internal/config"
	"github.com/gnoswap-labs/boolproof/internal/parser"
	"github.com/gnoswap-labs/boolproof/internal/report"
	"github.com/gnoswap-labs/boolproof/internal/search"
	"github.com/gnoswap-labs/boolproof/internal/semantics"
)

var (
	proveMaxDepth           int
	proveMaxTransformations int
	proveJSON               bool
	proveBatchFile          string
	proveBatchDir           string
	proveVerify             bool
)

var proveCmd = &cobra.Command{
	Use:   "prove [start] [target]",
	Short: "Search for a rewrite proof that start is equivalent to target",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("failed to load configuration", zap.Error(err))
		}

		if proveBatchDir != "" {
			return runBatchDir(cfg, proveBatchDir)
		}
		if proveBatchFile != "" {
			return runBatch(cfg, proveBatchFile)
		}

		if len(args) != 2 {
			return fmt.Errorf("prove requires exactly two arguments: start and target expressions")
		}
		return proveOne(cfg, args[0], args[1])
	},
}

func init() {
	proveCmd.Flags().IntVar(&proveMaxDepth, "max-depth", 0, "override configured max search depth")
	proveCmd.Flags().IntVar(&proveMaxTransformations, "max-transformations", 0, "override configured max transformation count")
	proveCmd.Flags().BoolVar(&proveJSON, "json", false, "output the proof as JSON")
	proveCmd.Flags().StringVar(&proveBatchFile, "batch", "", "path to a file of \"start | target\" lines to prove in sequence")
	proveCmd.Flags().StringVar(&proveBatchDir, "batch-dir", "", "directory to scan recursively for .bp batch files")
	proveCmd.Flags().BoolVar(&proveVerify, "verify", false, "audit the discovered proof's endpoints with the semantic truth-table oracle")
}

func newSearch(cfg config.Config) *search.Search {
	s := search.New()
	if proveMaxDepth > 0 {
		s.SetMaxDepth(proveMaxDepth)
	} else if cfg.MaxDepth > 0 {
		s.SetMaxDepth(cfg.MaxDepth)
	}
	if proveMaxTransformations > 0 {
		s.SetMaxTransformations(proveMaxTransformations)
	} else if cfg.MaxTransformations > 0 {
		s.SetMaxTransformations(cfg.MaxTransformations)
	}
	for law := range cfg.DisabledLawSet() {
		s.DisableLaw(law)
	}
	return s
}

func proveOne(cfg config.Config, startText, targetText string) error {
	start, err := parser.Parse(startText)
	if err != nil {
		return fmt.Errorf("parsing start expression: %w", err)
	}
	target, err := parser.Parse(targetText)
	if err != nil {
		return fmt.Errorf("parsing target expression: %w", err)
	}

	s := newSearch(cfg)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("searching"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetVisibility(!proveJSON),
	)
	s.SetObserver(observerFunc(func(depth, frontier int) {
		_ = bar.Add(1)
	}))

	p := s.FindProof(start, target)
	_ = bar.Finish()

	if proveVerify && p.FoundTarget {
		if semantics.Equivalent(start, target) {
			logger.Info("verify: truth-table oracle agrees start and target are equivalent")
		} else {
			logger.Warn("verify: truth-table oracle disagrees with the discovered proof; this indicates a rule catalogue bug")
		}
	}

	if proveJSON {
		fmt.Println(report.FormatProofJSON(start, p))
	} else {
		report.WriteProof(os.Stdout, start, p)
	}
	if !p.FoundTarget {
		return errNotProved
	}
	return nil
}

var errNotProved = fmt.Errorf("no proof found within the configured search bounds")

func runBatch(cfg config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	proved, failed := 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			logger.Warn("skipping malformed batch line", zap.Int("line", lineNo))
			continue
		}
		if err := proveOne(cfg, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])); err != nil {
			logger.Error("batch entry failed", zap.Int("line", lineNo), zap.Error(err))
			failed++
			continue
		}
		proved++
	}
	logger.Info("batch complete", zap.String("path", path), zap.Int("proved", proved), zap.Int("not_proved", failed))
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return errNotProved
	}
	return nil
}

func runBatchDir(cfg config.Config, dir string) error {
	discoverer := batchset.New(dir, ".bp")
	files, err := discoverer.Discover()
	if err != nil {
		return fmt.Errorf("scanning batch directory: %w", err)
	}
	anyFailed := false
	for _, f := range files {
		logger.Info("running batch file", zap.String("path", f.Path))
		if err := runBatch(cfg, f.Path); err != nil {
			logger.Error("batch file failed", zap.String("path", f.Path), zap.Error(err))
			anyFailed = true
		}
	}
	if anyFailed {
		return errNotProved
	}
	return nil
}

type observerFunc func(depth, frontier int)

func (f observerFunc) OnExpand(depth, frontier int) { f(depth, frontier) }
