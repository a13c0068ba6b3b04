// Command jsobfuscate is the CLI wrapping the obfuscator package, built
// with cobra the way mouse-blink-gooze's cmd/root.go builds its root
// command — package-level flag vars bound in newRootCmd, a single RunE
// doing the real work.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"jsobfuscate/ast"
	"jsobfuscate/logger"
	"jsobfuscate/obfuscator"

	"go.uber.org/zap"
)

func printBanner() {
	fmt.Println()
	fmt.Println("\033[1;35m ██████╗██████╗  ██████╗ ███████╗███████╗\033[0m")
	fmt.Println("\033[1;35m██╔════╝██╔══██╗██╔═══██╗██╔════╝██╔════╝\033[0m")
	fmt.Println("\033[1;35m██║     ██████╔╝██║   ██║███████╗███████╗\033[0m")
	fmt.Println("\033[1;35m██║     ██╔══██╗██║   ██║╚════██║╚════██║\033[0m")
	fmt.Println("\033[1;35m╚██████╗██║  ██║╚██████╔╝███████║███████║\033[0m")
	fmt.Println("\033[1;35m ╚═════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚══════╝\033[0m")
	fmt.Println()
	fmt.Println("     \033[1;33m━━━ JS Obfuscator ━━━\033[0m")
	fmt.Println()
	fmt.Printf("       \033[90mVersion %s\033[0m\n", obfuscator.Version)
	fmt.Println()
}

var (
	outFlag      string
	compactFlag  bool
	commentsFlag bool
	mapFlag      bool
	moduleFlag   bool
	verboseFlag  bool
	concurrency  int
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsobfuscate [files...]",
		Short: "Obfuscate JavaScript source files",
		Long: `jsobfuscate rewrites one or more JavaScript source files through a staged
obfuscation pipeline: renaming, string encoding, dead-code injection,
control-flow flattening, and literal canonicalization.

Given more than one file, each is obfuscated independently and concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runObfuscate,
	}
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (single input only); default stdout")
	cmd.Flags().BoolVar(&compactFlag, "compact", false, "omit newlines and indentation (spaces inside statements are kept)")
	cmd.Flags().BoolVar(&commentsFlag, "comments", false, "preserve comments in output")
	cmd.Flags().BoolVar(&mapFlag, "source-map", false, "write a source map to <out>.map (only with --out)")
	cmd.Flags().BoolVar(&moduleFlag, "module", false, "mark input as an ES module (parsed the same way as a script)")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every pipeline stage transition")
	cmd.Flags().IntVarP(&concurrency, "jobs", "j", 4, "maximum files obfuscated concurrently")
	return cmd
}

func runObfuscate(cmd *cobra.Command, args []string) error {
	if outFlag != "" && len(args) > 1 {
		return fmt.Errorf("jsobfuscate: --out can only be used with a single input file")
	}
	printBanner()

	var zlog *zap.Logger
	if verboseFlag {
		zlog, _ = zap.NewDevelopment()
	} else {
		zlog = zap.NewNop()
	}
	log := logger.New(zlog)

	sourceType := ast.SourceScript
	if moduleFlag {
		sourceType = ast.SourceModule
	}

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	results := make([]*obfuscator.Result, len(args))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("jsobfuscate: reading %s: %w", path, err)
			}
			res, err := obfuscator.Obfuscate(string(source), &obfuscator.Options{
				Filename:   path,
				SourceType: sourceType,
				Logger:     log,
				Compact:    compactFlag,
				Comments:   commentsFlag,
				SourceMap:  mapFlag,
			})
			if err != nil {
				return fmt.Errorf("jsobfuscate: obfuscating %s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range args {
		if err := writeResult(path, results[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(inputPath string, res *obfuscator.Result) error {
	if outFlag != "" {
		if err := os.WriteFile(outFlag, []byte(res.Code), 0o644); err != nil {
			return fmt.Errorf("jsobfuscate: writing %s: %w", outFlag, err)
		}
		if res.Map != "" {
			if err := os.WriteFile(outFlag+".map", []byte(res.Map), 0o644); err != nil {
				return fmt.Errorf("jsobfuscate: writing %s.map: %w", outFlag, err)
			}
		}
		return nil
	}
	fmt.Printf("// --- %s ---\n%s\n", inputPath, res.Code)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
