package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/jackc"
	"github.com/deepnoodle-ai/jackc/trace"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file.jack | dir]...",
	Short: "Compile Jack classes to .vm files",
	Long: `Compile each Jack class into a .vm file named after the source file.

Directories are expanded to the .jack files they contain. Output is written
next to each source file unless --out-dir is given. With no arguments the
current directory is compiled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}
		cfg := compileConfig{
			outDir: viper.GetString("out-dir"),
			trace:  viper.GetBool("trace"),
			jobs:   viper.GetInt("jobs"),
		}
		return runCompile(cmd.Context(), args, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	compileCmd.Flags().StringP("out-dir", "d", "", "Directory for generated files")
	compileCmd.Flags().Bool("trace", false, "Also write the parse tree of each class as .xml")
	compileCmd.Flags().IntP("jobs", "j", 0, "Number of classes compiled in parallel (default GOMAXPROCS)")
	viper.BindPFlag("out-dir", compileCmd.Flags().Lookup("out-dir"))
	viper.BindPFlag("trace", compileCmd.Flags().Lookup("trace"))
	viper.BindPFlag("jobs", compileCmd.Flags().Lookup("jobs"))
}

type compileConfig struct {
	outDir string
	trace  bool
	jobs   int
}

func runCompile(ctx context.Context, paths []string, cfg compileConfig, stdout, stderr io.Writer) error {
	files, err := collectFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .jack files found in %s", strings.Join(paths, ", "))
	}

	units := make([]jackc.Unit, len(files))
	traces := make([]*bytes.Buffer, len(files))
	tracers := make([]*trace.XMLTracer, len(files))
	for i, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		units[i] = jackc.Unit{Name: file, Source: string(source)}
		if cfg.trace {
			traces[i] = &bytes.Buffer{}
			tracers[i] = trace.NewXMLTracer(traces[i])
			units[i].Tracer = tracers[i]
		}
	}

	opts := []jackc.Option{jackc.WithLogger(newLogger())}
	if cfg.jobs > 0 {
		opts = append(opts, jackc.WithConcurrency(cfg.jobs))
	}
	codes, compileErr := jackc.CompileUnits(ctx, units, opts...)

	for i, code := range codes {
		if code == nil {
			continue
		}
		vmPath := outputPath(files[i], cfg.outDir, ".vm")
		if err := writeFile(vmPath, code.String()); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s -> %s\n", files[i], vmPath)
		if cfg.trace {
			if err := tracers[i].Flush(); err != nil {
				return err
			}
			if err := writeFile(outputPath(files[i], cfg.outDir, ".xml"), traces[i].String()); err != nil {
				return err
			}
		}
	}

	if compileErr != nil {
		if merr, ok := compileErr.(*multierror.Error); ok {
			printErrors(stderr, merr.Errors)
		} else {
			printErrors(stderr, []error{compileErr})
		}
		return errFailed
	}
	return nil
}

// collectFiles expands the given paths into a sorted list of .jack files.
// Directories contribute the .jack files directly inside them.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	add := func(file string) {
		if !seen[file] {
			seen[file] = true
			files = append(files, file)
		}
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if filepath.Ext(path) != ".jack" {
				return nil, fmt.Errorf("%s: not a .jack file", path)
			}
			add(path)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(path, "*.jack"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return files, nil
}

// outputPath returns the path of the file generated from source with the
// given extension, placed in outDir when it is set.
func outputPath(source, outDir, ext string) string {
	base := strings.TrimSuffix(source, filepath.Ext(source)) + ext
	if outDir == "" {
		return base
	}
	return filepath.Join(outDir, filepath.Base(base))
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
