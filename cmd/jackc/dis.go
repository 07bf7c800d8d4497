package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/jackc"
	"github.com/deepnoodle-ai/jackc/bytecode"
	"github.com/deepnoodle-ai/jackc/dis"
)

var disCmd = &cobra.Command{
	Use:   "dis <file.jack | file.vm>",
	Short: "Print an annotated listing of compiled code",
	Long: `Print an annotated listing of the VM code of a class. A .jack file is
compiled first; a .vm file is read as is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := loadCode(args[0])
		if err != nil {
			printErrors(cmd.ErrOrStderr(), []error{err})
			return errFailed
		}
		instructions, err := dis.Disassemble(code)
		if err != nil {
			return err
		}
		return dis.Print(instructions, cmd.OutOrStdout())
	},
}

func loadCode(path string) (*bytecode.Code, error) {
	if filepath.Ext(path) == ".vm" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		name := strings.TrimSuffix(filepath.Base(path), ".vm")
		return bytecode.ParseCode(name, f)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jackc.Compile(string(source), jackc.WithFilename(path), jackc.WithLogger(newLogger()))
}
