// Package compile implements the compile subcommand: it takes a markup
// template, executes it and writes the resulting layout tree dump.
package compile

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"dtc/diag"
	"dtc/exec"
	"dtc/markup"
	"dtc/state"
)

// Run executes a single template file through the execution stage.
func Run(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return fmt.Errorf("no input file specified")
	}
	if cmd.NArg() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	src := cmd.Args().Get(0)

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read template %s: %w", src, err)
	}

	doc, err := markup.Parse(data)
	if err != nil {
		return fmt.Errorf("unable to parse template %s: %w", src, err)
	}

	initial, err := env.Cfg.Document.NewState()
	if err != nil {
		return fmt.Errorf("bad document configuration: %w", err)
	}

	fontEnv := exec.NewBaseEnv()
	fontEnv.DefaultSize = initial.Font.Size
	fontEnv.Fallback = initial.Font.Families

	ectx := exec.NewContext(fontEnv, initial, env.Log)
	doc.Exec(ectx)
	pass := ectx.Finish()

	for _, d := range pass.Diags.List() {
		switch d.Level {
		case diag.LevelError:
			env.Log.Error("Problem executing template", zap.String("span", d.Span.String()), zap.String("details", d.Message))
		default:
			env.Log.Warn("Problem executing template", zap.String("span", d.Span.String()), zap.String("details", d.Message))
		}
	}

	dump := pass.Output.DebugTree()
	env.Rpt.StoreData("tree.txt", []byte(dump))

	env.Log.Info("Template executed",
		zap.String("source", src),
		zap.Int("pages", len(pass.Output.Runs)),
		zap.Int("diagnostics", pass.Diags.Len()))

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		fmt.Print(dump)
		return nil
	}
	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination %s exists, use --overwrite to replace it", dst)
	}
	if err := os.WriteFile(dst, []byte(dump), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", dst, err)
	}
	return nil
}
