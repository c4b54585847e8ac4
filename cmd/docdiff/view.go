package main

import (
	"fmt"
	"io"

	"github.com/signadot/docdiff/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return usageErr(err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	doc, err := getDocFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	if err := encode.Render(doc, w, cfg.MainConfig.encOpts(w)...); err != nil {
		return fmt.Errorf("error rendering %s: %w", file, err)
	}
	return nil
}
