package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/docdiff/encode"
	"github.com/signadot/docdiff/format"
	"github.com/signadot/docdiff/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indentation of json output and rendered blocks'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DiffConfig struct {
	*MainConfig
	Reverse bool   `cli:"name=r desc='reverse the diff'"`
	Render  bool   `cli:"name=render desc='render the result as text instead of encoding it'"`
	Patch   string `cli:"name=patch desc='json patch file producing the new version'"`

	Diff *cli.Command
}

type ReviewConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only resolve blocks matching this expression'"`

	Accept bool
	Review *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ChangesConfig struct {
	*MainConfig
	Stats bool `cli:"name=s aliases=stats desc='only show statistics'"`

	Changes *cli.Command
}
