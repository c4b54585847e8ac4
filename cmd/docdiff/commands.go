package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "docdiff").
		WithSynopsis("docdiff [opts] command [opts]").
		WithDescription("docdiff compares versions of rich text documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docdiffMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			AcceptCommand(cfg),
			RejectCommand(cfg),
			ViewCommand(cfg),
			ChangesCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-render] old new | diff -patch <json-patch> doc").
		WithDescription(diffDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

const diffDescription = `diff merges two versions of a document into one annotated document.

Content only present in the old version carries a diff mark
{"type": "diff", "attrs": {"type": "Deleted"}}, content only present in the
new version one with type "Inserted".

With -patch, the new version is the result of applying an RFC 6902 JSON
patch to the single document argument.

diff exits with status 1 if the documents differ.`

func AcceptCommand(mainCfg *MainConfig) *cli.Command {
	return reviewCommand(mainCfg, true)
}

func RejectCommand(mainCfg *MainConfig) *cli.Command {
	return reviewCommand(mainCfg, false)
}

func reviewCommand(mainCfg *MainConfig, accept bool) *cli.Command {
	cfg := &ReviewConfig{MainConfig: mainCfg, Accept: accept}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	name, alias, desc := "accept", "a", "accept the changes in an annotated document"
	if !accept {
		name, alias, desc = "reject", "rej", "reject the changes in an annotated document"
	}
	return cli.NewCommandAt(&cfg.Review, name).
		WithAliases(alias).
		WithSynopsis(name + " [-where <expr>] [file]").
		WithDescription(desc + reviewDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reviewDoc(cfg, cc, args)
		})
}

const reviewDescription = `.

With -where, only the top-level blocks for which the expression is true
are resolved; the others keep their annotations.  The expression sees

  index     position of the block
  node      block node type
  attrs     block attributes
  text      merged text of the block
  inserted  number of inserted characters
  deleted   number of deleted characters
  changed   whether the block has any change

For example: -where 'node == "heading" && deleted == 0'`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("render annotated documents as text with inline changes").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ChangesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChangesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Changes, "changes").
		WithAliases("c", "ch").
		WithSynopsis("changes [-s] [file]").
		WithDescription("list the changes of an annotated document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return changes(cfg, cc, args)
		})
}
