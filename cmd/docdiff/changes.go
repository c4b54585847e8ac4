package main

import (
	"github.com/signadot/docdiff/encode"
	"github.com/signadot/docdiff/review"

	"github.com/scott-cotton/cli"
)

type changeList struct {
	Stats   review.Stats    `json:"stats"`
	Changes []review.Change `json:"changes,omitempty"`
}

func changes(cfg *ChangesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Changes.Parse(cc, args)
	if err != nil {
		return usageErr(err)
	}
	merged, err := oneDocArg(cc, args, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res := &changeList{Stats: review.StatsOf(merged)}
	if !cfg.Stats {
		res.Changes = review.Changes(merged)
	}
	return encode.EncodeValue(res, cc.Out, cfg.MainConfig.encOpts(cc.Out)...)
}
