// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/esfront/esfront/resolve"
)

// A config holds the settings of one run. It may be read from a YAML
// file; flags given on the command line take precedence.
type config struct {
	Module  bool `yaml:"module"`  // parse files as modules
	Strict  bool `yaml:"strict"`  // resolve scripts as strict code
	Legacy  bool `yaml:"legacy"`  // accept legacy generators and comprehensions
	AnnexB  bool `yaml:"annexb"`  // apply web-compatibility function hoisting
	AST     bool `yaml:"ast"`     // print syntax trees
	Scopes  bool `yaml:"scopes"`  // print scope trees
	JSON    bool `yaml:"json"`    // print scope trees as JSON
	Refs    bool `yaml:"refs"`    // print identifier resolutions
	Split   int  `yaml:"split"`   // split bodies larger than this size; 0 disables
	Workers int  `yaml:"workers"` // concurrent units; 0 means GOMAXPROCS
}

func defaultConfig() config {
	return config{AnnexB: resolve.DefaultOptions().AnnexB, Scopes: true}
}

func (c *config) options() resolve.Options {
	return resolve.Options{Legacy: c.Legacy, AnnexB: c.AnnexB, Strict: c.Strict}
}

// register binds the fields of c to flags of fs.
func (c *config) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.Module, "module", c.Module, "parse files as modules")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "resolve scripts as strict mode code")
	fs.BoolVar(&c.Legacy, "legacy", c.Legacy, "accept legacy generators and comprehensions")
	fs.BoolVar(&c.AnnexB, "annexb", c.AnnexB, "apply web-compatible block function hoisting")
	fs.BoolVar(&c.AST, "ast", c.AST, "print the syntax tree of each file")
	fs.BoolVar(&c.Scopes, "scopes", c.Scopes, "print the scope tree of each file")
	fs.BoolVar(&c.JSON, "json", c.JSON, "print scope trees as JSON")
	fs.BoolVar(&c.Refs, "refs", c.Refs, "print the resolution of each identifier reference")
	fs.IntVar(&c.Split, "split", c.Split, "split function bodies larger than `size` into helpers")
	fs.IntVar(&c.Workers, "workers", c.Workers, "process at most `n` files at once")
}

// readConfig decodes the YAML file at path into c. Unknown keys are
// an error.
func readConfig(path string, c *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	if c.Split < 0 || c.Workers < 0 {
		return fmt.Errorf("%s: split and workers must not be negative", path)
	}
	return nil
}

// parseArgs parses args into a config. Settings from a -config file
// are applied first, then the flags set explicitly in args.
func parseArgs(fs *flag.FlagSet, args []string) (config, error) {
	cfg := defaultConfig()
	file := fs.String("config", "", "read settings from the YAML `file`")
	cfg.register(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *file == "" {
		return cfg, nil
	}

	// Reparse so that explicit flags override the file.
	final := defaultConfig()
	if err := readConfig(*file, &final); err != nil {
		return cfg, err
	}
	over := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	final.register(over)
	var explicit []string
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			explicit = append(explicit, "-"+f.Name+"="+f.Value.String())
		}
	})
	if err := over.Parse(explicit); err != nil {
		return cfg, err
	}
	return final, nil
}
