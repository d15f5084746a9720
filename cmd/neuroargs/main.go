// Package main provides the neuroargs CLI: inspect the registered tool
// specifications, render command lines from field values, and optionally
// execute them.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"neuroargs/camino"
	"neuroargs/freesurfer"
	"neuroargs/internal/config"
	"neuroargs/internal/logging"
	"neuroargs/internal/toolexec"
	"neuroargs/tool"
)

// builtins registers the shipped wrappers by tool name.
var builtins = map[string]func() *tool.Definition{
	"conmat":              camino.NewConmat,
	"smooth_tessellation": freesurfer.NewSmoothTessellation,
}

type globals struct {
	cfg config.Config
	log zerolog.Logger
}

var cli struct {
	Config string `help:"Path to a TOML run configuration." type:"path"`

	List     listCmd     `cmd:"" help:"List registered tools."`
	Describe describeCmd `cmd:"" help:"Show a tool's field schema."`
	Render   renderCmd   `cmd:"" help:"Render a command line from field=value pairs."`
}

type listCmd struct{}

func (c *listCmd) Run(g *globals) error {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Println(name)
	}

	return nil
}

type describeCmd struct {
	Tool  string `arg:"" help:"Registered tool name."`
	Debug bool   `help:"Dump the raw specification structures."`
}

func (c *describeCmd) Run(g *globals) error {
	def, err := lookup(c.Tool)
	if err != nil {
		return err
	}

	if c.Debug {
		spew.Dump(def.Inputs.Describe(), def.Outputs.Describe())
		return nil
	}

	fmt.Printf("%s\nbase: %s\n\ninputs:\n", def.Name, strings.Join(def.Base, " "))

	for _, fi := range def.Inputs.Describe() {
		line := fmt.Sprintf("  %-36s %-10s", fi.Name, fi.Kind)
		if fi.ArgTemplate != "" {
			line += fmt.Sprintf(" %q", fi.ArgTemplate)
		}

		if fi.Required {
			line += " required"
		}

		if len(fi.Xor) > 0 {
			line += " xor=" + strings.Join(fi.Xor, ",")
		}

		if len(fi.Requires) > 0 {
			line += " requires=" + strings.Join(fi.Requires, ",")
		}

		fmt.Println(line)
	}

	fmt.Println("\noutputs:")

	for _, fi := range def.Outputs.Describe() {
		fmt.Printf("  %-36s %s\n", fi.Name, fi.Kind)
	}

	return nil
}

type renderCmd struct {
	Tool    string   `arg:"" help:"Registered tool name."`
	Values  []string `arg:"" optional:"" name:"field=value" help:"Field assignments."`
	Execute bool     `help:"Run the rendered command through the local binary."`
}

func (c *renderCmd) Run(g *globals) error {
	def, err := lookup(c.Tool)
	if err != nil {
		return err
	}

	def.Base[0] = g.cfg.Binary(def.Name, def.Base[0])

	inst := def.NewInstance()

	for _, kv := range c.Values {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("expected field=value, got %q", kv)
		}

		if err := inst.Set(name, value); err != nil {
			return err
		}
	}

	argv, err := def.Command(inst)
	if err != nil {
		return err
	}

	fmt.Println(strings.Join(argv, " "))

	if !c.Execute {
		outputs, err := def.OutputFiles(inst)
		if err != nil {
			return err
		}

		for _, name := range def.Outputs.Names() {
			if path, ok := outputs[name]; ok {
				fmt.Printf("%s: %s\n", name, path)
			}
		}

		return nil
	}

	ctx := context.Background()

	if secs := g.cfg.Run.TimeoutSeconds; secs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(secs)*time.Second)

		defer cancel()
	}

	runner := toolexec.ExecRunner{Log: g.log}

	res, err := def.Run(ctx, runner, g.cfg.Run.WorkDir, inst)
	if err != nil {
		if res != nil {
			os.Stderr.Write(res.Stderr)
		}

		return err
	}

	os.Stdout.Write(res.Stdout)

	for _, name := range def.Outputs.Names() {
		if path, ok := res.OutputFiles[name]; ok {
			fmt.Printf("%s: %s\n", name, path)
		}
	}

	return nil
}

func lookup(name string) (*tool.Definition, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q (see: neuroargs list)", name)
	}

	return build(), nil
}

func main() {
	ktx := kong.Parse(&cli,
		kong.Name("neuroargs"),
		kong.Description("Declarative command-line wrappers for neuroimaging tools."))

	g := &globals{
		cfg: config.Default(),
		log: logging.Init("neuroargs"),
	}

	if cli.Config != "" {
		cfg, err := config.Load(cli.Config)
		if err != nil {
			ktx.FatalIfErrorf(err)
		}

		g.cfg = cfg
	}

	ktx.FatalIfErrorf(ktx.Run(g))
}
