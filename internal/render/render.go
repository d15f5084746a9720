// Package render turns a validated instance into the ordered argv token
// sequence an execution collaborator receives. Rendering is deterministic:
// identical field values always produce identical tokens, and rendering
// cannot fail once validation passes.
package render

import (
	"strings"

	"neuroargs/internal/spec"
)

// GenFunc computes a deferred default for a generated field that the
// caller left unset. A rule may decline by returning the empty string, in
// which case the field renders nothing and output resolution derives any
// default it needs on its own.
type GenFunc func(inst *spec.Instance) string

// Input carries the per-tool rendering context.
type Input struct {
	// Tool names the wrapper, for findings coordinates.
	Tool string

	// Base is the fixed leading argv: the external binary and any fixed
	// subcommand tokens.
	Base []string

	// Spec is the input specification the instance is populated against.
	Spec *spec.Spec

	// Defaults maps generated field names to their deferred rules.
	Defaults map[string]GenFunc

	// Stat overrides the path-existence probe; nil uses the OS.
	Stat spec.Statter
}

// Command validates inst exhaustively and renders the argv token list.
// Any validation finding aborts before a single token is produced; the
// returned error lists every violation. On success the instance is sealed
// against further mutation.
func Command(in Input, inst *spec.Instance) ([]string, error) {
	findings := spec.Validate(in.Tool, in.Spec, inst, in.Stat)
	if findings.HasErrors() {
		return nil, findings.Error()
	}

	groups := collectGroups(in, inst)
	argv := append([]string(nil), in.Base...)

	for _, g := range layout(groups) {
		argv = append(argv, g.tokens...)
	}

	inst.Seal()

	return argv, nil
}

// group is one field's rendered tokens plus its layout coordinates.
type group struct {
	tokens   []string
	position *int
	order    int // declaration order, the tie-break everywhere
}

func collectGroups(in Input, inst *spec.Instance) []group {
	var out []group

	for i, f := range in.Spec.Fields() {
		tokens := renderField(in, inst, f)
		if len(tokens) == 0 {
			continue
		}

		out = append(out, group{tokens: tokens, position: f.Position, order: i})
	}

	return out
}

func renderField(in Input, inst *spec.Instance, f spec.Field) []string {
	if f.ArgTemplate == "" {
		return nil
	}

	if f.Kind == spec.KindFlag {
		if on, ok := inst.Flag(f.Name); ok && on {
			return strings.Fields(f.ArgTemplate)
		}

		return nil
	}

	value, ok := inst.String(f.Name)
	if !ok && f.Generated {
		if rule := in.Defaults[f.Name]; rule != nil {
			value = rule(inst)
			ok = value != ""
		}
	}

	if !ok {
		return nil
	}

	return expandTemplate(f.ArgTemplate, value)
}

// expandTemplate splits a printf-style template into atomic tokens and
// substitutes the value into the verb-bearing token. The template is
// tokenized before substitution so a value containing whitespace stays a
// single token. Templates without a verb gain the value as a trailing
// token.
func expandTemplate(template, value string) []string {
	tokens := strings.Fields(template)

	for i, tok := range tokens {
		switch {
		case strings.Contains(tok, "%s"):
			tokens[i] = strings.Replace(tok, "%s", value, 1)
			return tokens
		case strings.Contains(tok, "%d"):
			tokens[i] = strings.Replace(tok, "%d", value, 1)
			return tokens
		}
	}

	return append(tokens, value)
}
