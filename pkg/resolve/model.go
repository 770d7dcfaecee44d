// Package resolve converts raw submitted option trees into strongly-typed,
// validated values against a built command schema. This file contains the
// model resolver: a single top-down pass over the whole option tree with
// recursive subcommand dispatch.
package resolve

import "slashkit/pkg/slashtypes"

// ResolveCommand resolves a whole raw option tree against a command schema,
// producing the typed aggregate or exactly one ParseError. Resolution is
// fail-fast: the first field failure aborts the level and no partial
// aggregate is ever returned. Raw siblings naming no declared field are
// ignored, so newly added platform fields do not break older schemas.
//
// The function is pure over immutable inputs; one schema can serve
// arbitrarily many concurrent calls without synchronization.
func ResolveCommand(schema *slashtypes.CommandSchema, raws []slashtypes.RawOption, bag *slashtypes.ResolvedBag) (*slashtypes.CommandModel, error) {
	model, perr := resolveLevel(schema.Name, schema.Options, raws, bag)
	if perr != nil {
		return nil, perr
	}
	return model, nil
}

// ResolveBranch resolves a raw option tree against a subcommand or group
// subtree instead of a whole command. The raw siblings are the options
// nested beneath the already-selected branch.
func ResolveBranch(branch *slashtypes.OptionSchema, raws []slashtypes.RawOption, bag *slashtypes.ResolvedBag) (*slashtypes.CommandModel, error) {
	model, perr := resolveLevel(branch.Name, branch.SubOptions, raws, bag)
	if perr != nil {
		return nil, perr
	}
	return model, nil
}

// ParseSingle resolves one declared field against a sibling list without
// building a whole aggregate. Useful when only one value is needed.
func ParseSingle(field *slashtypes.OptionSchema, raws []slashtypes.RawOption, bag *slashtypes.ResolvedBag) (slashtypes.OptionOutcome, error) {
	outcome, perr := ResolveOption(field, findRaw(raws, field.Name), bag)
	if perr != nil {
		return slashtypes.OptionOutcome{}, perr
	}
	return outcome, nil
}

// FocusedName returns the name of the option currently focused by the user,
// searching through subcommand nesting, without resolving any values. Used
// to route autocomplete requests before deciding what to complete.
func FocusedName(raws []slashtypes.RawOption) (string, bool) {
	for i := range raws {
		if raws[i].Focused {
			return raws[i].Name, true
		}
		if raws[i].Value.Kind == slashtypes.RawGroup {
			if name, ok := FocusedName(raws[i].Value.Group); ok {
				return name, true
			}
		}
	}
	return "", false
}

// resolveLevel resolves one sibling level. A level is either a dispatch
// level (its schema declares subcommand branches) or a field level (plain
// values); the builder guarantees the two never mix.
func resolveLevel(level string, options []slashtypes.OptionSchema, raws []slashtypes.RawOption, bag *slashtypes.ResolvedBag) (*slashtypes.CommandModel, *slashtypes.ParseError) {
	if slashtypes.DispatchLevel(options) {
		return resolveDispatch(level, options, raws, bag)
	}
	return resolveFields(options, raws, bag)
}

func resolveDispatch(level string, options []slashtypes.OptionSchema, raws []slashtypes.RawOption, bag *slashtypes.ResolvedBag) (*slashtypes.CommandModel, *slashtypes.ParseError) {
	if len(raws) == 0 {
		return nil, &slashtypes.ParseError{
			Kind:     slashtypes.ErrEmptyOption,
			Field:    level,
			Expected: "a subcommand selection",
		}
	}

	// The platform submits exactly one sibling at a dispatch level.
	selected := &raws[0]

	branch := findBranch(options, selected.Name)
	if branch == nil {
		return nil, &slashtypes.ParseError{
			Kind:  slashtypes.ErrUnknownSubcommand,
			Field: selected.Name,
		}
	}

	if selected.Value.Kind != slashtypes.RawGroup {
		return nil, &slashtypes.ParseError{
			Kind:     slashtypes.ErrTypeMismatch,
			Field:    selected.Name,
			Expected: branch.Kind.String(),
			Actual:   selected.Value.Kind.String(),
		}
	}

	nested, perr := resolveLevel(branch.Name, branch.SubOptions, selected.Value.Group, bag)
	if perr != nil {
		return nil, perr
	}

	return &slashtypes.CommandModel{
		Branch: &slashtypes.BranchSelection{
			Name:  branch.Name,
			Kind:  branch.Kind,
			Model: nested,
		},
	}, nil
}

func resolveFields(options []slashtypes.OptionSchema, raws []slashtypes.RawOption, bag *slashtypes.ResolvedBag) (*slashtypes.CommandModel, *slashtypes.ParseError) {
	fields := make([]slashtypes.FieldResult, 0, len(options))
	for i := range options {
		opt := &options[i]
		outcome, perr := ResolveOption(opt, findRaw(raws, opt.Name), bag)
		if perr != nil {
			return nil, perr
		}
		fields = append(fields, slashtypes.FieldResult{Name: opt.Name, Outcome: outcome})
	}
	return &slashtypes.CommandModel{Fields: fields}, nil
}

func findBranch(options []slashtypes.OptionSchema, name string) *slashtypes.OptionSchema {
	for i := range options {
		if options[i].Name == name {
			return &options[i]
		}
	}
	return nil
}

// findRaw locates a sibling by name. Sibling names are unique at one level
// per the platform contract, so the first match is the only match.
func findRaw(raws []slashtypes.RawOption, name string) *slashtypes.RawOption {
	for i := range raws {
		if raws[i].Name == name {
			return &raws[i]
		}
	}
	return nil
}
