// Package schema builds validated, immutable command schemas from plain
// descriptor values. This file contains the builder itself: a depth-first
// validation pass that accumulates every structural violation and constructs
// the schema all-or-nothing.
package schema

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"slashkit/pkg/slashtypes"
)

const (
	// maxNameLen is the platform limit on command and option names.
	maxNameLen = 32

	// maxDescriptionLen is the platform limit on descriptions and choice names.
	maxDescriptionLen = 100

	// maxChoices is the platform limit on choices per option.
	maxChoices = 25
)

// namePattern is the platform identifier grammar for command and option
// names. Uppercase variants are rejected separately so the diagnostic can
// name the exact problem.
var namePattern = regexp.MustCompile(`^[-_\p{L}\p{N}]{1,32}$`)

// Build validates a command descriptor and constructs an immutable
// CommandSchema. Validation runs depth-first and accumulates every violation
// found; if any violation exists the returned schema is nil and the full
// error list is returned. A nil error slice means the schema is valid.
func Build(desc CommandDescriptor) (*slashtypes.CommandSchema, []slashtypes.SchemaError) {
	b := &builder{}
	cmd := b.buildCommand(desc)
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	return cmd, nil
}

// builder accumulates schema errors across one Build call.
type builder struct {
	errs []slashtypes.SchemaError
}

func (b *builder) addf(kind slashtypes.SchemaErrorKind, path, format string, args ...any) {
	b.errs = append(b.errs, slashtypes.SchemaError{
		Kind:   kind,
		Path:   path,
		Detail: fmt.Sprintf(format, args...),
	})
}

func (b *builder) collect(errs []slashtypes.SchemaError) {
	b.errs = append(b.errs, errs...)
}

func (b *builder) buildCommand(desc CommandDescriptor) *slashtypes.CommandSchema {
	path := desc.Name
	if path == "" {
		path = "(command)"
	}

	b.checkName(path, desc.Name)
	b.checkDescription(path, desc.Description, desc.DescriptionLocalizations)

	nameLoc, errs := ValidateLocalizations(desc.NameLocalizations, maxNameLen, path+".name_localizations")
	b.collect(errs)
	descLoc, errs := ValidateLocalizations(desc.DescriptionLocalizations, maxDescriptionLen, path+".description_localizations")
	b.collect(errs)

	options := b.buildLevel(path, desc.Options, nestingTop)

	var perms *uint64
	if desc.DefaultMemberPermissions != nil {
		p := *desc.DefaultMemberPermissions
		perms = &p
	}
	var dm *bool
	if desc.DMPermission != nil {
		v := *desc.DMPermission
		dm = &v
	}

	return &slashtypes.CommandSchema{
		Name:                     desc.Name,
		Description:              desc.Description,
		NameLocalizations:        nameLoc,
		DescriptionLocalizations: descLoc,
		DefaultMemberPermissions: perms,
		DMPermission:             dm,
		NSFW:                     desc.NSFW,
		Contexts:                 append([]slashtypes.ContextKind(nil), desc.Contexts...),
		IntegrationTypes:         append([]slashtypes.IntegrationKind(nil), desc.IntegrationTypes...),
		Options:                  options,
	}
}

// nesting identifies where in the option tree a level sits, which determines
// the option kinds allowed at that level. Depth is exactly two at most:
// group → subcommand → leaves.
type nesting int

const (
	// nestingTop is the command's direct option list.
	nestingTop nesting = iota
	// nestingGroup is the option list of a subcommand group.
	nestingGroup
	// nestingLeafOnly is the option list of a subcommand.
	nestingLeafOnly
)

// buildLevel validates one sibling option list depth-first: children are
// built before sibling-level constraints (mixing, ordering, duplicate names)
// are checked against the whole level.
func (b *builder) buildLevel(path string, descs []OptionDescriptor, level nesting) []slashtypes.OptionSchema {
	if len(descs) == 0 {
		return nil
	}

	options := make([]slashtypes.OptionSchema, 0, len(descs))
	for i := range descs {
		options = append(options, b.buildOption(path, &descs[i], level))
	}

	seen := make(map[string]struct{}, len(descs))
	dispatch := false
	field := false
	optionalSeen := false
	for i := range options {
		opt := &options[i]
		optPath := path + "." + opt.Name

		if _, dup := seen[opt.Name]; dup && opt.Name != "" {
			b.addf(slashtypes.ErrInvalidName, optPath, "duplicate sibling option name")
		}
		seen[opt.Name] = struct{}{}

		if opt.Kind.Dispatch() {
			dispatch = true
		} else {
			field = true
			if opt.Required && optionalSeen {
				b.addf(slashtypes.ErrRequiredAfterOptional, optPath, "required option declared after an optional sibling")
			}
			if !opt.Required {
				optionalSeen = true
			}
		}
	}

	if dispatch && field {
		b.addf(slashtypes.ErrInvalidNesting, path, "subcommand and plain options mixed at one level")
	}

	return options
}

func (b *builder) buildOption(parent string, d *OptionDescriptor, level nesting) slashtypes.OptionSchema {
	path := parent + "." + d.Name
	if d.Name == "" {
		path = parent + ".(option)"
	}

	b.checkName(path, d.Name)
	b.checkDescription(path, d.Description, d.DescriptionLocalizations)

	nameLoc, errs := ValidateLocalizations(d.NameLocalizations, maxNameLen, path+".name_localizations")
	b.collect(errs)
	descLoc, errs := ValidateLocalizations(d.DescriptionLocalizations, maxDescriptionLen, path+".description_localizations")
	b.collect(errs)

	opt := slashtypes.OptionSchema{
		Name:                     d.Name,
		Description:              d.Description,
		NameLocalizations:        nameLoc,
		DescriptionLocalizations: descLoc,
		Kind:                     d.Kind,
		Required:                 d.Required,
		Autocomplete:             d.Autocomplete,
	}

	switch {
	case d.Kind.Dispatch():
		b.buildDispatchOption(path, d, level, &opt)
	default:
		b.buildFieldOption(path, d, &opt)
	}

	return opt
}

func (b *builder) buildDispatchOption(path string, d *OptionDescriptor, level nesting, opt *slashtypes.OptionSchema) {
	switch {
	case level == nestingLeafOnly:
		b.addf(slashtypes.ErrInvalidNesting, path, "%s nested beneath a subcommand", d.Kind)
	case level == nestingGroup && d.Kind != slashtypes.OptionTypeSubCommand:
		b.addf(slashtypes.ErrInvalidNesting, path, "subcommand group may only contain subcommands")
	}

	if d.Required || d.Autocomplete || len(d.Choices) > 0 ||
		d.MinValue != nil || d.MaxValue != nil || d.MinLength != nil || d.MaxLength != nil ||
		len(d.ChannelKinds) > 0 {
		b.addf(slashtypes.ErrInvalidNesting, path, "value constraints declared on a %s option", d.Kind)
	}

	child := nestingLeafOnly
	if d.Kind == slashtypes.OptionTypeSubCommandGroup {
		child = nestingGroup
	}
	opt.SubOptions = b.buildLevel(path, d.SubOptions, child)
}

func (b *builder) buildFieldOption(path string, d *OptionDescriptor, opt *slashtypes.OptionSchema) {
	if len(d.SubOptions) > 0 {
		b.addf(slashtypes.ErrInvalidNesting, path, "nested options declared on a %s option", d.Kind)
	}

	b.buildChoices(path, d, opt)
	b.buildBounds(path, d, opt)

	if d.Autocomplete {
		switch d.Kind {
		case slashtypes.OptionTypeString, slashtypes.OptionTypeInteger, slashtypes.OptionTypeNumber:
		default:
			b.addf(slashtypes.ErrInconsistentBounds, path, "autocomplete on a %s option", d.Kind)
		}
	}

	if len(d.ChannelKinds) > 0 {
		if d.Kind != slashtypes.OptionTypeChannel {
			b.addf(slashtypes.ErrInconsistentBounds, path, "channel kind restriction on a %s option", d.Kind)
		} else {
			opt.ChannelKinds = append([]slashtypes.ChannelKind(nil), d.ChannelKinds...)
		}
	}
}

// choiceKindFor maps a by-value option type to the choice value kind its
// choices must carry.
func choiceKindFor(t slashtypes.OptionType) (slashtypes.ChoiceValueKind, bool) {
	switch t {
	case slashtypes.OptionTypeString:
		return slashtypes.ChoiceString, true
	case slashtypes.OptionTypeInteger:
		return slashtypes.ChoiceInteger, true
	case slashtypes.OptionTypeNumber:
		return slashtypes.ChoiceNumber, true
	default:
		return 0, false
	}
}

func (b *builder) buildChoices(path string, d *OptionDescriptor, opt *slashtypes.OptionSchema) {
	if len(d.Choices) == 0 {
		return
	}

	wantKind, choicesAllowed := choiceKindFor(d.Kind)
	if !choicesAllowed {
		b.addf(slashtypes.ErrInconsistentBounds, path, "choices declared on a %s option", d.Kind)
		return
	}

	if d.Autocomplete {
		b.addf(slashtypes.ErrChoicesWithAutocomplete, path, "choices and autocomplete are mutually exclusive")
	}
	if len(d.Choices) > maxChoices {
		b.addf(slashtypes.ErrTooManyChoices, path, "%d choices declared, maximum is %d", len(d.Choices), maxChoices)
	}

	choices := make([]slashtypes.Choice, 0, len(d.Choices))
	for i := range d.Choices {
		c := &d.Choices[i]
		choicePath := fmt.Sprintf("%s.choices[%d]", path, i)

		if c.Name == "" || utf8.RuneCountInString(c.Name) > maxDescriptionLen {
			b.addf(slashtypes.ErrInvalidName, choicePath, "choice name must be 1-%d characters", maxDescriptionLen)
		}
		if c.Value.Kind != wantKind {
			b.addf(slashtypes.ErrInconsistentBounds, choicePath, "choice value kind does not match %s option", d.Kind)
		}
		for j := 0; j < i; j++ {
			if d.Choices[j].Value.Equal(c.Value) {
				b.addf(slashtypes.ErrDuplicateChoiceValue, choicePath, "duplicate choice value")
				break
			}
		}

		nameLoc, errs := ValidateLocalizations(c.NameLocalizations, maxDescriptionLen, choicePath+".name_localizations")
		b.collect(errs)

		choices = append(choices, slashtypes.Choice{
			Name:              c.Name,
			NameLocalizations: nameLoc,
			Value:             c.Value,
		})
	}
	opt.Choices = choices
}

func (b *builder) buildBounds(path string, d *OptionDescriptor, opt *slashtypes.OptionSchema) {
	numeric := d.Kind == slashtypes.OptionTypeInteger || d.Kind == slashtypes.OptionTypeNumber

	if (d.MinValue != nil || d.MaxValue != nil) && !numeric {
		b.addf(slashtypes.ErrInconsistentBounds, path, "value bounds on a %s option", d.Kind)
	} else if numeric {
		if d.MinValue != nil {
			v := *d.MinValue
			opt.MinValue = &v
		}
		if d.MaxValue != nil {
			v := *d.MaxValue
			opt.MaxValue = &v
		}
		if d.MinValue != nil && d.MaxValue != nil {
			inconsistent := false
			if d.Kind == slashtypes.OptionTypeInteger {
				inconsistent = d.MinValue.Int > d.MaxValue.Int
			} else {
				inconsistent = d.MinValue.Num > d.MaxValue.Num
			}
			if inconsistent {
				b.addf(slashtypes.ErrInconsistentBounds, path, "min_value exceeds max_value")
			}
		}
	}

	if (d.MinLength != nil || d.MaxLength != nil) && d.Kind != slashtypes.OptionTypeString {
		b.addf(slashtypes.ErrInconsistentBounds, path, "length bounds on a %s option", d.Kind)
	} else if d.Kind == slashtypes.OptionTypeString {
		if d.MinLength != nil {
			v := *d.MinLength
			opt.MinLength = &v
		}
		if d.MaxLength != nil {
			v := *d.MaxLength
			opt.MaxLength = &v
		}
		if d.MinLength != nil && d.MaxLength != nil && *d.MinLength > *d.MaxLength {
			b.addf(slashtypes.ErrInconsistentBounds, path, "min_length exceeds max_length")
		}
	}
}

func (b *builder) checkName(path, name string) {
	switch {
	case name == "" || utf8.RuneCountInString(name) > maxNameLen:
		b.addf(slashtypes.ErrInvalidName, path, "name must be 1-%d characters", maxNameLen)
	case !namePattern.MatchString(name):
		b.addf(slashtypes.ErrInvalidName, path, "name %q violates the identifier grammar", name)
	case name != strings.ToLower(name):
		b.addf(slashtypes.ErrInvalidName, path, "name %q must be lowercase", name)
	}
}

func (b *builder) checkDescription(path, description string, localized map[string]string) {
	if description == "" && len(localized) > 0 {
		b.addf(slashtypes.ErrMissingFallbackDescription, path, "localized descriptions require a canonical fallback description")
		return
	}
	if description == "" || utf8.RuneCountInString(description) > maxDescriptionLen {
		b.addf(slashtypes.ErrDescriptionOutOfBounds, path, "description must be 1-%d characters", maxDescriptionLen)
	}
}
