// Package slashtypes defines the shared data model for the slashkit command
// schema and option resolution engine. This file contains the strongly-typed
// outcomes produced by option and command resolution.
package slashtypes

// OptionValue is one strongly-typed resolved option value. Kind selects which
// variant field is meaningful; by-reference kinds carry hydrated entities
// looked up from the resolved bag.
type OptionValue struct {
	Kind OptionType

	Str  string
	Int  int64
	Num  float64
	Bool bool

	User       *ResolvedUser
	Channel    *Channel
	Role       *Role
	Mention    *Mentionable
	Attachment *Attachment
}

// OutcomeState identifies what an option resolution produced.
type OutcomeState int

const (
	// OutcomeAbsent means the option was not submitted and was not required.
	OutcomeAbsent OutcomeState = iota
	// OutcomeResolved means the option passed validation and carries a value.
	OutcomeResolved
	// OutcomeFocused means the option is being autocompleted; validation was
	// relaxed and the outcome carries the partial raw value instead.
	OutcomeFocused
)

// String returns a short name for the outcome state, used in diagnostics.
func (s OutcomeState) String() string {
	switch s {
	case OutcomeAbsent:
		return "absent"
	case OutcomeResolved:
		return "resolved"
	case OutcomeFocused:
		return "focused"
	default:
		return "unknown"
	}
}

// OptionOutcome is the result of resolving one option against its schema.
type OptionOutcome struct {
	// State identifies which of the remaining fields are meaningful.
	State OutcomeState

	// Value is the validated typed value when State is OutcomeResolved.
	Value OptionValue

	// ChoiceName is the display name of the matching declared choice, when
	// the option declares choices and State is OutcomeResolved.
	ChoiceName string

	// Partial is the as-typed raw value when State is OutcomeFocused.
	Partial RawValue
}

// Resolved reports whether the outcome carries a validated value.
func (o OptionOutcome) Resolved() bool { return o.State == OutcomeResolved }

// FieldResult pairs a declared field name with its resolution outcome.
// Results preserve schema declaration order.
type FieldResult struct {
	Name    string
	Outcome OptionOutcome
}

// CommandModel is the typed aggregate produced by resolving a raw option tree
// against a command schema. At dispatch levels Branch is non-nil and Fields
// is empty; at field levels Fields holds one result per declared option.
type CommandModel struct {
	// Branch identifies the selected subcommand branch at dispatch levels.
	Branch *BranchSelection

	// Fields holds per-option outcomes at field levels, in declaration order.
	Fields []FieldResult
}

// BranchSelection tags the subcommand or group branch chosen at a dispatch
// level. The nested model is heap-allocated so deep trees do not inflate
// enclosing values.
type BranchSelection struct {
	// Name is the declared name of the chosen branch.
	Name string

	// Kind is OptionTypeSubCommand or OptionTypeSubCommandGroup.
	Kind OptionType

	// Model is the resolved subtree beneath the branch.
	Model *CommandModel
}

// Field returns the outcome for a declared field by name.
func (m *CommandModel) Field(name string) (OptionOutcome, bool) {
	if m == nil {
		return OptionOutcome{}, false
	}
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return m.Fields[i].Outcome, true
		}
	}
	return OptionOutcome{}, false
}

// Path walks dispatch levels from the top of the model and returns the
// sequence of chosen branch names, outermost first.
func (m *CommandModel) Path() []string {
	var path []string
	for cur := m; cur != nil && cur.Branch != nil; cur = cur.Branch.Model {
		path = append(path, cur.Branch.Name)
	}
	return path
}

// Leaf follows dispatch levels down to the innermost field-level model.
func (m *CommandModel) Leaf() *CommandModel {
	cur := m
	for cur != nil && cur.Branch != nil {
		cur = cur.Branch.Model
	}
	return cur
}
