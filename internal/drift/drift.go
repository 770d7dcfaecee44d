// Package drift compares freshly compiled registration payloads against a
// previously saved registration snapshot, reporting which commands were
// added, removed or changed since the snapshot was taken.
package drift

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"

	"slashkit/internal/logger"
	"slashkit/pkg/registration"
)

// driftLog is the component logger for snapshot comparison.
var driftLog = logger.NewStyledLogger("Drift")

// Change is one command whose compiled payload differs from the snapshot.
type Change struct {
	// Name is the command name.
	Name string

	// Diff is a human-readable inline diff of the canonical JSON forms.
	Diff string
}

// Report summarizes the differences between current payloads and a snapshot.
type Report struct {
	// Added lists commands present now but absent from the snapshot.
	Added []string

	// Removed lists commands present in the snapshot but absent now.
	Removed []string

	// Changed lists commands whose payloads differ.
	Changed []Change
}

// Empty reports whether no drift was detected.
func (r *Report) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// LoadSnapshot reads a registration snapshot: a JSON array of payloads, as
// produced by the compile command.
func LoadSnapshot(path string) ([]registration.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	var payloads []registration.Payload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return payloads, nil
}

// Compare builds a drift report between current payloads and a snapshot.
// Command order does not affect the result; commands are matched by name.
func Compare(current, snapshot []registration.Payload) (*Report, error) {
	currentByName := make(map[string]registration.Payload, len(current))
	for _, p := range current {
		currentByName[p.Name] = p
	}
	snapshotByName := make(map[string]registration.Payload, len(snapshot))
	for _, p := range snapshot {
		snapshotByName[p.Name] = p
	}

	report := &Report{}

	for _, p := range current {
		old, ok := snapshotByName[p.Name]
		if !ok {
			report.Added = append(report.Added, p.Name)
			continue
		}
		diff, changed, err := diffPayloads(old, p)
		if err != nil {
			return nil, err
		}
		if changed {
			report.Changed = append(report.Changed, Change{Name: p.Name, Diff: diff})
		}
	}

	for _, p := range snapshot {
		if _, ok := currentByName[p.Name]; !ok {
			report.Removed = append(report.Removed, p.Name)
		}
	}

	driftLog.Debug("Snapshot comparison complete",
		"added", len(report.Added), "removed", len(report.Removed), "changed", len(report.Changed))
	return report, nil
}

// diffPayloads compares payloads through their canonical JSON forms, which
// keeps the comparison independent of in-memory map ordering.
func diffPayloads(before, after registration.Payload) (string, bool, error) {
	beforeJSON, err := canonical(before)
	if err != nil {
		return "", false, err
	}
	afterJSON, err := canonical(after)
	if err != nil {
		return "", false, err
	}
	if beforeJSON == afterJSON {
		return "", false, nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(beforeJSON, afterJSON, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs), true, nil
}

func canonical(p registration.Payload) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload %s: %w", p.Name, err)
	}
	return string(data), nil
}
