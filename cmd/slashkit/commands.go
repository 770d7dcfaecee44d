// Package main provides the slashkit CLI application entry point.
// This file contains the manifest-operating subcommands: validate, compile,
// describe and diff.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slashkit/internal/drift"
	"slashkit/internal/logger"
	"slashkit/internal/manifest"
	"slashkit/internal/render"
	"slashkit/pkg/registration"
	"slashkit/pkg/schema"
	"slashkit/pkg/slashtypes"
)

var compileOut string
var diffAgainst string

// validateCmd builds every command in the given manifests and reports all
// accumulated schema errors.
var validateCmd = &cobra.Command{
	Use:   "validate <manifest.yaml>...",
	Short: "Validate command manifests",
	Long: `Build every command declared in the given manifests and report every
structural violation found. The exit code is non-zero if any command fails.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

// compileCmd compiles manifests into a registration payload JSON array.
var compileCmd = &cobra.Command{
	Use:   "compile <manifest.yaml>...",
	Short: "Compile manifests into registration payloads",
	Long: `Build and compile every command declared in the given manifests and emit
the registration payloads as a JSON array, suitable for bulk registration
or for saving as a drift snapshot.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCompile,
}

// describeCmd renders a human-readable summary of manifest commands.
var describeCmd = &cobra.Command{
	Use:   "describe <manifest.yaml>...",
	Short: "Show a readable summary of manifest commands",
	Args:  cobra.MinimumNArgs(1),
	Run:   runDescribe,
}

// diffCmd reports drift between manifests and a saved registration snapshot.
var diffCmd = &cobra.Command{
	Use:   "diff <manifest.yaml>...",
	Short: "Compare manifests against a registration snapshot",
	Long: `Compile the given manifests and compare the result against a previously
saved snapshot (as produced by compile), reporting added, removed and
changed commands. The exit code is non-zero if any drift is found.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runDiff,
}

func init() {
	compileCmd.Flags().StringVarP(&compileOut, "output", "o", "", "Write payloads to file instead of stdout")
	diffCmd.Flags().StringVar(&diffAgainst, "against", "", "Snapshot file to compare against (required)")
	_ = diffCmd.MarkFlagRequired("against")
}

// buildManifests loads every manifest and builds every command, accumulating
// schema errors per command. Returns the built schemas and whether every
// command built cleanly.
func buildManifests(paths []string) ([]*slashtypes.CommandSchema, bool) {
	var schemas []*slashtypes.CommandSchema
	ok := true

	for _, path := range paths {
		file, err := manifest.Load(path)
		if err != nil {
			printer.Error(err.Error())
			ok = false
			continue
		}

		descs, err := file.Descriptors()
		if err != nil {
			printer.Error(fmt.Sprintf("%s: %v", path, err))
			ok = false
			continue
		}

		for _, desc := range descs {
			cmd, errs := schema.Build(desc)
			logger.SchemaValidation(desc.Name, len(errs))
			if len(errs) > 0 {
				printer.Error(fmt.Sprintf("%s: command %s has %d schema errors:", path, desc.Name, len(errs)))
				for i := range errs {
					printer.Detail("  " + errs[i].Error())
				}
				ok = false
				continue
			}
			schemas = append(schemas, cmd)
		}
	}

	return schemas, ok
}

func runValidate(_ *cobra.Command, args []string) {
	schemas, ok := buildManifests(args)
	if !ok {
		os.Exit(1)
	}
	printer.Success(fmt.Sprintf("%d commands valid", len(schemas)))
}

func runCompile(_ *cobra.Command, args []string) {
	schemas, ok := buildManifests(args)
	if !ok {
		os.Exit(1)
	}

	payloads := make([]registration.Payload, 0, len(schemas))
	for _, cmd := range schemas {
		payloads = append(payloads, registration.Compile(cmd))
	}

	data, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		logger.Fatal("Failed to marshal payloads", "error", err)
	}

	if compileOut == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(compileOut, append(data, '\n'), 0o644); err != nil {
		logger.Fatal("Failed to write output file", "file", compileOut, "error", err)
	}
	printer.Success(fmt.Sprintf("wrote %d payloads to %s", len(payloads), compileOut))
}

func runDescribe(_ *cobra.Command, args []string) {
	schemas, ok := buildManifests(args)
	if !ok {
		os.Exit(1)
	}

	renderer, err := render.New()
	if err != nil {
		logger.Fatal("Failed to create renderer", "error", err)
	}
	out, err := renderer.Describe(schemas)
	if err != nil {
		logger.Fatal("Failed to render summary", "error", err)
	}
	fmt.Print(out)
}

func runDiff(_ *cobra.Command, args []string) {
	schemas, ok := buildManifests(args)
	if !ok {
		os.Exit(1)
	}

	payloads := make([]registration.Payload, 0, len(schemas))
	for _, cmd := range schemas {
		payloads = append(payloads, registration.Compile(cmd))
	}

	snapshot, err := drift.LoadSnapshot(diffAgainst)
	if err != nil {
		logger.Fatal("Failed to load snapshot", "error", err)
	}

	report, err := drift.Compare(payloads, snapshot)
	if err != nil {
		logger.Fatal("Failed to compare payloads", "error", err)
	}

	if report.Empty() {
		printer.Success("no drift detected")
		return
	}

	for _, name := range report.Added {
		printer.Warning("added: " + name)
	}
	for _, name := range report.Removed {
		printer.Warning("removed: " + name)
	}
	for _, change := range report.Changed {
		printer.Warning("changed: " + change.Name)
		printer.Detail(change.Diff)
	}
	os.Exit(1)
}
