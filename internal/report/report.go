// Package report parses AutoPkg run reports into normalized outcomes.
package report

import (
	"fmt"
	"os"

	"howett.net/plist"
)

// munkiImporterSummaryKey is the summary_results entry produced by the
// MunkiImporter processor; it is the only importer this pipeline consumes.
const munkiImporterSummaryKey = "munki_importer_summary_result"

// ImportedItem is one data row from the munki importer summary. BranchName
// is attached by the processor after a successful push so per-architecture
// variants of the same name/version stay distinguishable downstream.
type ImportedItem struct {
	Name       string `plist:"name"`
	Version    string `plist:"version"`
	BranchName string `plist:"-"`
}

// CommitMessage returns the commit message recorded for this import. The
// same text titles the review request.
func (i ImportedItem) CommitMessage() string {
	return fmt.Sprintf("Update %s to version %s", i.Name, i.Version)
}

// FailureRecord is one entry from the report's failures list.
type FailureRecord struct {
	Recipe  string `plist:"recipe"`
	Message string `plist:"message"`
}

// RunOutcome is the normalized result of one AutoPkg invocation. Both lists
// preserve report order; both empty means the run was a no-op.
type RunOutcome struct {
	Imported []ImportedItem
	Failed   []FailureRecord
}

// Empty reports whether the run produced neither imports nor failures.
func (o RunOutcome) Empty() bool {
	return len(o.Imported) == 0 && len(o.Failed) == 0
}

// reportFile mirrors the on-disk report.plist layout. Absent top-level keys
// decode to zero values, which the contract treats as empty lists.
type reportFile struct {
	SummaryResults map[string]summaryResult `plist:"summary_results"`
	Failures       []FailureRecord          `plist:"failures"`
}

type summaryResult struct {
	DataRows []ImportedItem `plist:"data_rows"`
}

// Parser reads AutoPkg report plists.
type Parser struct{}

// NewParser returns a report parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads and decodes the report at path. An unreadable or structurally
// malformed report is an error; missing summary or failure keys are not.
func (p *Parser) Parse(path string) (RunOutcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunOutcome{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var file reportFile
	if _, err := plist.Unmarshal(data, &file); err != nil {
		return RunOutcome{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	outcome := RunOutcome{
		Failed: file.Failures,
	}
	if summary, ok := file.SummaryResults[munkiImporterSummaryKey]; ok {
		outcome.Imported = summary.DataRows
	}
	return outcome, nil
}
