package processor

import "conveyor/internal/report"

// firstFailureOnly truncates a report's failure rows to the first entry.
// A report carrying several failures for one recipe contributes a single
// record to the batch; the rest are intentionally dropped.
func firstFailureOnly(failed []report.FailureRecord) (report.FailureRecord, bool) {
	if len(failed) == 0 {
		return report.FailureRecord{}, false
	}
	return failed[0], true
}

// firstImportedOnly truncates a report's imported rows to the first entry.
// Only one import proceeds to commit/push per recipe run.
func firstImportedOnly(items []report.ImportedItem) (report.ImportedItem, bool) {
	if len(items) == 0 {
		return report.ImportedItem{}, false
	}
	return items[0], true
}
