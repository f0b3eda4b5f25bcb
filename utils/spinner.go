package utils

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/elC0mpa/storage-doctor/model"
)

var scanSpinner *spinner.Spinner

func StartSpinner() {
	scanSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	scanSpinner.Suffix = " Scanning storage..."
	scanSpinner.Start()
}

// UpdateScanProgress reflects walker progress in the spinner suffix.
func UpdateScanProgress(progress model.ScanProgress) {
	if scanSpinner == nil {
		return
	}
	scanSpinner.Suffix = fmt.Sprintf(" Scanning storage... %d/%d (%.2f%%)",
		progress.Processed, progress.Total, progress.Percent)
}

func StopSpinner() {
	if scanSpinner != nil {
		scanSpinner.Stop()
		scanSpinner = nil
	}
}
