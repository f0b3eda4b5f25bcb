package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/storage-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawUnusedStoresTable renders the scan report: a summary table followed
// by a per-store detail table when anything unused was found.
func DrawUnusedStoresTable(accountInfo model.AccountInfo, flags model.Flags, result *model.ScanResult) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🏥 STORAGE DOCTOR CHECKUP"))
	fmt.Printf(" Account: %s (%s)\n", text.FgBlue.Sprint(accountInfo.AccountName), accountInfo.AccountID)
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawScanSummaryTable(accountInfo, flags, result)

	if len(result.UnusedAccounts) == 0 {
		fmt.Printf("\n %s\n", text.FgHiGreen.Sprintf("✅ No unused stores found (every store has activity within %d days)", flags.DaysAgo))
		return
	}

	fmt.Println()
	for _, account := range result.UnusedAccounts {
		fmt.Printf(" %s %s (%s)\n", text.FgHiRed.Sprint("•"), account.Name, account.Location)
	}

	drawUnusedDetailTable(result.UnusedAccounts)
}

func drawScanSummaryTable(accountInfo model.AccountInfo, flags model.Flags, result *model.ScanResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Scan Summary")
	tw.AppendHeader(table.Row{"Provider", "Scope", "Scanned", "Unused", "Threshold", "Status"})
	tw.SetStyle(table.StyleRounded)

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignCenter},
		{Number: 5, Align: text.AlignCenter},
		{Number: 6, Align: text.AlignCenter},
	})

	status := text.FgHiGreen.Sprint("✅ Healthy")
	unusedCount := len(result.UnusedAccounts)
	if unusedCount > 0 {
		status = text.FgHiRed.Sprint("⚠ Unused found")
	}

	tw.AppendRow(table.Row{
		text.FgHiCyan.Sprint(strings.ToUpper(accountInfo.Provider)),
		scopeLabel(flags),
		result.ProcessedCount,
		formatUnusedCount(unusedCount),
		fmt.Sprintf("%d days", flags.DaysAgo),
		status,
	})

	tw.Render()
}

func drawUnusedDetailTable(accounts []model.StorageAccount) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Unused Stores")
	tw.AppendHeader(table.Row{"Storage Account", "Location"})
	tw.SetStyle(table.StyleRounded)

	for _, account := range accounts {
		tw.AppendRow(table.Row{
			text.FgHiRed.Sprint(account.Name),
			account.Location,
		})
	}

	tw.Render()
}

func scopeLabel(flags model.Flags) string {
	switch flags.Provider {
	case "azure":
		return flags.ResourceGroup
	case "aws":
		return flags.Region
	case "gcp":
		return flags.Project
	}
	return ""
}

func formatUnusedCount(count int) string {
	if count == 0 {
		return text.FgGreen.Sprint("0")
	}
	return text.FgHiRed.Sprintf("%d", count)
}
