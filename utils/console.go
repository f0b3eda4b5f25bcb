package utils

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
)

func Warnf(format string, args ...any) {
	fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf(format, args...))
}

func Successf(format string, args ...any) {
	fmt.Printf(" %s %s\n", text.FgHiGreen.Sprint("✅"), text.FgGreen.Sprintf(format, args...))
}
