package utils

import (
	"github.com/common-nighthawk/go-figure"
)

func DrawBanner() {
	banner := figure.NewColorFigure("Storage Doctor", "", "cyan", true)
	banner.Print()
}
