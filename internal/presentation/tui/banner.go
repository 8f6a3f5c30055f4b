package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/creational/pkg/colors"
)

var bannerRows = []struct {
	text  string
	color colors.Color
}{
	{`                         _   _                   _ `, colors.Blue},
	{`   ___ _ __ ___  __ _  | |_(_) ___  _ __   __ _| |`, colors.Purple},
	{`  / __| '__/ _ \/ _' | | __| |/ _ \| '_ \ / _' | |`, colors.Pink},
	{` | (__| | |  __/ (_| | | |_| | (_) | | | | (_| | |`, colors.Red},
	{`  \___|_|  \___|\__,_|  \__|_|\___/|_| |_|\__,_|_|`, colors.Orange},
}

// PrintBanner writes the ASCII art banner shown before the tour.
func PrintBanner(w io.Writer, p *colors.Palette) {
	fmt.Fprintln(w)
	for _, row := range bannerRows {
		fmt.Fprintln(w, p.Paint(row.color, row.text))
	}
	fmt.Fprintln(w)
}
