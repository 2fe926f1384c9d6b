package outwriter

import (
	"os"

	"github.com/huangsam/ringside/internal/contract"
	"golang.org/x/term"
)

// getMaxNameWidth calculates the maximum width for free-text columns (names, moves, holders)
// in table output based on terminal width and how many such columns the table has.
func getMaxNameWidth(cfg *contract.Config, textColumns, fixedWidth int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for table borders, separators, and padding
	available := termWidth - fixedWidth - 4*(textColumns+1)
	if textColumns > 1 {
		available /= textColumns
	}
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
