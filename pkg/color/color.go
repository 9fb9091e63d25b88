package color

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// Palette used for diagnostics
var (
	Red     termenv.Color = termenv.ANSIRed
	Green   termenv.Color = termenv.ANSIGreen
	Yellow  termenv.Color = termenv.ANSIYellow
	Blue    termenv.Color = termenv.ANSIBlue
	Magenta termenv.Color = termenv.ANSIMagenta
	Cyan    termenv.Color = termenv.ANSICyan
	White   termenv.Color = termenv.ANSIWhite
	Gray    termenv.Color = termenv.ANSIBrightBlack

	BrightRed   termenv.Color = termenv.ANSIBrightRed
	BrightGreen termenv.Color = termenv.ANSIBrightGreen
)

var colorEnabled = true

func init() {
	if termenv.EnvNoColor() || !isTerminal() {
		colorEnabled = false
	}
}

// isTerminal reports whether diagnostics go to a terminal that supports color
func isTerminal() bool {
	return termenv.NewOutput(os.Stderr).ColorProfile() != termenv.Ascii
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func Colorize(color termenv.Color, text string) string {
	if !colorEnabled {
		return text
	}
	return termenv.String(text).Foreground(color).String()
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func BlueText(text string) string {
	return Colorize(Blue, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	if !colorEnabled {
		return text
	}
	return termenv.String(text).Bold().String()
}

func Success(message string) string {
	if !colorEnabled {
		return message
	}
	return GreenText("Success: ") + message
}

func Position(line, col int) string {
	pos := fmt.Sprintf("%d:%d", line, col)
	if !colorEnabled {
		return pos
	}
	return CyanText(pos)
}

// Code renders a listing, such as generated assembly
func Code(code string) string {
	if !colorEnabled {
		return code
	}
	return GrayText(code)
}

func ErrorWithPosition(line, col int, message, context string) string {
	if !colorEnabled {
		return fmt.Sprintf("Error at %d:%d: %s\n%s", line, col, message, context)
	}

	return fmt.Sprintf("%s at %s: %s\n%s",
		BrightRedText(BoldText("Error")),
		Position(line, col),
		message,
		GrayText(context))
}
