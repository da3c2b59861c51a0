package ssdp

import (
	"github.com/sirupsen/logrus"
)

// Console glyph prefixes in the style of the original goSSDPkit tool,
// kept as a recognizable texture on top of a structured logger instead
// of the hand-rolled stdout+file UTCLogger the tool used.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[91m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorBlue   = "\033[94m"
)

var (
	// OkBox marks routine, successful status lines.
	OkBox = colorBlue + "[*] " + colorReset
	// NoteBox marks an interesting but benign event.
	NoteBox = colorGreen + "[+] " + colorReset
	// WarnBox marks a recoverable problem.
	WarnBox = colorYellow + "[!] " + colorReset
	// MSearchBox marks an observed M-SEARCH request.
	MSearchBox = colorBlue + "[M-SEARCH] " + colorReset
	// NotifyBox marks an observed NOTIFY announcement.
	NotifyBox = colorGreen + "[NOTIFY]   " + colorReset
)

// Log is the package-level logger every ssdp component writes through.
// Callers embedding this package in a larger application may swap it out
// (e.g. `ssdp.Log = myLogger`) before using any other entry point.
var Log = logrus.New()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05 UTC",
	})
}
