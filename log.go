package gridview

import (
	"log/slog"
	"os"
)

// gridLogLevel controls the log level for positioning-engine debugging.
// Default is LevelInfo, which suppresses Debug messages. Set GRIDVIEW_DEBUG
// in the environment, or call SetVerbose(true), to see engage/disengage
// transitions and width resyncs.
var gridLogLevel = new(slog.LevelVar)

// gridLogger logs geometry decisions to stderr so they never land inside
// the rendered frame.
var gridLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gridLogLevel}))

func init() {
	if os.Getenv("GRIDVIEW_DEBUG") != "" {
		gridLogLevel.Set(slog.LevelDebug)
	}
}

// SetVerbose enables or disables debug logging for the positioning engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		gridLogLevel.Set(slog.LevelDebug)
	} else {
		gridLogLevel.Set(slog.LevelInfo)
	}
}
