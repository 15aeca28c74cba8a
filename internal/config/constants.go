package config

const (
	// DefaultDatabaseURL points at a local SQLite file created on first run
	DefaultDatabaseURL = "sqlite:///strength_log.db"

	DefaultPort = 5001

	// DefaultTipModel is the Gemini model used for workout tips
	DefaultTipModel = "gemini-2.5-flash"
)
