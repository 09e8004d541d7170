package internal

// Config holds the environment shared by the read-only tooling
// (viewer, debug server). The daemon's own config lives in cmd.
type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`
	DebugPort      int    `env:"DEBUG_PORT,default=8081"`
}
