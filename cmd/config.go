package main

import "time"

type Config struct {
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
	DebugPort      int           `env:"DEBUG_PORT,default=8081"`
	LimitMessages  *int          `env:"LIMIT_MESSAGES"`
	TokenSecret    string        `env:"TOKEN_SECRET,required=true"`
	TokenLifetime  time.Duration `env:"TOKEN_LIFETIME,default=24h"`

	// Initial settings values; runtime changes go through the
	// settings source, not the environment.
	SiteURL           string `env:"SITE_URL,required=true"`
	BadWordsEnabled   bool   `env:"BADWORDS_ENABLED,default=false"`
	BadWordsList      string `env:"BADWORDS_LIST"`
	BadWordsWhitelist string `env:"BADWORDS_WHITELIST"`
	StreamingHost     string `env:"STREAMING_HOST,default=open.spotify.com"`
	QuoteChainLimit   int    `env:"QUOTE_CHAIN_LIMIT,default=2"`
	MessageMaxChars   int    `env:"MESSAGE_MAX_CHARS,default=0"`
	UseRealName       bool   `env:"USE_REAL_NAME,default=false"`
}
