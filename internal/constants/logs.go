package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogQuery         = "query"
	LogBatch         = "batch"
	LogPages         = "pages"
	LogTweetNumber   = "tweetNumber"
	LogWOEID         = "woeid"
	LogURL           = "url"
	LogStatusCode    = "statusCode"
	LogLevelFallback = zerolog.InfoLevel
)
