package redisstore

import "errors"

var (
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady           = errors.New("redis did not become ready within the given time period")
	ErrCorruptedRecord         = errors.New("stored credential record is corrupted")
)
