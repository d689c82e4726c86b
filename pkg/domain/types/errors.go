package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrVersionNotFound indicates the build file has no parsable version line
	ErrVersionNotFound = goerr.New("version line not found in build file")

	// ErrVerifyMismatch indicates the build file did not contain the expected
	// version after the rewrite
	ErrVerifyMismatch = goerr.New("version verification failed after rewrite")
)
