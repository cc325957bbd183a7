package kwsearch

import (
	"errors"
	"strings"
)

// Sentinel errors for the two failure categories a search can end in.
// Callers distinguish them using errors.Is().
//
// Example usage:
//
//	outcome, err := searcher.Search(ctx, req)
//	if errors.Is(err, kwsearch.ErrResourceUnavailable) {
//	    // file missing, not a regular file, or not UTF-8
//	}
var (
	// ErrInvalidArgument indicates malformed or out-of-range search parameters.
	// Always a caller bug; never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceUnavailable indicates the file could not be resolved or read.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrInvalidConfig indicates the kwsearch.yaml configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorPatterns are the message prefixes cobra and pflag use for
// command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"required flag",
	"invalid argument \"",
	"missing required argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ExitInvalidArgument
	case errors.Is(err, ErrInvalidConfig):
		return ExitInvalidArgument
	case errors.Is(err, ErrResourceUnavailable):
		return ExitResourceUnavailable
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}
	if strings.HasPrefix(errStr, "accepts ") && strings.Contains(errStr, "arg(s)") {
		return ExitUsageError
	}

	return ExitGeneralError
}
