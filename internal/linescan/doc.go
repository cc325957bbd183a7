// Package linescan locates keyword occurrences within the lines of a text.
//
// A scan is a pure function of its inputs: it never touches the filesystem,
// holds no state between calls, and is safe for concurrent use.
//
// Occurrences are non-overlapping and reported top-to-bottom, left-to-right.
// Within a line the search resumes immediately after the consumed span, so
// the keyword "aa" matches "aaaa" at columns 1 and 3 only. Scanning stops as
// soon as the requested number of matches has been collected.
//
// Typical use:
//
//	if err := linescan.Validate(req, kwsearch.DefaultLimits()); err != nil {
//	    return err
//	}
//	result := linescan.Scan(content, req)
package linescan
