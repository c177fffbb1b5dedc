package internal

import (
	"log"
	"strconv"
)

// ParseInt is strconv.ParseInt with panics in place of errors, for use on
// values a well-formed .fai side file guarantees are numeric: a malformed
// .fai is a corrupt-input bug, not a recoverable runtime condition.
func ParseInt(s string, base, bitSize int) int64 {
	result, err := strconv.ParseInt(s, base, bitSize)
	if err != nil {
		log.Panic(err)
	}
	return result
}
