// Package format renders display numbers the way the dashboard's audience
// reads them: pt-BR thousands grouping ("12.345").
package format

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Int formats n with "." as the thousands separator.
func Int(n int) string {
	return strings.ReplaceAll(humanize.Comma(int64(n)), ",", ".")
}
