package builtin

import (
	"strings"
	"time"

	"github.com/mako10k/ishell/internal/result"
)

// Date formats the current time. Default format is "%a %b %d %H:%M:%S
// %Y"; "+FMT" supports %Y %m %d %H %M %S (spec 4.H).
func Date(ctx *Context, args []string) result.CommandResult {
	now := time.Now()
	if len(args) > 0 && strings.HasPrefix(args[0], "+") {
		return result.Ok(formatDate(args[0][1:], now))
	}
	return result.Ok(now.Format("Mon Jan 02 15:04:05 2006"))
}

func formatDate(spec string, t time.Time) string {
	replacer := strings.NewReplacer(
		"%Y", t.Format("2006"),
		"%m", t.Format("01"),
		"%d", t.Format("02"),
		"%H", t.Format("15"),
		"%M", t.Format("04"),
		"%S", t.Format("05"),
	)
	return replacer.Replace(spec)
}
