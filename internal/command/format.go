package command

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// Chips formats a chip amount with thousands separators
func Chips(n int64) string {
	return printer.Sprintf("%d", n)
}

// SignedChips formats an amount with an explicit sign
func SignedChips(n int64) string {
	if n > 0 {
		return "+" + Chips(n)
	}
	return Chips(n)
}

// Timespan renders a duration as "1h 5m 3s", dropping empty units
func Timespan(d time.Duration) string {
	d = d.Round(time.Second)
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}

// RankPrefix returns a medal for the podium and "n." otherwise
func RankPrefix(rank int) string {
	if medal, ok := medals[rank]; ok {
		return medal
	}
	return fmt.Sprintf("%d.", rank)
}

// DisplayName prefixes a username with @ once
func DisplayName(username string) string {
	if username == "" || strings.HasPrefix(username, "@") {
		return username
	}
	return "@" + username
}

// EffectName turns an effect kind like WIN_BOOST into "Win Boost"
func EffectName(kind domain.EffectKind) string {
	return titler.String(strings.ReplaceAll(strings.ToLower(string(kind)), "_", " "))
}

func formatClock(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}
