package command

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/client"
)

const cooldownMarker = "next claim in "

// FriendlyError turns an API or parse error into a chat message
func FriendlyError(err error) string {
	var unknown *UnknownMachineError
	if errors.As(err, &unknown) {
		return fmt.Sprintf(MsgUnknownMachine, unknown.Name)
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		if isParseError(err) {
			return MsgErrorPrefix + err.Error()
		}
		return MsgGenericError
	}

	switch {
	case apiErr.Status == http.StatusTooManyRequests:
		return cooldownMessage(apiErr.Message)
	case apiErr.Status >= http.StatusInternalServerError:
		return MsgGenericError
	case apiErr.Message == "":
		return MsgGenericError
	default:
		return MsgErrorPrefix + apiErr.Message
	}
}

func isParseError(err error) bool {
	return errors.Is(err, errBadAmount) ||
		errors.Is(err, errBadBet) ||
		errors.Is(err, errBadRecipient) ||
		errors.Is(err, errGiveUsage)
}

// cooldownMessage extracts "next claim in 1h0m0s" and renders the wait
func cooldownMessage(msg string) string {
	_, remaining, found := strings.Cut(msg, cooldownMarker)
	if !found {
		return MsgCooldownActive
	}
	if d, err := time.ParseDuration(strings.TrimSpace(remaining)); err == nil {
		remaining = Timespan(d)
	}
	return fmt.Sprintf(MsgCooldownWait, MsgCooldownActive, remaining)
}
