package discord

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// isTransient reports whether a failed Discord call is worth retrying.
// Rate limits, server errors and network failures are; other client errors are not.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rateLimited *discordgo.RateLimitError
	if errors.As(err, &rateLimited) {
		return true
	}

	var rest *discordgo.RESTError
	if errors.As(err, &rest) {
		if rest.Response == nil {
			return true
		}
		code := rest.Response.StatusCode
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	}

	return true
}
