package command

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errBadAmount    = errors.New(MsgAmountInvalid)
	errBadBet       = errors.New(MsgBetInvalid)
	errBadRecipient = errors.New(MsgGiveBadRecipient)
	errGiveUsage    = errors.New(MsgGiveUsage)
)

// SlotsArgs is the parsed form of `slots [machine] [bet]`
type SlotsArgs struct {
	Help    bool
	Machine string // empty selects the default machine
	Bet     *int64 // nil lets the server pick the bet
}

// UnknownMachineError reports a first argument that is neither a machine nor a number
type UnknownMachineError struct {
	Name string
}

func (e *UnknownMachineError) Error() string {
	return "unknown machine: " + e.Name
}

// ParseSlotsArgs interprets slots arguments against the known machine keys.
// The first argument is a machine key when one matches, otherwise it must be a bet.
func ParseSlotsArgs(args []string, isMachine func(string) bool) (SlotsArgs, error) {
	var parsed SlotsArgs
	if len(args) == 0 {
		return parsed, nil
	}

	first := strings.ToLower(strings.TrimSpace(args[0]))
	if first == "help" || first == "?" {
		parsed.Help = true
		return parsed, nil
	}

	betArg := ""
	if isMachine(first) {
		parsed.Machine = first
		if len(args) > 1 {
			betArg = args[1]
		}
	} else {
		if _, err := strconv.ParseInt(first, 10, 64); err != nil {
			return parsed, &UnknownMachineError{Name: first}
		}
		betArg = first
	}

	if betArg == "" {
		return parsed, nil
	}
	bet, err := parsePositive(betArg)
	if err != nil {
		return parsed, errBadBet
	}
	parsed.Bet = &bet
	return parsed, nil
}

// GiveArgs is the parsed form of `give <amount> @username`
type GiveArgs struct {
	Amount    int64
	Recipient string
}

// ParseGiveArgs validates the amount and the @-prefixed recipient
func ParseGiveArgs(args []string) (GiveArgs, error) {
	if len(args) < 2 {
		return GiveArgs{}, errGiveUsage
	}
	amount, err := parsePositive(args[0])
	if err != nil {
		return GiveArgs{}, errBadAmount
	}
	recipient := strings.TrimSpace(args[1])
	if !strings.HasPrefix(recipient, "@") || len(recipient) < 2 {
		return GiveArgs{}, errBadRecipient
	}
	return GiveArgs{Amount: amount, Recipient: strings.TrimPrefix(recipient, "@")}, nil
}

func parsePositive(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errBadAmount
	}
	return n, nil
}
