package callbacks

import (
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// PayloadInt parses the callback payload as int.
func PayloadInt(c tele.Context) (int, error) {
	return strconv.Atoi(CallbackPayload(c))
}

// PayloadParts splits the callback payload into parts using the given separator.
func PayloadParts(c tele.Context, sep string) ([]string, error) {
	p := CallbackPayload(c)
	if p == "" {
		return nil, strconv.ErrSyntax
	}
	return strings.Split(p, sep), nil
}

// PayloadIntString parses a payload like "2|petro" into an int and a string.
func PayloadIntString(c tele.Context, sep string) (int, string, error) {
	parts, err := PayloadParts(c, sep)
	if err != nil {
		return 0, "", err
	}
	if len(parts) != 2 {
		return 0, "", strconv.ErrSyntax
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", err
	}
	return n, parts[1], nil
}
