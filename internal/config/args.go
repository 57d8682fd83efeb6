// Package config turns command-line arguments and an optional TOML file into
// a validated run configuration.
package config

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/textstat/internal/clierr"
	"github.com/verte-zerg/textstat/internal/model"
)

// Flag names as they appear on the command line.
const (
	FlagMinLength  = "--min-length"
	FlagStartsWith = "--starts-with"
	FlagConfig     = "--config"
)

// Args is the result of parsing the raw argument list.
type Args struct {
	Config     model.Config
	ConfigPath string

	minLengthSet  bool
	startsWithSet bool
	configSet     bool
}

// Changed reports whether the named flag was given on the command line.
// Names are used without the leading dashes, e.g. "min-length".
func (a Args) Changed(name string) bool {
	switch name {
	case "min-length":
		return a.minLengthSet
	case "starts-with":
		return a.startsWithSet
	case "config":
		return a.configSet
	default:
		return false
	}
}

// ParseArgs parses the full argument list, program name included at index 0.
// Argument 1 is the input path; flags after it may appear in any order and
// unrecognized tokens are skipped. A flag always consumes the next argument
// as its value.
func ParseArgs(args []string) (Args, error) {
	if len(args) < 2 {
		return Args{}, &clierr.Error{Kind: clierr.MissingFilePath}
	}
	out := Args{Config: model.Config{FilePath: args[1]}}

	for i := 2; i < len(args); i++ {
		switch args[i] {
		case FlagMinLength:
			i++
			if i >= len(args) {
				return Args{}, clierr.InvalidValue(clierr.InvalidMinLength, "", clierr.ReasonMissingValue)
			}
			n, err := ParseMinLength(args[i])
			if err != nil {
				return Args{}, err
			}
			out.Config.MinLength = n
			out.minLengthSet = true
		case FlagStartsWith:
			i++
			if i >= len(args) {
				return Args{}, clierr.InvalidValue(clierr.InvalidStartsWith, "", clierr.ReasonMissingValue)
			}
			r, err := ParseStartsWith(args[i])
			if err != nil {
				return Args{}, err
			}
			out.Config.StartsWith = r
			out.Config.HasStartsWith = true
			out.startsWithSet = true
		case FlagConfig:
			i++
			if i >= len(args) {
				return Args{}, clierr.InvalidValue(clierr.InvalidConfigFile, "", clierr.ReasonMissingValue)
			}
			out.ConfigPath = args[i]
			out.configSet = true
		}
	}
	return out, nil
}

// ParseMinLength parses a non-negative decimal integer. A single leading '+'
// is accepted.
func ParseMinLength(value string) (int, error) {
	digits := strings.TrimPrefix(value, "+")
	n, err := strconv.ParseUint(digits, 10, strconv.IntSize-1)
	if err != nil {
		return 0, clierr.InvalidValue(clierr.InvalidMinLength, value, clierr.ReasonNotNumber)
	}
	return int(n), nil
}

// ParseStartsWith validates the first character of value and returns it
// lowercased. Characters after the first are ignored.
func ParseStartsWith(value string) (rune, error) {
	if value == "" {
		return 0, clierr.InvalidValue(clierr.InvalidStartsWith, value, clierr.ReasonNotChar)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if !unicode.IsLetter(r) {
		return 0, clierr.InvalidValue(clierr.InvalidStartsWith, value, clierr.ReasonNotLetter)
	}
	return unicode.ToLower(r), nil
}
