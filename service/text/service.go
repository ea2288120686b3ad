// Package text renders the help and version texts.
package text

import (
	"fmt"
	"strings"

	"github.com/thirukguru/rstr/model"
	"github.com/thirukguru/rstr/shared/charset"
)

const about = `rstr: Generate a cryptographically secure random ASCII string of a given length
using the system's random bytes generator.`

const usage = `#1 Possible usage patterns:
  1. rstr [<string-length>] [{-u | --ucase}] [{-l | --lcase}] \
          [{-d | --digit}] [{-s | --special}]
  2. rstr {-h | --help}
  3. rstr {-v | --version}`

const notation = `#2 Meanings of notations used above:
  - <...>         :  A mandatory value that must not contain a space anywhere.
  - {... | ...}   :  A shorthand and full name for the same option.
  - [...]         :  Non-mandatory options.`

const notesFormat = `#4 Points to be noted:
  - If none of the options are specified, including the length, then the
    generated string has %d characters and may contain all of upper case,
    lower case, digit or special ASCII characters.

  - If the length is specified, but none of the other options are specified,
    then the generated string has the specified length and contains a mix of
    all four types of ASCII characters as mentioned in the previous point.

  - Irrespective of whether the length is specified or not, if at least one
    of the 4 character class options from section #3 is specified, all other
    classes except the one(s) specified will be excluded from the generated
    string.

  - Special characters include only these:
    %s`

const versionFormat = `rstr %s
Copyright (c) 2025-Present Arijit Kumar Das <arijitkdgit.official@gmail.com>
License GPLv3+: GNU GPL version 3 or later <http://gnu.org/licenses/gpl.html>
This program is free software; you may redistribute it under the terms of
the GNU General Public License version 3 or later.
This program has absolutely no warranty.`

// NewService renders both texts once. optionUsages is the option summary
// produced by the flag service.
func NewService(info model.VersionInfo, optionUsages string) Service {
	sections := []string{
		fmt.Sprintf("Help for rstr (version: %s)", info.Version),
		about,
		usage,
		notation,
		"#3 Available options:\n" + strings.TrimRight(optionUsages, "\n"),
		fmt.Sprintf(notesFormat, model.DefaultLength, charset.Special.Chars()),
	}

	return &service{
		help:    strings.Join(sections, "\n\n"),
		version: fmt.Sprintf(versionFormat, info.Version),
	}
}

func (s *service) Help() string {
	return s.help
}

func (s *service) Version() string {
	return s.version
}
