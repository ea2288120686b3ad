package flag

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/rstr/model"
)

func TestParseGenerate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want model.Config
	}{
		{
			name: "no arguments",
			args: nil,
			want: model.DefaultConfig(),
		},
		{
			name: "length only keeps every class",
			args: []string{"25"},
			want: model.Config{Length: 25, Digit: true, Upper: true, Lower: true, Special: true},
		},
		{
			name: "zero length",
			args: []string{"0"},
			want: model.Config{Length: 0, Digit: true, Upper: true, Lower: true, Special: true},
		},
		{
			name: "length with digit flag",
			args: []string{"10", "-d"},
			want: model.Config{Length: 10, Digit: true},
		},
		{
			name: "class flags without length",
			args: []string{"-u", "-l"},
			want: model.Config{Length: 16, Upper: true, Lower: true},
		},
		{
			name: "long forms",
			args: []string{"20", "--ucase", "--lcase", "--digit", "--special"},
			want: model.Config{Length: 20, Digit: true, Upper: true, Lower: true, Special: true},
		},
		{
			name: "special only",
			args: []string{"--special"},
			want: model.Config{Length: 16, Special: true},
		},
		{
			name: "repeated flag",
			args: []string{"-s", "-s", "--special"},
			want: model.Config{Length: 16, Special: true},
		},
		{
			name: "leading zeros",
			args: []string{"007", "-d"},
			want: model.Config{Length: 7, Digit: true},
		},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := svc.Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, model.ActionGenerate, req.Action)
			assert.Equal(t, tt.want, req.Config)
		})
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want model.Action
	}{
		{name: "long help", args: []string{"--help"}, want: model.ActionHelp},
		{name: "short help", args: []string{"-h"}, want: model.ActionHelp},
		{name: "help ignores the rest", args: []string{"-h", "-x", "junk", "12"}, want: model.ActionHelp},
		{name: "long version", args: []string{"--version"}, want: model.ActionVersion},
		{name: "short version", args: []string{"-v"}, want: model.ActionVersion},
		{name: "version ignores the rest", args: []string{"--version", "--help"}, want: model.ActionVersion},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := svc.Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Action)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag after length", args: []string{"5", "-x"}},
		{name: "unknown flag alone", args: []string{"-x"}},
		{name: "bare word", args: []string{"abc"}},
		{name: "help after length", args: []string{"10", "--help"}},
		{name: "version after a class flag", args: []string{"-u", "-v"}},
		{name: "length not first", args: []string{"-d", "10"}},
		{name: "second numeric token", args: []string{"10", "10"}},
		{name: "valid tokens before a bad one", args: []string{"8", "-u", "-l", "--nope"}},
		{name: "bundled shorthands", args: []string{"-ul"}},
		{name: "attached value", args: []string{"--ucase=true"}},
		{name: "triple dash", args: []string{"---ucase"}},
		{name: "double dash", args: []string{"--"}},
		{name: "single dash", args: []string{"-"}},
		{name: "negative length", args: []string{"-5"}},
		{name: "signed length", args: []string{"+5"}},
		{name: "empty token", args: []string{""}},
		{name: "overflowing length", args: []string{strings.Repeat("9", 40)}},
		{name: "overflowing length with flags", args: []string{strings.Repeat("9", 40), "-d"}},
		{name: "non ascii digits", args: []string{"１２"}},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArguments))
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	svc := NewService()
	args := []string{"12", "-u", "--digit"}

	first, err := svc.Parse(args)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := svc.Parse(args)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if again != first {
			t.Fatalf("parse result changed: %+v != %+v", again, first)
		}
	}
	if len(args) != 3 || args[0] != "12" {
		t.Fatalf("Parse mutated its input: %v", args)
	}
}

func TestUsages(t *testing.T) {
	usages := NewService().Usages()

	for _, want := range []string{"-u, --ucase", "-l, --lcase", "-d, --digit", "-s, --special", "-h, --help", "-v, --version"} {
		if !strings.Contains(usages, want) {
			t.Fatalf("usages missing %q:\n%s", want, usages)
		}
	}
	if strings.Index(usages, "--ucase") > strings.Index(usages, "--digit") {
		t.Fatalf("usages not in definition order:\n%s", usages)
	}
}
