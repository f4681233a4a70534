package main

import (
	"errors"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "Commands:"},
		{"convert", []string{"convert"}, "--no-breaks"},
		{"config", []string{"config"}, "Usage: autop config"},
		{"completion", []string{"completion"}, "Supported shells:"},
		{"version", []string{"version"}, "Usage: autop version"},
		{"help", []string{"help"}, "Usage: autop help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv("")
			if err := runHelp(tt.args, te.Environment); err != nil {
				t.Fatalf("runHelp() error = %v", err)
			}
			if !strings.Contains(te.stdout.String(), tt.want) {
				t.Errorf("stdout missing %q:\n%s", tt.want, te.stdout.String())
			}
		})
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	te := newTestEnv("")
	err := runHelp([]string{"publish"}, te.Environment)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
	if !strings.Contains(te.stderr.String(), "Usage: autop") {
		t.Errorf("usage not printed to stderr: %q", te.stderr.String())
	}
	if te.stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", te.stdout.String())
	}
}
