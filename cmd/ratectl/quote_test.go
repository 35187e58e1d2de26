package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestQuoteCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"100", "10", "--mode", "increase", "--percent"}, "110.00"},
		{[]string{"50", "60", "--mode", "decrease"}, "0.00"},
		{[]string{"80", "99.999"}, "100.00"},
	}

	for _, tt := range tests {
		cmd := quoteCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(tt.args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("quote %v: %v", tt.args, err)
		}
		if got := strings.TrimSpace(out.String()); got != tt.want {
			t.Errorf("quote %v = %s, want %s", tt.args, got, tt.want)
		}
	}
}

func TestQuoteCommandRejectsUnknownMode(t *testing.T) {
	cmd := quoteCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "2", "--mode", "multiply"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
