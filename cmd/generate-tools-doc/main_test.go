package main

import (
	"strings"
	"testing"

	"github.com/rhobs/jokes-mcp/pkg/tools"
)

func TestGenerateMarkdown(t *testing.T) {
	out := generateMarkdown(tools.AllTools())

	for _, def := range tools.AllTools() {
		if !strings.Contains(out, "## `"+def.Name+"`") {
			t.Errorf("missing section for %s", def.Name)
		}
	}
	if !strings.Contains(out, "`category: string`") {
		t.Error("expected category parameter in summary table")
	}
	if !strings.Contains(out, "**Usage Tips:**") {
		t.Error("expected usage tips from multi-paragraph descriptions")
	}
}

func TestFormatTable(t *testing.T) {
	got := formatTable(
		[]string{"Tool", "Output"},
		[]string{"l", "c"},
		[][]string{{"`get-dad-joke`", "text"}},
	)

	want := "| Tool           | Output |\n" +
		"| :------------- | :----: |\n" +
		"| `get-dad-joke` | text   |\n"
	if got != want {
		t.Errorf("unexpected table:\n%s\nwant:\n%s", got, want)
	}

	if formatTable(nil, nil, nil) != "" {
		t.Error("expected empty output for empty table")
	}
}
