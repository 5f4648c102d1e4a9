package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rhobs/jokes-mcp/pkg/tools"
)

func main() {
	defs := tools.DefaultRegistry().All()

	if err := os.WriteFile("TOOLS.md", []byte(generateMarkdown(defs)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating TOOLS.md: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ TOOLS.md generated successfully")
	fmt.Printf("  Documented %d tools:\n", len(defs))
	for _, def := range defs {
		fmt.Printf("    - %s\n", def.Name)
	}
	fmt.Println("\n💡 Reminder: When adding a new tool, add it to AllTools() in pkg/tools/definitions.go")
}

// formatTable generates a formatted markdown table with aligned columns
func formatTable(headers, alignments []string, rows [][]string) string {
	if len(headers) == 0 || len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(len(h), 3)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	sb.WriteString("|")
	for i, h := range headers {
		sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], h))
	}
	sb.WriteString("\n")

	sb.WriteString("|")
	for i, w := range widths {
		align := "l"
		if i < len(alignments) {
			align = alignments[i]
		}
		switch align {
		case "c":
			sb.WriteString(fmt.Sprintf(" :%s: |", strings.Repeat("-", w-2)))
		case "r":
			sb.WriteString(fmt.Sprintf(" %s: |", strings.Repeat("-", w-1)))
		default:
			sb.WriteString(fmt.Sprintf(" :%s |", strings.Repeat("-", w-1)))
		}
	}
	sb.WriteString("\n")

	for _, row := range rows {
		sb.WriteString("|")
		for i, cell := range row {
			if i < len(widths) {
				sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], cell))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func generateMarkdown(defs []tools.ToolDef) string {
	var sb strings.Builder

	sb.WriteString("<!-- This file is auto-generated. Do not edit manually. -->\n")
	sb.WriteString("<!-- Run 'go run ./cmd/generate-tools-doc' to regenerate. -->\n\n")

	sb.WriteString("# Available Tools\n\n")
	sb.WriteString("This MCP server exposes the following joke tools:\n\n")

	var summary [][]string
	for _, def := range defs {
		var params []string
		for _, p := range def.Params {
			params = append(params, fmt.Sprintf("`%s: %s`", p.Name, p.Type))
		}
		if len(params) == 0 {
			params = []string{"none"}
		}
		summary = append(summary, []string{fmt.Sprintf("`%s`", def.Name), strings.Join(params, ", "), def.Output})
	}
	sb.WriteString(formatTable(
		[]string{"Tool", "Parameters", "Output"},
		[]string{"l", "l", "l"},
		summary,
	))
	sb.WriteString("\n")

	for i, def := range defs {
		sb.WriteString(fmt.Sprintf("## `%s`\n\n", def.Name))

		// First paragraph is the summary, the rest become usage tips
		paragraphs := strings.Split(strings.TrimSpace(def.Description), "\n\n")
		sb.WriteString(fmt.Sprintf("> %s\n\n", strings.TrimSpace(paragraphs[0])))

		if len(paragraphs) > 1 {
			sb.WriteString("**Usage Tips:**\n\n")
			for _, para := range paragraphs[1:] {
				joined := strings.Join(strings.Fields(para), " ")
				if joined != "" {
					sb.WriteString(fmt.Sprintf("- %s\n", joined))
				}
			}
			sb.WriteString("\n")
		}

		if len(def.Params) == 0 {
			sb.WriteString("**Parameters:** none\n\n")
		} else {
			sb.WriteString("**Parameters:**\n\n")
			var rows [][]string
			for _, p := range def.Params {
				req := ""
				if p.Required {
					req = "✅"
				}
				rows = append(rows, []string{
					fmt.Sprintf("`%s`", p.Name),
					fmt.Sprintf("`%s`", p.Type),
					req,
					p.Description,
				})
			}
			sb.WriteString(formatTable(
				[]string{"Parameter", "Type", "Required", "Description"},
				[]string{"l", "l", "c", "l"},
				rows,
			))
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("**Returns:** %s\n\n", def.Output))

		if i < len(defs)-1 {
			sb.WriteString("---\n\n")
		}
	}

	return sb.String()
}
