package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/loglens/loglens/pkg/model"
)

// Write renders the analysis result to w in the given format (json, yaml,
// human). json is the contract format: it emits the document exactly as the
// model produced it, pretty-printed with two-space indent.
func Write(w io.Writer, result model.AnalysisResult, format string) error {
	return render(w, result, format, true)
}

// WriteFile renders the result to a file at path. The document is rendered
// in full before the file is created, and write and close failures surface
// as errors. The human view is written to files without ANSI color.
func WriteFile(path string, result model.AnalysisResult, format string) error {
	var buf bytes.Buffer
	if err := render(&buf, result, format, false); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func render(w io.Writer, result model.AnalysisResult, format string, colored bool) error {
	switch format {
	case "yaml":
		return writeYAML(w, result)
	case "human":
		return writeHuman(w, result, colored)
	case "json":
		fallthrough
	default:
		return writeJSON(w, result)
	}
}

func writeJSON(w io.Writer, result model.AnalysisResult) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func writeYAML(w io.Writer, result model.AnalysisResult) error {
	doc, err := json.Marshal(result)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(doc, &generic); err != nil {
		return err
	}
	output, err := yaml.Marshal(generic)
	if err != nil {
		return err
	}
	_, err = w.Write(output)
	return err
}

func writeHuman(w io.Writer, result model.AnalysisResult, colored bool) error {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)
	exampleColor := color.New(color.FgYellow)
	hintColor := color.New(color.FgHiBlack)
	if !colored {
		// File targets stay plain even when stdout is a terminal.
		for _, c := range []*color.Color{yellow, cyan, white, exampleColor, hintColor} {
			c.DisableColor()
		}
	}

	if !result.IsStructured() {
		fmt.Fprintln(w)
		white.Fprintln(w, "📄 RAW MODEL REPLY (no JSON object found):")
		fmt.Fprintln(w, wrapText(result.Raw, 80, "   "))
		return nil
	}

	doc := []byte(result.Structured)

	fmt.Fprintln(w)
	if summary := gjson.GetBytes(doc, "summary"); summary.Exists() {
		cyan.Fprintln(w, "📋 SUMMARY:")
		fmt.Fprintf(w, "%s\n\n", wrapText(summary.String(), 80, "   "))
	}

	errGroups := gjson.GetBytes(doc, "errors")
	if errGroups.IsArray() && len(errGroups.Array()) > 0 {
		yellow.Fprintln(w, "⚠️  ERROR GROUPS:")
		i := 0
		errGroups.ForEach(func(_, group gjson.Result) bool {
			i++
			icon := severityIcon(group.Get("severity").String())
			fmt.Fprintf(w, "   %d. %s %s", i, icon, group.Get("type").String())
			if count := group.Get("count"); count.Exists() {
				fmt.Fprintf(w, " (x%d)", count.Int())
			}
			fmt.Fprintln(w)

			earliest := group.Get("earliest").String()
			latest := group.Get("latest").String()
			if earliest != "" || latest != "" {
				fmt.Fprintf(w, "      Seen: %s .. %s\n", earliest, latest)
			}
			group.Get("examples").ForEach(func(_, example gjson.Result) bool {
				fmt.Fprintf(w, "      Example: %s\n", exampleColor.Sprint(example.String()))
				return true
			})
			if rec := group.Get("recommendation").String(); rec != "" {
				fmt.Fprintf(w, "      Fix: %s\n", rec)
			}
			fmt.Fprintln(w)
			return true
		})
	}

	recs := gjson.GetBytes(doc, "recommendations")
	if recs.IsArray() && len(recs.Array()) > 0 {
		cyan.Fprintln(w, "💡 RECOMMENDATIONS:")
		i := 0
		recs.ForEach(func(_, rec gjson.Result) bool {
			i++
			fmt.Fprintf(w, "   %d. %s\n", i, rec.String())
			return true
		})
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", hintColor.Sprint("Run with --format json for the machine-readable document"))
	return nil
}

func severityIcon(severity string) string {
	switch strings.ToLower(severity) {
	case "high":
		return "🔴"
	case "medium":
		return "🟡"
	case "low":
		return "🟢"
	default:
		return "⚪"
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
