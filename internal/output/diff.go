package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"gopkg.in/yaml.v3"
)

// DiffBuilds renders a human-readable YAML diff between two build
// shapes, the working build against a saved one. An empty string means
// the two are identical.
func DiffBuilds(currentName string, current any, savedName string, saved any) (string, error) {
	currentYAML, err := yaml.Marshal(current)
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", currentName, err)
	}
	savedYAML, err := yaml.Marshal(saved)
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", savedName, err)
	}

	currentInput, err := yamlInput(currentName, currentYAML)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", currentName, err)
	}
	savedInput, err := yamlInput(savedName, savedYAML)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", savedName, err)
	}

	report, err := dyff.CompareInputFiles(currentInput, savedInput)
	if err != nil {
		return "", fmt.Errorf("comparing builds: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderReport(report)
}

// yamlInput wraps serialized YAML as a dyff input.
func yamlInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

// renderReport writes the report in dyff's human format, trimmed of
// trailing whitespace.
func renderReport(report dyff.Report) (string, error) {
	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing diff report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
