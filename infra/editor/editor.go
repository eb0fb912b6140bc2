package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/CrestNiraj12/terminalwager/domain"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does not run the editor: callers hand the *exec.Cmd to tea.ExecProcess so
// Bubble Tea suspends raw terminal mode around it.
type EnvEditor struct{}

func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const (
	instructionStart = "<!--"
	instructionEnd   = "-->"
)

func instructions(heading string) string {
	var b strings.Builder
	b.WriteString(instructionStart + "\n")
	b.WriteString("terminalwager: write your comment below.\n")
	if heading != "" {
		b.WriteString(heading + "\n")
	}
	b.WriteString("\n")
	b.WriteString("- SAVE and EXIT to post (e.g., :wq in vi).\n")
	b.WriteString("- An empty file cancels.\n")
	fmt.Fprintf(&b, "- Comments are limited to %d characters.\n", domain.MaxCommentLength)
	b.WriteString(instructionEnd + "\n\n")
	return b.String()
}

// Cmd writes content below an instruction block to a temp file and returns
// the editor command plus the file path. heading describes what is being
// answered, e.g. "Replying to @ada".
func (e *EnvEditor) Cmd(content, heading string) (*exec.Cmd, string, error) {
	args := strings.Fields(os.Getenv("EDITOR"))
	if len(args) == 0 {
		args = []string{"vi"}
	}

	tmpFile, err := os.CreateTemp("", "terminalwager-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(instructions(heading) + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	// vi-family editors open at the last line.
	switch filepath.Base(args[0]) {
	case "vi", "vim", "nvim":
		args = append(args, "+")
	}
	args = append(args, tmpPath)
	return exec.Command(args[0], args[1:]...), tmpPath, nil
}

// ReadContent reads the temp file, strips the instruction block, trims
// whitespace and removes the file.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if strings.HasPrefix(strings.TrimSpace(content), instructionStart) {
		if idx := strings.Index(content, instructionEnd); idx != -1 {
			content = content[idx+len(instructionEnd):]
		}
	}
	return strings.TrimSpace(content), nil
}
