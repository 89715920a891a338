package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// MenuChoice is a selectable menu entry.
type MenuChoice struct {
	// Location is the submenu path leading to the entry, e.g. "Hypergraph".
	Location string
	Label    string
	Action   string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForDirectory prompts the user for a directory path.
	// An empty answer falls back to defaultDir, which may itself be empty.
	PromptForDirectory(title, defaultDir string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectMenuItem prompts the user to select a menu entry from a list.
	PromptSelectMenuItem(choices []MenuChoice) (MenuChoice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompt creates a new Prompt instance reading stdin.
func NewPrompt() Prompter {
	return NewPromptWithIO(os.Stdin, os.Stdout)
}

// NewPromptWithIO creates a new Prompt instance over the given reader and writer.
func NewPromptWithIO(in io.Reader, out io.Writer) Prompter {
	return &realPrompt{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// readLine reads one line of input, trimmed. A final line without newline is accepted.
func (p *realPrompt) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	return strings.TrimSpace(input), nil
}

// PromptForDirectory prompts the user for a directory path.
func (p *realPrompt) PromptForDirectory(title, defaultDir string) (string, error) {
	if title == "" {
		title = "Choose a directory"
	}

	if defaultDir != "" {
		fmt.Fprintf(p.out, "%s (ex: ~/hypergraphs, ./graphs) [default: %s, '-' to cancel]: ", title, defaultDir)
	} else {
		fmt.Fprintf(p.out, "%s (ex: ~/hypergraphs, ./graphs) [empty to cancel]: ", title)
	}

	input, err := p.readLine()
	if err != nil {
		return "", err
	}

	// "-" always cancels, even when a default is offered
	if input == "-" {
		return "", nil
	}

	// Use default if input is empty
	if input == "" {
		return defaultDir, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}
	input = strings.ToLower(input)

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectMenuItem prompts the user to select a menu entry from a list.
func (p *realPrompt) PromptSelectMenuItem(choices []MenuChoice) (MenuChoice, error) {
	if len(choices) == 0 {
		return MenuChoice{}, ErrNoChoices
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectMenuItemBubbleTea(choices)
}
