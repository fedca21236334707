package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hoteldesk/internal/domains/booking/model"
)

// Prompter reads validated operator input line by line. Each Read method
// re-prompts until the input satisfies its predicate and never hands an
// invalid value to its caller; the only error any of them returns is io.EOF
// once the input source is exhausted.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *Prompter) ReadNonEmpty(prompt string) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}

		if line != "" {
			return line, nil
		}

		p.Println("Input cannot be blank. Please try again.")
	}
}

func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.Atoi(line)
		if convErr == nil {
			return value, nil
		}

		p.Println("Please enter a valid whole number.")
	}
}

// ReadEmail accepts anything containing both "@" and ".". The check is
// deliberately weak and stays that way.
func (p *Prompter) ReadEmail(prompt string) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}

		if line == "" {
			p.Println("Email cannot be blank.")
			continue
		}

		if !strings.Contains(line, "@") || !strings.Contains(line, ".") {
			p.Println("Please enter a valid-looking email (must contain '@' and '.').")
			continue
		}

		return line, nil
	}
}

// ReadOptional asks once; an empty answer means "no value".
func (p *Prompter) ReadOptional(prompt string) (string, error) {
	return p.readLine(prompt)
}

func (p *Prompter) ReadDate(prompt string) (time.Time, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return time.Time{}, err
		}

		parsed, parseErr := time.Parse(time.DateOnly, line)
		if parseErr == nil {
			return parsed, nil
		}

		p.Println("Invalid date format. Please use YYYY-MM-DD (e.g., 2025-11-10).")
	}
}

func (p *Prompter) ReadStatus(prompt string) (model.Status, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}

		if status, ok := model.ParseStatus(line); ok {
			return status, nil
		}

		p.Println("Invalid status. Please choose one of: Pending, Confirmed, Checked-In, Completed, Cancelled.")
	}
}

// Println and Printf route all operator-facing output through the prompter's
// writer so a scripted session captures the whole dialogue.
func (p *Prompter) Println(line string) {
	fmt.Fprintln(p.out, line)
}

func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
