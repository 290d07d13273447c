package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter asks interactive questions for init. Invalid answers are
// explained and asked again until the input runs out.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the question and returns the trimmed answer. last is true when
// the input ended with this answer.
func (p *prompter) ask(label, hint string) (answer string, last bool, err error) {
	if hint != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", true, err
	}
	return strings.TrimSpace(line), err != nil, nil
}

// retry reports why an answer was rejected, or fails when no more answers
// can follow.
func (p *prompter) retry(label, answer, reason string, last bool) error {
	if last {
		return fmt.Errorf("%s: %q %s", strings.ToLower(label), answer, reason)
	}
	fmt.Fprintf(p.out, "%q %s.\n", answer, reason)
	return nil
}

// text asks for free text; an empty answer takes fallback when set.
func (p *prompter) text(label, fallback string) (string, error) {
	for {
		answer, last, err := p.ask(label, fallback)
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = fallback
		}
		if answer != "" {
			return answer, nil
		}
		if last {
			return "", fmt.Errorf("missing input for %s", strings.ToLower(label))
		}
	}
}

// confirm asks a yes/no question.
func (p *prompter) confirm(label string, fallback bool) (bool, error) {
	hint := "y/N"
	if fallback {
		hint = "Y/n"
	}
	for {
		answer, last, err := p.ask(label, hint)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return fallback, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err := p.retry(label, answer, "is not yes or no", last); err != nil {
			return false, err
		}
	}
}

// number asks for an integer in [lo, hi].
func (p *prompter) number(label string, fallback, lo, hi int) (int, error) {
	for {
		answer, last, err := p.ask(fmt.Sprintf("%s (%d-%d)", label, lo, hi), strconv.Itoa(fallback))
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return fallback, nil
		}
		value, convErr := strconv.Atoi(answer)
		reason := ""
		switch {
		case convErr != nil:
			reason = "is not a whole number"
		case value < lo || value > hi:
			reason = fmt.Sprintf("is outside %d-%d", lo, hi)
		default:
			return value, nil
		}
		if err := p.retry(label, answer, reason, last); err != nil {
			return 0, err
		}
	}
}

// choice asks for one of options, matched case-insensitively.
func (p *prompter) choice(label string, options []string, fallback string) (string, error) {
	for {
		answer, last, err := p.ask(fmt.Sprintf("%s (%s)", label, strings.Join(options, "|")), fallback)
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = fallback
		}
		for _, option := range options {
			if strings.EqualFold(answer, option) {
				return option, nil
			}
		}
		if err := p.retry(label, answer, "is not one of "+strings.Join(options, ", "), last); err != nil {
			return "", err
		}
	}
}
