package prompt

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kars1996/create-kapp/internal/terminal"
)

// Kind selects the validation and normalization rules of a prompt.
type Kind int

const (
	// Input accepts free-form text, optionally checked by a Validator.
	Input Kind = iota
	// Confirm accepts only "y" or "n", case-insensitively.
	Confirm
)

const (
	invalidInputMsg  = "× Invalid input. Try again."
	invalidAnswerMsg = "× Please answer with 'y' or 'n'."
)

// Validator reports whether a trimmed answer is acceptable.
type Validator func(answer string) bool

// NotEmpty rejects blank answers.
func NotEmpty(answer string) bool { return answer != "" }

// Spec describes a single prompt invocation.
type Spec struct {
	Kind     Kind
	Question string
	// Validate is only consulted for Input prompts. Nil accepts anything.
	Validate Validator
	// NoEcho suppresses the confirmation line printed after acceptance.
	NoEcho bool
}

// Engine reads answers from an input stream and renders through Output.
// It is not safe for concurrent use.
type Engine struct {
	in      *bufio.Reader
	out     terminal.Output
	palette *terminal.Palette
}

// New creates an Engine reading from r.
func New(r io.Reader, out terminal.Output, palette *terminal.Palette) *Engine {
	return &Engine{
		in:      bufio.NewReader(r),
		out:     out,
		palette: palette,
	}
}

// ReadLine renders text as a question, reads one line, and erases the
// submitted line. The returned answer is trimmed. An error is returned only
// when the input stream fails or ends before a line is available.
func (e *Engine) ReadLine(text string) (string, error) {
	e.out.Print(e.palette.Info("? ") + e.palette.Primary(text) + " ")

	line, err := e.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.Wrap(io.ErrUnexpectedEOF, "reading answer")
		}
		return "", errors.Wrap(err, "reading answer")
	}

	e.out.EraseLine()
	return strings.TrimSpace(line), nil
}

// Ask runs the prompt described by s until an answer is accepted. Rejected
// answers print an inline error and the question is asked again; there is
// no retry limit. Confirm answers are normalized to "y" or "n".
func (e *Engine) Ask(s Spec) (string, error) {
	text := s.Question
	if s.Kind == Confirm {
		text = s.Question + " " + e.palette.Muted("(y/n)")
	}

	for {
		answer, err := e.ReadLine(text)
		if err != nil {
			return "", err
		}

		var ok bool
		var rejection string
		switch s.Kind {
		case Confirm:
			answer = strings.ToLower(answer)
			ok = answer == "y" || answer == "n"
			rejection = invalidAnswerMsg
		default:
			ok = accepts(s.Validate, answer)
			rejection = invalidInputMsg
		}

		if !ok {
			e.out.Print(e.palette.Error(rejection) + " ")
			continue
		}

		if !s.NoEcho {
			e.out.Println(e.finalLine(s.Question, answer))
		}
		return answer, nil
	}
}

// Input asks a free-form question and echoes the accepted answer.
func (e *Engine) Input(question string, validate Validator) (string, error) {
	return e.Ask(Spec{Kind: Input, Question: question, Validate: validate})
}

// Confirm asks a yes/no question and reports whether the answer was "y".
func (e *Engine) Confirm(question string) (bool, error) {
	answer, err := e.Ask(Spec{Kind: Confirm, Question: question})
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

func (e *Engine) finalLine(question, answer string) string {
	return e.palette.Success("√") + " " + e.palette.Primary(question) + " " +
		e.palette.Muted("»") + " " + e.palette.Primary(answer)
}

// accepts runs v, treating a panicking validator as a rejection.
func accepts(v Validator, answer string) (ok bool) {
	if v == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return v(answer)
}
