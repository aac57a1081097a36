// Package console is the line-oriented prompt/response channel with the user
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const (
	Yes = "yes"
	No  = "no"
)

// YesNo valid answers for yes/no questions
var YesNo = []string{Yes, No}

type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConsole returns a console that reads answers from in and writes messages to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Send writes message as is
func (c *Console) Send(message string) error {
	_, err := io.WriteString(c.writer, message)
	return err
}

// Sendf formats and writes a message
func (c *Console) Sendf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.writer, format, args...)
	return err
}

// Listen blocks until the user enters a line and returns it without the line break.
// io.EOF is returned when the input is closed and nothing else was typed.
func (c *Console) Listen() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask sends the question and waits for the answer
func (c *Console) Ask(question string) (string, error) {
	if err := c.Send(question); err != nil {
		return "", err
	}
	return c.Listen()
}

// AskUntilValid asks the question until the answer is one of validAnswers. retryMessage is sent instead of
// the question after an invalid answer; if it is empty the question is repeated. The answer is returned normalized.
func (c *Console) AskUntilValid(question string, retryMessage string, validAnswers []string) (string, error) {
	message := question
	for {
		answer, err := c.Ask(message)
		if err != nil {
			return "", err
		}

		if utils.ContainsString(answer, validAnswers) {
			return utils.Normalize(answer), nil
		}

		log.Debugf("[method: AskUntilValid] %s", fmt.Errorf("answer %q: %w", answer, dataErrors.ErrInvalidSelection))
		if retryMessage != "" {
			message = retryMessage
		}
	}
}

// AskYesNo asks a yes/no question until the answer is valid. It returns true on yes.
func (c *Console) AskYesNo(question string, retryMessage string) (bool, error) {
	answer, err := c.AskUntilValid(question, retryMessage, YesNo)
	if err != nil {
		return false, err
	}
	return answer == Yes, nil
}
