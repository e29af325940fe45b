package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализация IO поверх stdin/stdout
type Stdio struct {
	in    *os.File
	out   io.Writer
	input *bufio.Reader
}

func NewStdio() IO {
	return NewStdioFrom(os.Stdin, os.Stdout)
}

// NewStdioFrom создает Stdio с заданными потоками.
// Один bufio.Reader на весь сеанс, чтобы не терять буферизованный ввод между вызовами.
func NewStdioFrom(in *os.File, out io.Writer) *Stdio {
	return &Stdio{
		in:    in,
		out:   out,
		input: bufio.NewReader(in),
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.input.ReadString('\n')
	if err != nil {
		// последняя строка без перевода строки
		if err == io.EOF && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает строку без эха. Если stdin не терминал (pipe, тесты),
// строка читается как обычный ввод.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
