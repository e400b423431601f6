package authoring

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"movegraph/internal/domain/moveset"
	errs "movegraph/internal/errors"
)

const Disclaimer = "**BETA** Node properties are subject to change."

const (
	promptName     = "Move Name: "
	promptDistance = "(int 0-10) distance from opponent: "
	promptControl  = "(float 0-10) Control rating: "
	promptPath     = "Path: "
	promptParents  = "Enter parents. "
	promptChildren = "Enter children. "
	promptArea     = "Enter area. "
	promptType     = "Enter type. "
)

// Draft is one authored node. Area and Type keep the raw answers; the node
// carries them wrapped into single-element lists.
type Draft struct {
	Name string
	Node moveset.MoveNode
	Area string
	Type string
}

type Session struct {
	prompter *Prompter
	sentinel string
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		prompter: NewPrompter(in, out),
		sentinel: Sentinel,
	}
}

// Run asks for every field in order. A bad number ends the session with
// ErrInvalidInput; there is no re-prompt.
func (s *Session) Run() (*Draft, error) {
	if err := s.prompter.Println(Disclaimer); err != nil {
		return nil, err
	}

	name, err := s.ask(promptName)
	if err != nil {
		return nil, err
	}

	rawDistance, err := s.ask(promptDistance)
	if err != nil {
		return nil, err
	}
	distance, err := ParseDistance(rawDistance)
	if err != nil {
		return nil, err
	}

	rawControl, err := s.ask(promptControl)
	if err != nil {
		return nil, err
	}
	control, err := ParseControl(rawControl)
	if err != nil {
		return nil, err
	}

	path, err := s.ask(promptPath)
	if err != nil {
		return nil, err
	}

	parents, err := s.collect(promptParents)
	if err != nil {
		return nil, err
	}
	children, err := s.collect(promptChildren)
	if err != nil {
		return nil, err
	}

	area, err := s.ask(promptArea)
	if err != nil {
		return nil, err
	}
	moveType, err := s.ask(promptType)
	if err != nil {
		return nil, err
	}

	return &Draft{
		Name: name,
		Node: moveset.MoveNode{
			Distance: distance,
			Control:  control,
			Path:     path,
			Parents:  parents,
			Children: children,
			Area:     []string{area},
			Type:     []string{moveType},
			SubType:  moveset.SubTypePlaceholder,
		},
		Area: area,
		Type: moveType,
	}, nil
}

func (s *Session) ask(prompt string) (string, error) {
	line, err := s.prompter.Ask(prompt)
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: input ended at %q", errs.ErrInvalidInput, strings.TrimSpace(prompt))
	}
	return line, err
}

// collect runs one sentinel-terminated list. End of input closes the list
// as if the sentinel had been typed.
func (s *Session) collect(prompt string) ([]string, error) {
	if err := s.prompter.Println(prompt); err != nil {
		return nil, err
	}

	c := NewSentinelCollector(s.sentinel)
	for c.State() == Collecting {
		line, err := s.prompter.Ask(fmt.Sprintf("Press %s to quit. %s: %d. ", s.sentinel, prompt, c.Count()+1))
		if errors.Is(err, io.EOF) {
			c.Close()
			break
		}
		if err != nil {
			return nil, err
		}
		c.Feed(line)
	}
	return c.Result(), nil
}

// ParseDistance treats an empty answer as 0.
func ParseDistance(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: distance %q is not an integer", errs.ErrInvalidInput, raw)
	}
	return v, nil
}

// ParseControl treats an empty answer as 0.0. NaN and infinities are rejected.
func ParseControl(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: control %q is not a number", errs.ErrInvalidInput, raw)
	}
	return v, nil
}
