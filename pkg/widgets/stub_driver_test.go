package widgets

import (
	"context"
	"errors"

	"github.com/goliatone/go-formbind/pkg/prompt"
)

// stubDriver scripts prompt responses so widget flows run without a
// terminal. Position counters advance per call; scripted errors replace the
// response at the same position.
type stubDriver struct {
	inputs    []string
	inputErrs []error
	multi     [][]string
	multiErrs []error

	inputCfgs []prompt.InputConfig
	multiCfgs []prompt.MultiSelectConfig
	infoLines []string

	inputPos int
	multiPos int
}

func (s *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	pos := s.inputPos
	s.inputPos++
	if pos < len(s.inputErrs) && s.inputErrs[pos] != nil {
		return "", s.inputErrs[pos]
	}
	if pos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	return s.inputs[pos], nil
}

func (s *stubDriver) Confirm(_ context.Context, _ prompt.ConfirmConfig) (bool, error) {
	return false, errors.New("no confirm scripted")
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg prompt.MultiSelectConfig) ([]string, error) {
	s.multiCfgs = append(s.multiCfgs, cfg)
	pos := s.multiPos
	s.multiPos++
	if pos < len(s.multiErrs) && s.multiErrs[pos] != nil {
		return nil, s.multiErrs[pos]
	}
	if pos >= len(s.multi) {
		return nil, errors.New("no multiselect scripted")
	}
	return s.multi[pos], nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoLines = append(s.infoLines, msg)
	return nil
}
