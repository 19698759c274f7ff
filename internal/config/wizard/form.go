package wizard

import (
	"context"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks each question as a single-field huh form.
type FormPrompter struct {
	closed bool
}

// NewFormPrompter returns a prompter backed by charmbracelet/huh.
func NewFormPrompter() *FormPrompter {
	return &FormPrompter{}
}

// Ask runs a one-field form for q.
func (p *FormPrompter) Ask(ctx context.Context, q Question) (string, error) {
	if p.closed {
		return "", ErrPrompterClosed
	}

	switch {
	case q.Confirm:
		return runConfirm(ctx, q)
	case len(q.Options) > 0:
		return runSelect(ctx, q)
	default:
		return runInput(ctx, q)
	}
}

// Close marks the prompter as finished.
func (p *FormPrompter) Close() error {
	p.closed = true
	return nil
}

// runConfirm asks a yes/no question and answers "y" or "n".
func runConfirm(ctx context.Context, q Question) (string, error) {
	value := isAffirmative(q.Default)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(q.Title).
				Description(q.Description).
				Value(&value),
		),
	).RunWithContext(ctx)
	if err != nil {
		return "", err
	}

	if value {
		return "y", nil
	}
	return "n", nil
}

// runSelect asks the user to pick one of q.Options.
func runSelect(ctx context.Context, q Question) (string, error) {
	value := q.Default

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.Title).
				Description(q.Description).
				Options(huh.NewOptions(q.Options...)...).
				Value(&value),
		),
	).RunWithContext(ctx)
	if err != nil {
		return "", err
	}

	return resolve(value, q.Default), nil
}

// runInput asks for free text.
func runInput(ctx context.Context, q Question) (string, error) {
	var value string

	placeholder := q.Hint
	if placeholder == "" {
		placeholder = q.Default
	}

	input := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Placeholder(placeholder).
		Value(&value)
	if q.Secret {
		input = input.EchoMode(huh.EchoModePassword)
	}

	if err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx); err != nil {
		return "", err
	}

	return resolve(value, q.Default), nil
}
