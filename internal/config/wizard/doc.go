// Package wizard provides the interactive setup wizard for townsetup.
//
// The wizard asks a fixed sequence of questions through a [Prompter]:
// line-based prompts for piped or plain terminals, or charmbracelet/huh
// forms when stdin is a terminal. Answers are collected into a [Result]
// by RunWizard, and BuildPlan turns a Result into the environment pairs
// destined for the deployment env store and the lines destined for the
// local env file. BuildPlan performs no I/O.
package wizard
