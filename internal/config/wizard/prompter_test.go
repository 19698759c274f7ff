package wizard

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_Ask(t *testing.T) {
	t.Run("trims the answer", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("  openai  \n"), &out)

		answer, err := p.Ask(context.Background(), Question{Title: "Provider", Default: "ollama"})
		require.NoError(t, err)
		assert.Equal(t, "openai", answer)
	})

	t.Run("empty answer yields default", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("\n"), &out)

		answer, err := p.Ask(context.Background(), Question{Title: "URL", Default: "http://127.0.0.1:3210"})
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:3210", answer)
	})

	t.Run("whitespace answer yields default", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader(" \t \n"), &out)

		answer, err := p.Ask(context.Background(), Question{Title: "Provider", Default: "ollama"})
		require.NoError(t, err)
		assert.Equal(t, "ollama", answer)
	})

	t.Run("end of input yields default", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader(""), &out)

		answer, err := p.Ask(context.Background(), Question{Title: "Confirm", Default: "n", Confirm: true})
		require.NoError(t, err)
		assert.Equal(t, "n", answer)
	})

	t.Run("last line without newline", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("yes"), &out)

		answer, err := p.Ask(context.Background(), Question{Title: "Confirm", Default: "n", Confirm: true})
		require.NoError(t, err)
		assert.Equal(t, "yes", answer)
	})

	t.Run("no default yields empty", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("\n"), &out)

		answer, err := p.Ask(context.Background(), Question{Title: "OPENAI_API_KEY"})
		require.NoError(t, err)
		assert.Empty(t, answer)
	})

	t.Run("writes the prompt", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("\n"), &out)

		_, err := p.Ask(context.Background(), Question{Title: "LLM_MODEL"})
		require.NoError(t, err)
		assert.Equal(t, "LLM_MODEL: ", out.String())
	})
}

func TestLinePrompter_Close(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("a\nb\n"), &out)

	_, err := p.Ask(context.Background(), Question{Title: "first"})
	require.NoError(t, err)

	require.NoError(t, p.Close())

	_, err = p.Ask(context.Background(), Question{Title: "second"})
	assert.ErrorIs(t, err, ErrPrompterClosed)
}

func TestLinePrompter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("a\n"), &out)

	_, err := p.Ask(ctx, Question{Title: "first"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestLinePrompter_CancelWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	p := NewLinePrompter(pr, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := p.Ask(ctx, Question{Title: "Choose LLM provider", Default: "ollama"})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask did not return after the context was canceled")
	}
}

func TestLinePrompter_ReadAfterCancelKeepsLine(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	p := NewLinePrompter(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Start a read that outlives its context
	_, err := p.readLine(ctx)
	require.ErrorIs(t, err, context.Canceled)

	go func() { _, _ = pw.Write([]byte("openai\n")) }()

	answer, err := p.Ask(context.Background(), Question{Title: "Choose LLM provider", Default: "ollama"})
	require.NoError(t, err)
	assert.Equal(t, "openai", answer)
}

func TestFormPrompter_Closed(t *testing.T) {
	p := NewFormPrompter()
	require.NoError(t, p.Close())

	_, err := p.Ask(context.Background(), Question{Title: "anything"})
	assert.ErrorIs(t, err, ErrPrompterClosed)
}

func TestQuestion_Prompt(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{
			name: "plain",
			q:    Question{Title: "CLERK_SECRET_KEY"},
			want: "CLERK_SECRET_KEY: ",
		},
		{
			name: "confirm default yes",
			q:    Question{Title: `Run "npm install"?`, Default: "y", Confirm: true},
			want: `Run "npm install"? [Y/n]: `,
		},
		{
			name: "confirm default no",
			q:    Question{Title: "Configure Clerk auth?", Default: "n", Confirm: true},
			want: "Configure Clerk auth? [y/N]: ",
		},
		{
			name: "options with default",
			q:    Question{Title: "Choose LLM provider", Options: []string{"ollama", "openai"}, Default: "ollama"},
			want: "Choose LLM provider [ollama/openai] (ollama): ",
		},
		{
			name: "hint",
			q:    Question{Title: "OLLAMA_HOST", Hint: "http://127.0.0.1:11434"},
			want: "OLLAMA_HOST (http://127.0.0.1:11434): ",
		},
		{
			name: "default",
			q:    Question{Title: "CONVEX_SELF_HOSTED_URL", Default: "http://127.0.0.1:3210"},
			want: "CONVEX_SELF_HOSTED_URL (http://127.0.0.1:3210): ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.prompt())
		})
	}
}

func TestIsAffirmative(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", "YES", " Yes "} {
		assert.True(t, isAffirmative(s), s)
	}
	for _, s := range []string{"", "n", "no", "yep", "true", "1"} {
		assert.False(t, isAffirmative(s), s)
	}
}
