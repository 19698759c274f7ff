package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitown/townsetup/internal/config/wizard"
)

// recordingRunner records every invocation and fails on the configured call.
type recordingRunner struct {
	calls  [][]string
	failAt int // 1-based; 0 never fails
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.failAt > 0 && len(r.calls) == r.failAt {
		return errors.New("exit status 1")
	}
	return nil
}

func TestInstallDependencies(t *testing.T) {
	r := &recordingRunner{}

	require.NoError(t, InstallDependencies(context.Background(), r, "pnpm"))
	assert.Equal(t, [][]string{{"pnpm", "install"}}, r.calls)
}

func TestInstallDependencies_Failure(t *testing.T) {
	r := &recordingRunner{failAt: 1}

	err := InstallDependencies(context.Background(), r, "npm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "installing dependencies")
}

func TestSetEnv(t *testing.T) {
	r := &recordingRunner{}

	require.NoError(t, SetEnv(context.Background(), r, "OPENAI_API_KEY", `sk-"quoted" $(x)`))
	assert.Equal(t, [][]string{{"npx", "convex", "env", "set", "OPENAI_API_KEY", `sk-"quoted" $(x)`}}, r.calls)
}

func TestApplyEnv_SkipsEmptyValues(t *testing.T) {
	r := &recordingRunner{}

	applied, err := ApplyEnv(context.Background(), r, []wizard.EnvPair{
		{Key: "OPENAI_API_KEY", Value: ""},
		{Key: "OPENAI_CHAT_MODEL", Value: "gpt-4o"},
		{Key: "REPLICATE_API_TOKEN", Value: ""},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, applied)
	assert.Equal(t, [][]string{{"npx", "convex", "env", "set", "OPENAI_CHAT_MODEL", "gpt-4o"}}, r.calls)
}

func TestApplyEnv_AllEmpty(t *testing.T) {
	r := &recordingRunner{}

	applied, err := ApplyEnv(context.Background(), r, []wizard.EnvPair{{Key: "A"}, {Key: "B"}})
	require.NoError(t, err)

	assert.Zero(t, applied)
	assert.Empty(t, r.calls)
}

func TestApplyEnv_StopsAtFirstFailure(t *testing.T) {
	r := &recordingRunner{failAt: 2}

	applied, err := ApplyEnv(context.Background(), r, []wizard.EnvPair{
		{Key: "LLM_API_URL", Value: "http://x"},
		{Key: "LLM_MODEL", Value: "m1"},
		{Key: "LLM_EMBEDDING_MODEL", Value: "m2"},
	})
	require.Error(t, err)

	assert.Equal(t, 1, applied)
	assert.Len(t, r.calls, 2, "no invocation after the failing one")
	assert.Contains(t, err.Error(), "setting LLM_MODEL")
}
