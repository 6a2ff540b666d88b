package exec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mako10k/ishell/internal/alias"
	"github.com/mako10k/ishell/internal/env"
	"github.com/mako10k/ishell/internal/parse"
	"github.com/mako10k/ishell/internal/vfs"
)

func newSession() *Session {
	return NewSession(vfs.NewState(), alias.NewTable(), env.NewTable())
}

type runResult struct {
	Success  bool
	Text     string
	ExitCode int
}

func run(t *testing.T, s *Session, line string) runResult {
	t.Helper()
	node, err := parse.Parse(line)
	require.NoError(t, err, "parse %q", line)
	out := s.Run(node)
	return runResult{Success: out.Success, Text: out.Output.Flatten(), ExitCode: out.ExitCode}
}

func TestSingleCommand(t *testing.T) {
	s := newSession()
	res := run(t, s, "echo hello")
	assert.True(t, res.Success)
	assert.Equal(t, "hello\n", res.Text)
}

func TestVariableSubstitutionBeforeDispatch(t *testing.T) {
	s := newSession()
	s.Env.Set("NAME", "world")
	res := run(t, s, "echo hello $NAME")
	assert.Equal(t, "hello world\n", res.Text)
}

func TestExitCodeSurfacesToEnv(t *testing.T) {
	s := newSession()
	run(t, s, "grep nomatch")
	val, _ := s.Env.Get(env.Exit)
	assert.Equal(t, "1", val, "grep's no-match exit code should surface to $?")
}

func TestChainAndShortCircuits(t *testing.T) {
	s := newSession()
	res := run(t, s, "mkdir sub && cd sub")
	require.True(t, res.Success)
	assert.Equal(t, "/home/user/sub", vfs.JoinPath(s.FS.CurrentPath))

	s2 := newSession()
	res = run(t, s2, "false_cmd && echo should-not-run")
	assert.False(t, res.Success)
	assert.NotContains(t, res.Text, "should-not-run", "&& should short-circuit after a failing command")
}

func TestOrOperatorRunsOnFailure(t *testing.T) {
	s := newSession()
	res := run(t, s, "false_cmd || echo fallback")
	require.True(t, res.Success)
	assert.Contains(t, res.Text, "fallback")
}

func TestSemicolonAlwaysRuns(t *testing.T) {
	s := newSession()
	res := run(t, s, "echo one; echo two")
	assert.Equal(t, "one\ntwo\n", res.Text)
}

func TestPipelineMaterializesStdin(t *testing.T) {
	s := newSession()
	res := run(t, s, "echo hello world | wc -w")
	require.True(t, res.Success)
	assert.Equal(t, "2", strings.TrimSpace(res.Text))
}

func TestPipelineAbortsOnFailure(t *testing.T) {
	s := newSession()
	res := run(t, s, "cat missing.txt | wc -l")
	assert.False(t, res.Success, "pipeline should abort when cat fails on a missing file")
}

func TestPipelineContinuesThroughGrepNoMatch(t *testing.T) {
	// grep reports Success=true with ExitCode=1 on no match (the POSIX
	// convention adopted by this shell), so a pipeline downstream of it
	// still runs rather than aborting.
	s := newSession()
	res := run(t, s, "grep nomatch | wc -l")
	require.True(t, res.Success)
	assert.Equal(t, "0", strings.TrimSpace(res.Text))
}

func TestOutputRedirectionOverwriteAndAppend(t *testing.T) {
	s := newSession()
	run(t, s, "echo one > out.txt")
	res := run(t, s, "cat out.txt")
	assert.Equal(t, "one\n", res.Text)

	run(t, s, "echo two >> out.txt")
	res = run(t, s, "cat out.txt")
	assert.Equal(t, "one\ntwo\n", res.Text)
}

func TestInputRedirectionFeedsStdin(t *testing.T) {
	s := newSession()
	run(t, s, "echo hello > in.txt")
	res := run(t, s, "wc -l < in.txt")
	assert.True(t, res.Success)
}

func TestInputRedirectionMissingFileFailsExitOne(t *testing.T) {
	s := newSession()
	res := run(t, s, "cat < missing.txt")
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.ExitCode)
}

func TestAliasExpansionWithOperatorsReenterParser(t *testing.T) {
	s := newSession()
	require.NoError(t, s.Aliases.Set("both", "echo first; echo second"))
	res := run(t, s, "both")
	assert.Equal(t, "first\nsecond\n", res.Text)
}

func TestAliasExpansionPreservesCallerRedirection(t *testing.T) {
	s := newSession()
	require.NoError(t, s.Aliases.Set("greet", "echo hi"))
	run(t, s, "greet > greeting.txt")
	res := run(t, s, "cat greeting.txt")
	assert.Equal(t, "hi\n", res.Text)
}

func TestSingleQuotedArgsAreLiteral(t *testing.T) {
	s := newSession()
	s.Env.Set("NAME", "world")
	res := run(t, s, `echo '$NAME' "$NAME"`)
	assert.Equal(t, "$NAME world\n", res.Text, "single quotes must suppress substitution; double quotes still substitute")
}

func TestAliasCycleBuriedAfterOperatorFailsInsteadOfRecursingForever(t *testing.T) {
	s := newSession()
	require.NoError(t, s.Aliases.Set("a", "echo hi && a"))
	res := run(t, s, "a")
	assert.False(t, res.Success)
	assert.Equal(t, 127, res.ExitCode, "a cycle buried after an operator must still be reported as command not found")
}
