package guide

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reponavigator/packages/config"
	"reponavigator/types"
)

type fakeLLM struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) Name() string { return "fake" }
func (f *fakeLLM) Close() error { return nil }

func (f *fakeLLM) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func guideConfig() config.GuideConfig {
	return config.Default().Guide
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "日本", Truncate("日本語", 2))
	assert.Equal(t, "日本語", Truncate("日本語", 3))
}

func TestTruncate_NeverExceedsLimit(t *testing.T) {
	inputs := []string{
		strings.Repeat("a", 50000),
		strings.Repeat("é", 9000),
		strings.Repeat("🙂x", 7000),
	}
	for _, in := range inputs {
		for _, max := range []int{1, 100, 8000, 12000} {
			out := Truncate(in, max)
			assert.LessOrEqual(t, utf8.RuneCountInString(out), max)
			assert.True(t, strings.HasPrefix(in, out))
			assert.True(t, utf8.ValidString(out))
		}
	}
}

func TestGenerateGuide_TruncatesReadme(t *testing.T) {
	llm := &fakeLLM{reply: "guide"}
	gen := NewGenerator(llm, guideConfig())

	readme := strings.Repeat("r", 8000) + "TAIL"
	out, err := gen.GenerateGuide(context.Background(), readme, []string{"README.md"})
	require.NoError(t, err)
	assert.Equal(t, "guide", out)

	prompt := llm.lastPrompt()
	assert.Contains(t, prompt, strings.Repeat("r", 8000))
	assert.NotContains(t, prompt, "TAIL")
	assert.Equal(t, 8000, strings.Count(prompt, "r")-strings.Count(BuildTourPrompt("", "README.md"), "r"))
}

func TestGenerateGuide_Placeholder(t *testing.T) {
	llm := &fakeLLM{reply: "guide"}
	gen := NewGenerator(llm, guideConfig())
	placeholder := guideConfig().EmptyFilesPlaceholder

	_, err := gen.GenerateGuide(context.Background(), "# Hello", nil)
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt(), "Important Files:\n"+placeholder+"\n")

	_, err = gen.GenerateGuide(context.Background(), "# Hello", []string{"README.md", "src/main.py"})
	require.NoError(t, err)
	assert.NotContains(t, llm.lastPrompt(), placeholder)
	assert.Contains(t, llm.lastPrompt(), "Important Files:\nREADME.md\nsrc/main.py\n")
}

func TestGenerateGuide_CapsFileListing(t *testing.T) {
	cfg := guideConfig()
	cfg.ImportantFilesMaxChars = 20
	llm := &fakeLLM{reply: "guide"}
	gen := NewGenerator(llm, cfg)

	files := []string{"aaaaaaaaaa/README.md", "bbbbbbbbbb/README.md"}
	_, err := gen.GenerateGuide(context.Background(), "x", files)
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt(), "Important Files:\naaaaaaaaaa/README.md\n")
	assert.NotContains(t, llm.lastPrompt(), "bbbbbbbbbb")
}

func TestGenerateGuide_PromptSections(t *testing.T) {
	llm := &fakeLLM{reply: "guide"}
	gen := NewGenerator(llm, guideConfig())

	_, err := gen.GenerateGuide(context.Background(), "# Hello\nWorld", []string{"README.md"})
	require.NoError(t, err)

	prompt := llm.lastPrompt()
	for _, want := range []string{
		"Explain what the project does",
		"Describe how the codebase is organized",
		"Identify important files and their roles",
		"Suggest a logical onboarding path",
		"README:\n# Hello\nWorld\n",
	} {
		assert.Contains(t, prompt, want)
	}
	assert.Equal(t, prompt, gen.TourPrompt("# Hello\nWorld", []string{"README.md"}))
}

func TestGenerateGuide_Failure(t *testing.T) {
	cause := errors.New("deadline exceeded")
	gen := NewGenerator(&fakeLLM{err: cause, reply: "partial"}, guideConfig())

	out, err := gen.GenerateGuide(context.Background(), "r", nil)
	assert.Empty(t, out)
	assert.True(t, errors.Is(err, types.ErrGenerationFailed))
	assert.True(t, errors.Is(err, cause))
}

func TestSummarize_UsesSummaryLimit(t *testing.T) {
	llm := &fakeLLM{reply: "summary"}
	gen := NewGenerator(llm, guideConfig())

	readme := strings.Repeat("s", 12000) + "TAIL"
	out, err := gen.Summarize(context.Background(), readme)
	require.NoError(t, err)
	assert.Equal(t, "summary", out)
	assert.Contains(t, llm.lastPrompt(), strings.Repeat("s", 12000))
	assert.NotContains(t, llm.lastPrompt(), "TAIL")
	assert.Contains(t, llm.lastPrompt(), "Mention intended users or use cases")
}

func TestSplit(t *testing.T) {
	guide := "# Guide\nIntro\n```go\nfunc main() {}\n```\nMiddle text\n```\npip install x\n```"
	assert.Equal(t, []Segment{
		{Text: "# Guide\nIntro"},
		{Code: true, Language: "go", Text: "func main() {}"},
		{Text: "Middle text"},
		{Code: true, Text: "pip install x"},
	}, Split(guide))
}

func TestSplit_Edges(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Equal(t, []Segment{{Text: "plain"}}, Split("plain"))
	assert.Equal(t, []Segment{{Code: true, Text: "x = 1"}}, Split("```x = 1```"))
	assert.Equal(t, []Segment{{Text: "before ```after"}}, Split("before ```after"))
	assert.Equal(t, []Segment{
		{Text: "a"},
		{Code: true, Text: "b"},
		{Text: "c ```d"},
	}, Split("a```b```c ```d"))
	assert.Equal(t, []Segment{{Code: true, Text: "python main.py --flag"}}, Split("```\npython main.py --flag\n```"))
}
