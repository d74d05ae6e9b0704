package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vibepad/internal/adapters/driven/filewatch"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/renderer/html"
	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/services"
	"github.com/custodia-labs/vibepad/internal/normalisers/markdown"
)

type stubFormatter struct {
	out string
	err error
}

func (f *stubFormatter) Format(_ context.Context, _ string, _ domain.FormatOptions) (string, error) {
	return f.out, f.err
}

type stubRenderer struct{}

func (stubRenderer) Render(md string) (string, error) {
	return "term:" + md, nil
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMDClean(t *testing.T) {
	installServices(t)

	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "stdin",
			stdin:    "Title\n=====\nbody   ",
			args:     []string{"md", "clean"},
			expected: "# Title\nbody\n",
		},
		{
			name:     "dash reads stdin",
			stdin:    "Sub\n---\n",
			args:     []string{"md", "clean", "-"},
			expected: "## Sub\n",
		},
		{
			name:     "empty input prints nothing",
			stdin:    "   \n\n",
			args:     []string{"md", "clean"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestMDClean_File(t *testing.T) {
	installServices(t)
	path := writeTemp(t, "notes.md", "Notes\n=====\n")

	out, err := execute(t, "", "md", "clean", path)

	require.NoError(t, err)
	assert.Equal(t, "# Notes\n", out)
}

func TestMDClean_MissingFile(t *testing.T) {
	installServices(t)

	_, err := execute(t, "", "md", "clean", filepath.Join(t.TempDir(), "missing.md"))

	assert.Error(t, err)
}

func TestMDFmt_FallbackWarns(t *testing.T) {
	installServices(t)

	out, err := execute(t, "Title\n=====\n", "md", "fmt")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "# Title")
}

func TestMDFmt_Write(t *testing.T) {
	ts := installServices(t)
	SetServices(&Services{
		Markdown: services.NewMarkdownService(markdown.New(), &stubFormatter{out: "# Formatted\n"}, nil),
		Settings: ts.settings,
	})
	path := writeTemp(t, "doc.md", "Formatted\n=========\n")

	out, err := execute(t, "", "md", "fmt", "--write", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Formatted "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Formatted\n", string(data))
}

func TestMDFmt_Errors(t *testing.T) {
	installServices(t)

	t.Run("write needs a file", func(t *testing.T) {
		_, err := execute(t, "x", "md", "fmt", "--write")
		assert.True(t, errors.Is(err, errWriteStdin))
	})

	t.Run("invalid prose wrap", func(t *testing.T) {
		_, err := execute(t, "x", "md", "fmt", "--prose-wrap", "sometimes")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMDRender(t *testing.T) {
	ts := installServices(t)
	ts.markdown.SetRenderer(domain.RenderHTML, html.New())
	ts.markdown.SetRenderer(domain.RenderTerminal, stubRenderer{})

	t.Run("html by default", func(t *testing.T) {
		out, err := execute(t, "# Hi", "md", "render")
		require.NoError(t, err)
		assert.Contains(t, out, `<h1 id="hi">Hi</h1>`)
	})

	t.Run("terminal", func(t *testing.T) {
		out, err := execute(t, "# Hi", "md", "render", "--term")
		require.NoError(t, err)
		assert.Equal(t, "term:# Hi\n", out)
	})

	t.Run("standalone page uses settings css", func(t *testing.T) {
		opts := ts.settings.Get()
		opts.CSS = "body { color: red; }"
		require.NoError(t, ts.settings.Save(opts))

		out, err := execute(t, "# Hi", "md", "render", "--standalone")
		require.NoError(t, err)
		assert.Contains(t, out, "<title>vibepad</title>")
		assert.Contains(t, out, "color: red")
	})

	t.Run("html and term are exclusive", func(t *testing.T) {
		_, err := execute(t, "# Hi", "md", "render", "--html", "--term")
		assert.Error(t, err)
	})
}

func TestMDPaste(t *testing.T) {
	ts := installServices(t)
	require.NoError(t, ts.clipboard.Write("Title\n=====\n\n\n\nbody"))

	out, err := execute(t, "", "md", "paste", "--no-format")

	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody\n", out)
	text, err := ts.clipboard.Read()
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody", text)
}

func TestMDPaste_NoClipboard(t *testing.T) {
	ts := installServices(t)
	SetServices(&Services{Markdown: ts.markdown})

	_, err := execute(t, "", "md", "paste")

	assert.EqualError(t, err, "clipboard service not configured")
}

func TestMDImport(t *testing.T) {
	ts := installServices(t)
	path := writeTemp(t, "readme.md", "Readme\n======\n")

	out, err := execute(t, "", "md", "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported readme.md")
	content, err := ts.workspace.Load(context.Background(), domain.EditorMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "# Readme", content)
}

func TestMD_NotConfigured(t *testing.T) {
	SetServices(nil)

	for _, sub := range []string{"clean", "fmt", "render", "paste"} {
		t.Run(sub, func(t *testing.T) {
			_, err := execute(t, "x", "md", sub)
			assert.EqualError(t, err, "markdown service not configured")
		})
	}
}

func TestFileCleaner_Clean(t *testing.T) {
	installServices(t)
	path := writeTemp(t, "watch.md", "Head\n====\ntext   \n")
	cleaner := &fileCleaner{}

	require.NoError(t, cleaner.Clean(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Head\ntext\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, cleaner.Clean(path))
	again, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime())
}

func TestFileCleaner_SkipsOwnWrite(t *testing.T) {
	installServices(t)
	path := writeTemp(t, "rules.md", "a\n---\n---\n")
	cleaner := &fileCleaner{}

	require.NoError(t, cleaner.Clean(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## a\n---\n", string(data))

	// The event for the cleaner's own write must not start a second pass.
	require.NoError(t, cleaner.Clean(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## a\n---\n", string(data))

	// A later edit is cleaned again.
	require.NoError(t, os.WriteFile(path, []byte("b\n===\n"), 0o600))
	require.NoError(t, cleaner.Clean(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# b\n", string(data))
}

func TestFileCleaner_Watch(t *testing.T) {
	installServices(t)
	path := writeTemp(t, "live.md", "")
	cleaner := &fileCleaner{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- filewatch.Watch(ctx, path, cleaner.Clean)
	}()

	read := func() string {
		data, err := os.ReadFile(path)
		if err != nil {
			return ""
		}
		return string(data)
	}

	// Writes are retried until the watcher has been registered.
	require.Eventually(t, func() bool {
		if read() != "## a\n---\n" {
			_ = os.WriteFile(path, []byte("a\n---\n---\n"), 0o600)
		}
		return read() == "## a\n---\n"
	}, 5*time.Second, 100*time.Millisecond)

	assert.Never(t, func() bool {
		return read() != "## a\n---\n"
	}, 500*time.Millisecond, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWriteFile_KeepsMode(t *testing.T) {
	path := writeTemp(t, "keep.md", "old")
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, writeFile(path, "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}
