package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMarker(t *testing.T, dir, content string) {
	t.Helper()
	custom := filepath.Join(dir, "custom")
	if err := os.MkdirAll(custom, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(custom, "current_theme.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInferThemeFrom(t *testing.T) {
	tests := []struct {
		name   string
		marker string // empty string means "no marker file"
		write  bool
		want   string
	}{
		{
			name: "missing marker falls back to default",
			want: "default",
		},
		{
			name:   "plain name",
			marker: "onedork",
			write:  true,
			want:   "onedork",
		},
		{
			name:   "trailing newline is trimmed",
			marker: "monokai\n",
			write:  true,
			want:   "monokai",
		},
		{
			name:   "trailing spaces are trimmed",
			marker: "chesterish  \n",
			write:  true,
			want:   "chesterish",
		},
		{
			name:   "only first line counts",
			marker: "grade3\nleftover\n",
			write:  true,
			want:   "grade3",
		},
		{
			name:   "empty marker behaves like missing",
			marker: "",
			write:  true,
			want:   "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.write {
				writeMarker(t, dir, tt.marker)
			}

			got, err := InferThemeFrom(dir)
			if err != nil {
				t.Fatalf("InferThemeFrom unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("InferThemeFrom = %q, want %q", got, tt.want)
			}
		})
	}
}
