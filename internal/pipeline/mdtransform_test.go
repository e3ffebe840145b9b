package pipeline

import (
	"context"
	"testing"
)

func TestLineNormalizer_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unix unchanged", input: "a\n\nb", want: "a\n\nb"},
		{name: "crlf", input: "a\r\n\r\nb", want: "a\n\nb"},
		{name: "bare cr", input: "a\rb", want: "a\nb"},
		{name: "blank line runs compressed", input: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "mixed", input: "# T\r\n\r\n\r\nx", want: "# T\n\nx"},
	}

	p := &LineNormalizer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineNormalizer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "a\r\nb"
	if got := (&LineNormalizer{}).PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("PreprocessMarkdown() = %q, want input unchanged on canceled context", got)
	}
}
