package markdown

import "testing"

type noteMeta struct {
	Date    string `yaml:"date"`
	Feeling string `yaml:"feeling,omitempty"`
	Done    int    `yaml:"done"`
}

func TestRenderThenSplit(t *testing.T) {
	t.Parallel()
	rendered, err := Render(noteMeta{Date: "2026-05-01", Feeling: "Happy", Done: 3}, "\n\nbody text\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "---\ndate: \"2026-05-01\"\nfeeling: Happy\ndone: 3\n---\n\nbody text\n"
	if rendered != want {
		t.Fatalf("unexpected note\n got: %q\nwant: %q", rendered, want)
	}
	var meta noteMeta
	body, err := Split(rendered, &meta)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta.Date != "2026-05-01" || meta.Done != 3 || body != "\nbody text\n" {
		t.Fatalf("unexpected split %+v %q", meta, body)
	}
}

func TestSplitWithoutHeaderAndBrokenHeader(t *testing.T) {
	t.Parallel()
	var meta noteMeta
	body, err := Split("just text\n", &meta)
	if err != nil || body != "just text\n" || meta.Date != "" {
		t.Fatalf("unexpected result %q %+v %v", body, meta, err)
	}
	if _, err := Split("---\ndate: x\nno closing fence\n", &meta); err == nil {
		t.Fatalf("expected error for unclosed header")
	}
}

func TestBlockReplaceKeepsSurroundingText(t *testing.T) {
	t.Parallel()
	b := Block{Start: "<!-- start -->", End: "<!-- end -->"}

	created := b.Replace("", "- [ ] A")
	if created != "<!-- start -->\n- [ ] A\n<!-- end -->\n" {
		t.Fatalf("unexpected new block %q", created)
	}
	edited := "Parent note above\n\n" + created + "\nParent note below\n"
	updated := b.Replace(edited, "- [x] A\n")
	want := "Parent note above\n\n<!-- start -->\n- [x] A\n<!-- end -->\n\nParent note below\n"
	if updated != want {
		t.Fatalf("unexpected update\n got: %q\nwant: %q", updated, want)
	}
	inner, ok := b.Contents(updated)
	if !ok || inner != "- [x] A" {
		t.Fatalf("unexpected contents %q %v", inner, ok)
	}
	appended := b.Replace("no newline", "x")
	if appended != "no newline\n\n<!-- start -->\nx\n<!-- end -->\n" {
		t.Fatalf("unexpected append %q", appended)
	}
}
