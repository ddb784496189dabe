package dictionary

import (
	"context"
	"reflect"
	"testing"
)

func TestFileSource_ReadsAllTextFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_negative.txt", "# негатив\nужасный\n\n  катастрофа  \n")
	writeFile(t, dir, "a_positive.txt", "сенсация\r\nшок\n")
	writeFile(t, dir, "notes.md", "игнорировать")

	got, err := NewFileSource(dir).Words(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"сенсация", "шок", "ужасный", "катастрофа"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestFileSource_EmptyDir(t *testing.T) {
	if _, err := NewFileSource(t.TempDir()).Words(context.Background()); err == nil {
		t.Fatal("expected error for directory without dictionaries")
	}
}

func TestFileSource_MissingDir(t *testing.T) {
	if _, err := NewFileSource("/nonexistent/charged_dict").Words(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
