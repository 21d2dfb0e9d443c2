package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, _ := io.ReadAll(rc)
		rc.Close()
		out[f.Name] = string(b)
	}
	return out
}

func TestPackage(t *testing.T) {
	svc := NewService()
	data, contentType, err := svc.Package([]Entry{
		{Name: "translated_sign.jpg", Data: []byte("one")},
		{Name: "translated_menu.jpg", Data: []byte("two")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "application/zip" {
		t.Errorf("content type = %q", contentType)
	}

	files := readZip(t, data)
	if len(files) != 2 || files["translated_sign.jpg"] != "one" || files["translated_menu.jpg"] != "two" {
		t.Errorf("files = %v", files)
	}
}

func TestPackageDuplicateNames(t *testing.T) {
	data, _, err := NewService().Package([]Entry{
		{Name: "translated_a.jpg", Data: []byte("first")},
		{Name: "translated_a.jpg", Data: []byte("second")},
		{Name: "translated_a.jpg", Data: []byte("third")},
		{Name: "translated_a_1.jpg", Data: []byte("other")},
	})
	if err != nil {
		t.Fatal(err)
	}

	files := readZip(t, data)
	want := map[string]string{
		"translated_a.jpg":     "first",
		"translated_a_1.jpg":   "second",
		"translated_a_2.jpg":   "third",
		"translated_a_1_1.jpg": "other",
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v", files)
	}
	for name, data := range want {
		if files[name] != data {
			t.Errorf("%s = %q, want %q", name, files[name], data)
		}
	}
}

func TestPackageEmpty(t *testing.T) {
	data, _, err := NewService().Package(nil)
	if err != nil {
		t.Fatal(err)
	}
	if files := readZip(t, data); len(files) != 0 {
		t.Errorf("files = %v", files)
	}
}

func TestFilename(t *testing.T) {
	if got := NewService().Filename("translated_images"); got != "translated_images.zip" {
		t.Errorf("Filename = %q", got)
	}
}
