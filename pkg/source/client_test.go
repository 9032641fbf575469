package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rosterctl/pkg/roster"
)

const sampleCSV = `IT413 Social and Professional Issues
Class Section,,BSIT-4D,,,
Subject Title,,Social and Professional Issues,,,
Faculty,,"HABAGAT, MARITES",,,
#,Student No,Full Name
,1.,,2022310039,"ABUTON, Harold Y",`

func TestClient_Fetch_Mock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "rosterctl/") {
			t.Errorf("unexpected user agent %q", ua)
		}
		switch r.URL.Path {
		case "/export.csv":
			w.Header().Set("Content-Type", "text/csv")
			w.Write([]byte(sampleCSV))
		case "/export.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(sampleHTML))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient()

	text, err := client.Fetch(context.Background(), server.URL+"/export.csv")
	if err != nil {
		t.Fatalf("unexpected error fetching csv: %v", err)
	}
	if text != sampleCSV {
		t.Errorf("expected body to be returned unchanged, got:\n%s", text)
	}

	text, err = client.Fetch(context.Background(), server.URL+"/export.html")
	if err != nil {
		t.Fatalf("unexpected error fetching html: %v", err)
	}
	if !strings.Contains(text, `Faculty,,"HABAGAT, MARITES"`) {
		t.Errorf("expected HTML to be flattened, got:\n%s", text)
	}

	if _, err := client.Fetch(context.Background(), server.URL+"/missing"); err == nil {
		t.Errorf("expected error for 404 response")
	}
}

func TestClient_Parse(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	path := filepath.Join(tempDir, "it413.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	client := NewClient()
	r, err := client.Parse(context.Background(), path, true)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if r.CourseCode != "IT413" || r.Section != "BSIT4D" {
		t.Errorf("unexpected roster: %+v", r)
	}

	// The second parse is served from the cache
	if _, ok := readCache(sampleCSV); !ok {
		t.Errorf("expected parse result to be cached")
	}
	cached, err := client.Parse(context.Background(), path, true)
	if err != nil || cached.CourseCode != "IT413" {
		t.Errorf("expected cached roster, got %+v (err %v)", cached, err)
	}
}

func TestClient_Parse_Unrecognized(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	path := filepath.Join(tempDir, "notes.txt")
	if err := os.WriteFile(path, []byte("just some notes"), 0644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	_, err := NewClient().Parse(context.Background(), path, false)
	if !errors.Is(err, roster.ErrUnrecognized) {
		t.Fatalf("expected ErrUnrecognized, got %v", err)
	}
}

func TestReadFile_Unsupported(t *testing.T) {
	_, err := ReadFile("roster.xlsx")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
