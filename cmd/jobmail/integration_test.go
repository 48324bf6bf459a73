package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/csheth/jobmail/internal/tuitest"
)

const postingURL = "https://jobs.example.com/backend-engineer"

func TestJobmailGeneratesEmail(t *testing.T) {
	t.Parallel()

	received := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		received <- body.URL
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "Dear Hiring Manager, I am applying."})
	}))
	defer srv.Close()

	rec := runJobmail(t, srv.URL, []tuitest.Step{
		{WaitFor: "Generate Email", Input: tuitest.KeyEnter},
		{WaitFor: "Your Generated Email"},
		{Delay: 200 * time.Millisecond, Input: tuitest.KeyCtrlC},
	})

	select {
	case got := <-received:
		if got != postingURL {
			t.Fatalf("service received %q, want %q", got, postingURL)
		}
	default:
		t.Fatal("service was never called")
	}
	frame, ok := rec.LastFrameContaining("Dear Hiring Manager, I am applying.")
	if !ok {
		t.Fatalf("email never rendered:\n%s", tuitest.PlainText(string(rec.Raw)))
	}
	if strings.Contains(frame.Plain, "Error generating email") {
		t.Fatalf("success frame shows a failure:\n%s", frame.Plain)
	}
}

func TestJobmailShowsServiceDetail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"Could not read that job posting"}`))
	}))
	defer srv.Close()

	rec := runJobmail(t, srv.URL, []tuitest.Step{
		{WaitFor: "Generate Email", Input: tuitest.KeyEnter},
		{WaitFor: "Error generating email"},
		{Delay: 200 * time.Millisecond, Input: tuitest.KeyCtrlC},
	})

	if !rec.Contains("Could not read that job posting") {
		t.Fatalf("service detail never rendered:\n%s", tuitest.PlainText(string(rec.Raw)))
	}
	if rec.Contains("Your Generated Email") {
		t.Fatal("failed request must not render an email")
	}
}

func runJobmail(t *testing.T, endpoint string, steps []tuitest.Step) *tuitest.Recording {
	t.Helper()
	binary := buildBinary(t, moduleDir(t))
	workDir := t.TempDir()
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{
			binary,
			"-no-alt-screen",
			"-endpoint", endpoint,
			"-url", postingURL,
			"-log-file", filepath.Join(workDir, "jobmail.log"),
		},
		Dir:            workDir,
		Width:          100,
		Height:         40,
		Steps:          steps,
		Timeout:        15 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	return rec
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "jobmail-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
