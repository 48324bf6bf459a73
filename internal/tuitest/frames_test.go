package tuitest

import (
	"bytes"
	"testing"
)

func TestPlainTextStripsEscapes(t *testing.T) {
	in := "\x1b]0;title\x07\x1b[1;32mYour Generated Email\x1b[0m   \r\n\x1b[2Kbody\n\n  \n"
	if got, want := PlainText(in), "Your Generated Email\nbody"; got != want {
		t.Fatalf("plain text mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSplitFramesAtClearScreen(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst\x1b[2J\x1b[H\x1b[2J\x1b[Hsecond frame")
	frames := splitFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %#v", len(frames), frames)
	}
	if frames[0].Plain != "first" || frames[1].Plain != "second frame" {
		t.Fatalf("unexpected frames: %#v", frames)
	}
	if frames[1].Index != 1 {
		t.Fatalf("frame index not sequential: %d", frames[1].Index)
	}
}

func TestSplitFramesWithoutClearScreen(t *testing.T) {
	frames := splitFrames([]byte("\x1b[1Aonly line\x1b[K"))
	if len(frames) != 1 || frames[0].Plain != "only line" {
		t.Fatalf("unexpected frames: %#v", frames)
	}
}

func TestRecordingLookups(t *testing.T) {
	rec := &Recording{
		Raw:    []byte("Generate Email\x1b[2J\x1b[HDear Hiring Manager"),
		Frames: []Frame{{Index: 0, Plain: "Generate Email"}, {Index: 1, Plain: "Dear Hiring Manager"}},
	}
	if !rec.Contains("Generate Email") || rec.Contains("missing") {
		t.Fatal("Contains mismatch")
	}
	frame, ok := rec.LastFrameContaining("Generate")
	if !ok || frame.Index != 0 {
		t.Fatalf("unexpected frame: %#v %v", frame, ok)
	}
	if _, ok := rec.LastFrameContaining("missing"); ok {
		t.Fatal("no frame should match missing text")
	}
	var empty *Recording
	if _, ok := empty.LastFrameContaining("Generate"); ok {
		t.Fatal("nil recording should have no frames")
	}
}

func TestResponderAnswersProbes(t *testing.T) {
	var out bytes.Buffer
	r := newTerminalResponder(&out)
	r.Observe([]byte("draw\x1b]11;"))
	if out.Len() != 0 {
		t.Fatalf("partial probe answered: %q", out.String())
	}
	r.Observe([]byte("?\x07more\x1b[6n"))
	want := "\x1b]11;rgb:0000/0000/0000\x07\x1b[1;1R"
	if out.String() != want {
		t.Fatalf("replies mismatch:\n got %q\nwant %q", out.String(), want)
	}
}
