package source

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"
)

func TestPipeReadsLinesThenEOF(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	p, err := NewPipe(context.Background(), r)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	go func() {
		w.WriteString("I/Tag(1): one\n")
		w.WriteString("I/Tag(1): two\n")
		w.Close()
	}()

	line, err := p.ReadLine()
	if err != nil || line != "I/Tag(1): one\n" {
		t.Fatalf("first line: got %q, %v", line, err)
	}
	line, err = p.ReadLine()
	if err != nil || line != "I/Tag(1): two\n" {
		t.Fatalf("second line: got %q, %v", line, err)
	}

	if _, err = p.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after writer closed, got %v", err)
	}
}

func TestPipeCancelUnblocksRead(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	p, err := NewPipe(ctx, r)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	done := make(chan error, 1)
	go func() {
		_, err := p.ReadLine()
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, io.EOF) {
			t.Errorf("cancelled read should report io.EOF, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("read did not unblock after cancellation")
	}
}
