package server

import (
	"bytes"
	"collections/config"
	"collections/types"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
)

type fakeQueue struct {
	sqsiface.SQSAPI

	mu         sync.Mutex
	pending    []*sqs.Message
	deleted    []string
	receiveErr error
}

func (q *fakeQueue) ReceiveMessageWithContext(ctx aws.Context, _ *sqs.ReceiveMessageInput, _ ...request.Option) (*sqs.ReceiveMessageOutput, error) {
	q.mu.Lock()
	msgs := q.pending
	q.pending = nil
	err := q.receiveErr
	q.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if len(msgs) > 0 {
		return &sqs.ReceiveMessageOutput{Messages: msgs}, nil
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (q *fakeQueue) DeleteMessage(in *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.deleted = append(q.deleted, *in.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func (q *fakeQueue) deletedCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.deleted)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	conf, err := config.ParseConfig([]byte("logLevel: crit\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	return conf
}

func message(handle, body string) *sqs.Message {
	return &sqs.Message{ReceiptHandle: aws.String(handle), Body: aws.String(body)}
}

func TestServerAppliesMessagesInOrder(t *testing.T) {
	q := &fakeQueue{pending: []*sqs.Message{
		message("1", `{"action":"Create","container":"s","kind":"stack"}`),
		message("2", `{"action":"Push","container":"s","value":"a"}`),
		message("3", `{"action":"Push","container":"s","value":"b"}`),
		message("4", `{"action":"Pop","container":"s"}`),
		message("5", `{`),
		message("6", `{"action":"Pop","container":"missing"}`),
	}}
	var logs bytes.Buffer
	s := newServer(testConfig(t), q, &logs)

	done := make(chan error, 1)
	go func() {
		done <- s.StartServer()
	}()

	deadline := time.Now().Add(3 * time.Second)
	for q.deletedCount() < 6 {
		if time.Now().After(deadline) {
			t.Fatalf("deleted %d messages, want 6", q.deletedCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
	s.Cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("StartServer returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server shutdown timeout")
	}

	info, ok := s.Registry().Info("s")
	if !ok {
		t.Fatal("stack s was not created")
	}
	if info.Render != "[a]" {
		t.Fatalf("stack contents = %q, want [a]", info.Render)
	}

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("log has %d lines, want 5:\n%s", len(lines), logs.String())
	}
	if !strings.HasSuffix(lines[3], "Pop() done. Container(s) value: b size: 1") {
		t.Fatalf("unexpected Pop log line: %q", lines[3])
	}
	if !strings.Contains(lines[4], "Pop() failed. Container(missing)") {
		t.Fatalf("unexpected failure log line: %q", lines[4])
	}
}

func TestServerStopsOnReceiveError(t *testing.T) {
	receiveErr := errors.New("queue unavailable")
	q := &fakeQueue{receiveErr: receiveErr}
	s := newServer(testConfig(t), q, &bytes.Buffer{})

	done := make(chan error, 1)
	go func() {
		done <- s.StartServer()
	}()

	select {
	case err := <-done:
		if !errors.Is(err, receiveErr) {
			t.Fatalf("StartServer returned %v, want %v", err, receiveErr)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop on receive error")
	}
}

type logFile struct {
	bytes.Buffer
	closed bool
}

func (f *logFile) Close() error {
	f.closed = true
	return nil
}

func TestServerClosesLogFile(t *testing.T) {
	q := &fakeQueue{receiveErr: errors.New("queue unavailable")}
	f := &logFile{}
	s := newServer(testConfig(t), q, f)

	if err := s.StartServer(); err == nil {
		t.Fatal("StartServer should fail on receive error")
	}
	if !f.closed {
		t.Fatal("log file should be closed when StartServer returns")
	}

	s.writeLog("after close")
	if f.Len() != 0 {
		t.Fatalf("write after close reached the file: %q", f.String())
	}
}

func TestDescribe(t *testing.T) {
	size := 2
	found := true
	got := describe(types.Result{Action: types.Contains, Container: "l", Found: &found, Size: &size})
	if got != "Contains() done. Container(l) found: true size: 2" {
		t.Fatalf("describe = %q", got)
	}
}
