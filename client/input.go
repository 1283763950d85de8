package client

import (
	"bufio"
	"context"
	"io"
)

// SubscribeToFileInput streams lines from r. lines is closed when r is
// exhausted, after which errChan yields the read error (nil on EOF).
func SubscribeToFileInput(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errChan <- nil
				return
			}
		}
		errChan <- scanner.Err()
	}()

	return lines, errChan
}
