package server

import (
	"collections/config"
	"collections/types"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/inconshreveable/log15"
)

type Server struct {
	registry *Registry
	queue    sqsiface.SQSAPI
	queueUrl string
	waitTime int64
	httpAddr string
	logFile  io.Writer
	ctx      context.Context
	Cancel   context.CancelFunc
	logger   log15.Logger
	logsMux  sync.Mutex
}

func NewServer(conf *config.Config) (*Server, error) {
	sess, err := conf.Aws.NewSession()
	if err != nil {
		return nil, err
	}

	var logFile io.Writer = os.Stdout
	if conf.LogFilePath != "" {
		f, err := os.OpenFile(conf.LogFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			return nil, err
		}
		logFile = f
	}

	return newServer(conf, sqs.New(sess), logFile), nil
}

func newServer(conf *config.Config, queue sqsiface.SQSAPI, logFile io.Writer) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		registry: NewRegistry(conf.Containers.ArrayCapacity),
		queue:    queue,
		queueUrl: conf.Aws.QueueUrl,
		waitTime: conf.ServerWaitTimeSeconds,
		httpAddr: conf.Http.Addr,
		logFile:  logFile,
		ctx:      ctx,
		Cancel:   cancel,
		logger:   conf.NewLogger("server"),
	}
}

func (s *Server) Registry() *Registry {
	return s.registry
}

// StartServer consumes the queue until Cancel is called or receiving
// fails. Messages are applied one at a time so commands on the same
// container keep their queue order.
func (s *Server) StartServer() error {
	s.logger.Debug("Listening queue!", "url", s.queueUrl)
	defer s.closeLogFile()
	errChan := make(chan error, 2)
	if s.httpAddr != "" {
		go func() {
			errChan <- s.serveHTTP()
		}()
	}

	messagesChan := make(chan *sqs.Message)
	go func() {
		errChan <- s.listenMessages(messagesChan)
	}()
	return s.processMessages(messagesChan, errChan)
}

func (s *Server) listenMessages(messagesChan chan<- *sqs.Message) error {
	for {
		msgResult, err := s.queue.ReceiveMessageWithContext(s.ctx, &sqs.ReceiveMessageInput{
			AttributeNames: []*string{
				aws.String(sqs.MessageSystemAttributeNameSentTimestamp),
			},
			MessageAttributeNames: []*string{
				aws.String(sqs.QueueAttributeNameAll),
			},
			QueueUrl:            &s.queueUrl,
			MaxNumberOfMessages: aws.Int64(10),
			WaitTimeSeconds:     aws.Int64(s.waitTime),
		})
		if s.ctx.Err() != nil {
			return nil
		}
		if err != nil {
			s.logger.Error("Error while receiving messages", "error", err.Error())
			return err
		}
		for _, message := range msgResult.Messages {
			select {
			case messagesChan <- message:
			case <-s.ctx.Done():
				return nil
			}
		}
	}
}

func (s *Server) processMessages(messagesChan <-chan *sqs.Message, errChan <-chan error) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		case err := <-errChan:
			if err != nil {
				s.Cancel()
				return err
			}
		case message := <-messagesChan:
			if message == nil {
				continue
			}
			if message.Body != nil {
				s.handleMessage(*message.Body)
			}
			_, err := s.queue.DeleteMessage(&sqs.DeleteMessageInput{
				QueueUrl:      &s.queueUrl,
				ReceiptHandle: message.ReceiptHandle,
			})
			if err != nil {
				s.logger.Error("Error while deleting message", "error", err)
				s.Cancel()
				return err
			}
		}
	}
}

func (s *Server) handleMessage(body string) {
	var cmd types.Command
	if err := json.Unmarshal([]byte(body), &cmd); err != nil {
		s.logger.Error("Cannot unmarshal message", "error", err.Error())
		return
	}
	res := s.Apply(cmd)
	if res.Failed() {
		s.logger.Warn("Command failed", "action", cmd.Action, "container", cmd.Container, "error", res.Error)
	} else {
		s.logger.Debug("Command applied", "action", cmd.Action, "container", cmd.Container)
	}
	s.writeLog(describe(res))
}

// Apply runs cmd against the registry and returns its outcome.
func (s *Server) Apply(cmd types.Command) types.Result {
	return s.registry.Apply(cmd)
}

func (s *Server) writeLog(line string) {
	s.logsMux.Lock()
	defer s.logsMux.Unlock()
	if _, err := fmt.Fprintf(s.logFile, "%s || %s\n", time.Now().Format(time.RFC822), line); err != nil {
		s.logger.Error("Cannot write log file", "error", err)
	}
}

// closeLogFile releases a log file opened by NewServer. Later writes
// are discarded.
func (s *Server) closeLogFile() {
	s.logsMux.Lock()
	defer s.logsMux.Unlock()
	if s.logFile == os.Stdout {
		return
	}
	if c, ok := s.logFile.(io.Closer); ok {
		if err := c.Close(); err != nil {
			s.logger.Error("Cannot close log file", "error", err)
		}
	}
	s.logFile = io.Discard
}

func describe(res types.Result) string {
	if res.Failed() {
		return fmt.Sprintf("%s() failed. Container(%s) error: %s", res.Action, res.Container, res.Error)
	}
	msg := fmt.Sprintf("%s() done. Container(%s)", res.Action, res.Container)
	if res.Value != "" {
		msg += fmt.Sprintf(" value: %s", res.Value)
	}
	if res.Found != nil {
		msg += fmt.Sprintf(" found: %t", *res.Found)
	}
	if res.Size != nil {
		msg += fmt.Sprintf(" size: %d", *res.Size)
	}
	if res.Values != nil {
		msg += fmt.Sprintf(" values: %v", res.Values)
	}
	return msg
}
