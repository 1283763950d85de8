package client

import (
	"collections/config"
	"collections/types"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
)

const defaultMessageGroup = "collections"

type Client struct {
	queue    sqsiface.SQSAPI
	queueUrl string
}

func NewClient(conf *config.Config) (*Client, error) {
	sess, err := conf.Aws.NewSession()
	if err != nil {
		return nil, err
	}

	return &Client{
		queue:    sqs.New(sess),
		queueUrl: conf.Aws.QueueUrl,
	}, nil
}

// SendMessage publishes cmd. Commands on one container share a message
// group so a FIFO queue delivers them in order.
func (c *Client) SendMessage(cmd *types.Command) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	req, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	group := cmd.Container
	if group == "" {
		group = defaultMessageGroup
	}
	_, err = c.queue.SendMessage(&sqs.SendMessageInput{
		DelaySeconds:           aws.Int64(0),
		MessageBody:            aws.String(string(req)),
		QueueUrl:               &c.queueUrl,
		MessageGroupId:         aws.String(group),
		MessageDeduplicationId: aws.String(id.String()),
	})
	return err
}

func (c *Client) Create(name string, kind types.Kind) error {
	return c.SendMessage(&types.Command{Action: types.Create, Container: name, Kind: kind})
}

func (c *Client) Drop(name string) error {
	return c.SendMessage(&types.Command{Action: types.Drop, Container: name})
}

func (c *Client) Do(action types.Action, name, value string) error {
	return c.SendMessage(&types.Command{Action: action, Container: name, Value: value})
}

func (c *Client) DoAt(action types.Action, name, value string, index int) error {
	return c.SendMessage(&types.Command{Action: action, Container: name, Value: value, Index: index})
}

type ClientsManager struct {
	clients   map[string]*ClientUsage
	input     io.Reader
	clientCfg *config.Config
	newClient func(*config.Config) (*Client, error)
	idleAfter time.Duration
	logger    log15.Logger
	mux       sync.Mutex
	ctx       context.Context
	Cancel    context.CancelFunc
}

type ClientUsage struct {
	client   *Client
	lastUsed time.Time
}

func NewClientsManager(cfg *config.Config) (manager *ClientsManager, err error) {
	var input io.Reader = os.Stdin
	if len(cfg.ClientsInputPath) != 0 {
		input, err = os.Open(cfg.ClientsInputPath)
		if err != nil {
			return nil, err
		}
	}
	return newClientsManager(cfg, input, NewClient), nil
}

func newClientsManager(cfg *config.Config, input io.Reader, newClient func(*config.Config) (*Client, error)) *ClientsManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &ClientsManager{
		clients:   make(map[string]*ClientUsage),
		input:     input,
		clientCfg: cfg,
		newClient: newClient,
		idleAfter: 10 * time.Second,
		logger:    cfg.NewLogger("client"),
		ctx:       ctx,
		Cancel:    cancel,
	}
}

// ListenClientActions reads "<clientId> <command json>" lines until the
// input ends, Cancel is called or reading fails.
func (cm *ClientsManager) ListenClientActions() error {
	if cm.input == os.Stdin {
		fmt.Println("Write clients tasks here in format <clientId> <command>")
	}

	defer cm.closeInput()

	ticker := time.NewTicker(cm.idleAfter)
	defer ticker.Stop()

	lines, errChan := SubscribeToFileInput(cm.ctx, cm.input)

	for {
		select {
		case <-cm.ctx.Done():
			return nil
		case <-ticker.C:
			cm.removeUnusedClients()
		case line, ok := <-lines:
			if !ok {
				return <-errChan
			}
			if len(line) == 0 {
				continue
			}
			if err := cm.processClientAction(line); err != nil {
				cm.logger.Error("Cannot process client action", "input", line, "error", err)
			}
		}
	}
}

// closeInput releases an input file opened by NewClientsManager.
func (cm *ClientsManager) closeInput() {
	if cm.input == os.Stdin {
		return
	}
	if c, ok := cm.input.(io.Closer); ok {
		if err := c.Close(); err != nil {
			cm.logger.Error("Cannot close clients input", "error", err)
		}
	}
}

func (cm *ClientsManager) removeUnusedClients() {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	for clientId, clientUsage := range cm.clients {
		if time.Since(clientUsage.lastUsed) > cm.idleAfter {
			delete(cm.clients, clientId)
			cm.logger.Debug("Removed idle client", "client", clientId)
		}
	}
}

func (cm *ClientsManager) processClientAction(inputStr string) error {
	clientId, cmd, err := ParseClientAction(inputStr)
	if err != nil {
		return err
	}

	cm.mux.Lock()
	defer cm.mux.Unlock()
	usage, ok := cm.clients[clientId]
	if !ok {
		client, err := cm.newClient(cm.clientCfg)
		if err != nil {
			return err
		}
		usage = &ClientUsage{client: client}
		cm.clients[clientId] = usage
	}
	usage.lastUsed = time.Now()
	return usage.client.SendMessage(cmd)
}

// ParseClientAction splits "<clientId> <command json>".
func ParseClientAction(inputStr string) (string, *types.Command, error) {
	clientId, itemStr, found := strings.Cut(strings.TrimSpace(inputStr), " ")
	if !found || clientId == "" {
		return "", nil, fmt.Errorf("Wrong input string. Should be in format <clientId> <command>")
	}

	var cmd *types.Command
	if err := json.Unmarshal([]byte(itemStr), &cmd); err != nil {
		return "", nil, err
	}
	if cmd == nil || cmd.Action == "" {
		return "", nil, fmt.Errorf("command without action")
	}
	if cmd.Action == types.Create && !cmd.Kind.Valid() {
		return "", nil, fmt.Errorf("unknown container kind %q", cmd.Kind)
	}
	return clientId, cmd, nil
}
