package types

type Action string

const (
	Create         Action = "Create"
	Drop           Action = "Drop"
	ListContainers Action = "ListContainers"

	Append      Action = "Append"
	InsertFront Action = "InsertFront"
	InsertBack  Action = "InsertBack"
	InsertAt    Action = "InsertAt"
	Get         Action = "Get"
	RemoveAt    Action = "RemoveAt"
	RemoveFront Action = "RemoveFront"
	RemoveBack  Action = "RemoveBack"
	Contains    Action = "Contains"

	Push    Action = "Push"
	Pop     Action = "Pop"
	Peek    Action = "Peek"
	Enqueue Action = "Enqueue"
	Dequeue Action = "Dequeue"
	Add     Action = "Add"
	Remove  Action = "Remove"
	Poll    Action = "Poll"
	Put     Action = "Put"
	Keys    Action = "Keys"

	Size   Action = "Size"
	Render Action = "Render"
	Sorted Action = "Sorted"
)

type Kind string

const (
	KindArray Kind = "array"
	KindList  Kind = "list"
	KindStack Kind = "stack"
	KindQueue Kind = "queue"
	KindSet   Kind = "set"

	KindPriorityQueue Kind = "priorityqueue"
	KindHashTable     Kind = "hashtable"
)

func (k Kind) Valid() bool {
	switch k {
	case KindArray, KindList, KindStack, KindQueue, KindSet, KindPriorityQueue, KindHashTable:
		return true
	}
	return false
}

// Command is one operation on a named container, as carried in a queue
// message body.
type Command struct {
	Action    Action `json:"action"`
	Container string `json:"container,omitempty"`
	Kind      Kind   `json:"kind,omitempty"`
	Key       string `json:"key,omitempty"`
	Value     string `json:"value,omitempty"`
	Index     int    `json:"index,omitempty"`
}

// Result is the outcome of applying a Command.
type Result struct {
	Action    Action   `json:"action"`
	Container string   `json:"container,omitempty"`
	Value     string   `json:"value,omitempty"`
	Found     *bool    `json:"found,omitempty"`
	Size      *int     `json:"size,omitempty"`
	Values    []string `json:"values,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func (r Result) Failed() bool {
	return r.Error != ""
}
