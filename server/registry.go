package server

import (
	"collections/types"
	"errors"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var (
	ErrUnknownContainer  = errors.New("unknown container")
	ErrContainerExists   = errors.New("container already exists")
	ErrUnsupportedAction = errors.New("unsupported action")
	ErrInvalidKind       = errors.New("invalid container kind")
)

type namedContainer struct {
	kind types.Kind
	c    containers.Container
}

type ContainerInfo struct {
	Name   string     `json:"name"`
	Kind   types.Kind `json:"kind"`
	Size   int        `json:"size"`
	Render string     `json:"render,omitempty"`
}

// Registry holds the named containers the service operates on, in
// creation order. The containers themselves are not safe for concurrent
// use, so every access goes through mu.
type Registry struct {
	mu            sync.Mutex
	data          *types.OrderedMap[string, *namedContainer]
	arrayCapacity int
}

func NewRegistry(arrayCapacity int) *Registry {
	return &Registry{
		data:          types.NewOrderedMap[string, *namedContainer](),
		arrayCapacity: arrayCapacity,
	}
}

func (r *Registry) List() []ContainerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]ContainerInfo, 0, r.data.Len())
	for _, name := range r.data.Keys() {
		nc, _ := r.data.Get(name)
		infos = append(infos, ContainerInfo{Name: name, Kind: nc.kind, Size: nc.c.Size()})
	}
	return infos
}

func (r *Registry) Info(name string) (ContainerInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nc, ok := r.data.Get(name)
	if !ok {
		return ContainerInfo{}, false
	}
	return ContainerInfo{Name: name, Kind: nc.kind, Size: nc.c.Size(), Render: nc.c.String()}, true
}

func (r *Registry) Apply(cmd types.Command) types.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := types.Result{Action: cmd.Action, Container: cmd.Container}
	if err := r.apply(cmd, &res); err != nil {
		res.Error = err.Error()
	}
	return res
}

func (r *Registry) apply(cmd types.Command, res *types.Result) error {
	switch cmd.Action {
	case types.Create:
		return r.create(cmd.Container, cmd.Kind)
	case types.Drop:
		if !r.data.Delete(cmd.Container) {
			return fmt.Errorf("%w: %q", ErrUnknownContainer, cmd.Container)
		}
		return nil
	case types.ListContainers:
		res.Values = r.data.Keys()
		return nil
	}

	nc, ok := r.data.Get(cmd.Container)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownContainer, cmd.Container)
	}

	switch cmd.Action {
	case types.Size:
		res.Size = intPtr(nc.c.Size())
		return nil
	case types.Render:
		res.Value = nc.c.String()
		return nil
	case types.Sorted:
		res.Values = toStrings(containers.GetSortedValues(nc.c, utils.StringComparator))
		return nil
	}

	var err error
	switch c := nc.c.(type) {
	case *types.Array[string]:
		err = applyArray(c, cmd, res)
	case *types.List[string]:
		err = applyList(c, cmd, res)
	case *types.Stack[string]:
		err = applyStack(c, cmd, res)
	case *types.Queue[string]:
		err = applyQueue(c, cmd, res)
	case *types.Set:
		err = applySet(c, cmd, res)
	case *types.PriorityQueue[string]:
		err = applyPriorityQueue(c, cmd, res)
	case *types.HashTable[string, string]:
		err = applyHashTable(c, cmd, res)
	}
	if err != nil {
		return err
	}
	res.Size = intPtr(nc.c.Size())
	return nil
}

func (r *Registry) create(name string, kind types.Kind) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownContainer)
	}
	if _, ok := r.data.Get(name); ok {
		return fmt.Errorf("%w: %q", ErrContainerExists, name)
	}

	var c containers.Container
	switch kind {
	case types.KindArray:
		c = types.NewArray[string](r.arrayCapacity)
	case types.KindList:
		c = types.NewList[string]()
	case types.KindStack:
		c = types.NewStack[string]()
	case types.KindQueue:
		c = types.NewQueue[string]()
	case types.KindSet:
		c = types.NewSet()
	case types.KindPriorityQueue:
		c = types.NewPriorityQueue[string](utils.StringComparator)
	case types.KindHashTable:
		c = types.NewHashTable[string, string](0, 0, nil)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	r.data.Set(name, &namedContainer{kind: kind, c: c})
	return nil
}

func applyArray(a *types.Array[string], cmd types.Command, res *types.Result) (err error) {
	switch cmd.Action {
	case types.Append:
		a.Append(cmd.Value)
	case types.InsertAt:
		err = a.InsertAt(cmd.Index, cmd.Value)
	case types.Get:
		res.Value, err = a.Get(cmd.Index)
	case types.RemoveAt:
		res.Value, err = a.RemoveAt(cmd.Index)
	case types.Contains:
		res.Found = boolPtr(a.Contains(cmd.Value))
	default:
		err = unsupported(cmd.Action, types.KindArray)
	}
	return err
}

func applyList(l *types.List[string], cmd types.Command, res *types.Result) (err error) {
	switch cmd.Action {
	case types.InsertFront:
		l.InsertFront(cmd.Value)
	case types.InsertBack, types.Append:
		l.InsertBack(cmd.Value)
	case types.InsertAt:
		err = l.InsertAt(cmd.Value, cmd.Index)
	case types.Get:
		res.Value, err = l.Get(cmd.Index)
	case types.RemoveAt:
		res.Value, err = l.RemoveAt(cmd.Index)
	case types.RemoveFront:
		res.Value, err = l.RemoveFront()
	case types.RemoveBack:
		res.Value, err = l.RemoveBack()
	case types.Remove:
		res.Found = boolPtr(l.Remove(cmd.Value))
	case types.Contains:
		res.Found = boolPtr(l.Has(cmd.Value))
	default:
		err = unsupported(cmd.Action, types.KindList)
	}
	return err
}

func applyStack(s *types.Stack[string], cmd types.Command, res *types.Result) (err error) {
	switch cmd.Action {
	case types.Push:
		s.Push(cmd.Value)
	case types.Pop:
		res.Value, err = s.Pop()
	case types.Peek:
		res.Value, err = s.Peek()
	default:
		err = unsupported(cmd.Action, types.KindStack)
	}
	return err
}

func applyQueue(q *types.Queue[string], cmd types.Command, res *types.Result) (err error) {
	switch cmd.Action {
	case types.Enqueue:
		q.Enqueue(cmd.Value)
	case types.Dequeue:
		res.Value, err = q.Dequeue()
	case types.Peek:
		res.Value, err = q.Peek()
	default:
		err = unsupported(cmd.Action, types.KindQueue)
	}
	return err
}

func applySet(s *types.Set, cmd types.Command, res *types.Result) (err error) {
	switch cmd.Action {
	case types.Add:
		res.Found = boolPtr(!s.Add(cmd.Value))
	case types.Remove:
		res.Found = boolPtr(s.Remove(cmd.Value))
	case types.Contains:
		res.Found = boolPtr(s.Has(cmd.Value))
	default:
		err = unsupported(cmd.Action, types.KindSet)
	}
	return err
}

func applyPriorityQueue(pq *types.PriorityQueue[string], cmd types.Command, res *types.Result) (err error) {
	switch cmd.Action {
	case types.Add, types.Enqueue:
		pq.Add(cmd.Value)
	case types.Poll, types.Dequeue:
		res.Value, err = pq.Poll()
	case types.Peek:
		res.Value, err = pq.Peek()
	case types.Remove:
		res.Found = boolPtr(pq.Remove(cmd.Value))
	case types.Contains:
		res.Found = boolPtr(pq.Contains(cmd.Value))
	default:
		err = unsupported(cmd.Action, types.KindPriorityQueue)
	}
	return err
}

// applyHashTable addresses entries by cmd.Key. Found reports whether the
// key was present before the command ran.
func applyHashTable(h *types.HashTable[string, string], cmd types.Command, res *types.Result) (err error) {
	var found bool
	switch cmd.Action {
	case types.Put:
		res.Value, found = h.Put(cmd.Key, cmd.Value)
	case types.Get:
		res.Value, found = h.Get(cmd.Key)
	case types.Remove:
		res.Value, found = h.Remove(cmd.Key)
	case types.Contains:
		found = h.ContainsKey(cmd.Key)
	case types.Keys:
		res.Values = h.Keys()
		return nil
	default:
		return unsupported(cmd.Action, types.KindHashTable)
	}
	res.Found = boolPtr(found)
	return nil
}

func unsupported(action types.Action, kind types.Kind) error {
	return fmt.Errorf("%w: %s on %s", ErrUnsupportedAction, action, kind)
}

func toStrings(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
