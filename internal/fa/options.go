package fa

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/stacks/arraystack"

	"automata/internal/postfix"
)

// Order is the discipline of the subset construction's work-list. It
// decides the numbering of DFA states, never the language accepted.
type Order int

const (
	LIFO Order = iota // most recently discovered subset first (default)
	FIFO              // breadth-first numbering
)

func (o Order) String() string {
	switch o {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder converts "lifo" or "fifo" (case-insensitive) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "lifo":
		return LIFO, nil
	case "fifo":
		return FIFO, nil
	}
	return LIFO, fmt.Errorf("unknown work-list order %q", s)
}

type config struct {
	order Order
	ops   postfix.Operators
}

// Option configures Compile and Determinize.
type Option func(*config)

// WithOrder selects the work-list discipline of Determinize.
func WithOrder(o Order) Option {
	return func(c *config) { c.order = o }
}

// WithOperators selects the operator spelling for Compile.
func WithOperators(ops postfix.Operators) Option {
	return func(c *config) { c.ops = ops }
}

func configure(opts []Option) config {
	c := config{order: LIFO, ops: postfix.DefaultOperators}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// worklist holds DFA state ids which are discovered but not yet processed.
type worklist interface {
	push(id int)
	pop() int
	empty() bool
}

func newWorklist(o Order) worklist {
	if o == FIFO {
		return &queue{list: arraylist.New()}
	}
	return &stack{stack: arraystack.New()}
}

type stack struct {
	stack *arraystack.Stack
}

func (s *stack) push(id int) { s.stack.Push(id) }
func (s *stack) empty() bool { return s.stack.Empty() }

func (s *stack) pop() int {
	v, _ := s.stack.Pop()
	return v.(int)
}

type queue struct {
	list *arraylist.List
}

func (q *queue) push(id int) { q.list.Add(id) }
func (q *queue) empty() bool { return q.list.Empty() }

func (q *queue) pop() int {
	v, _ := q.list.Get(0)
	q.list.Remove(0)
	return v.(int)
}
