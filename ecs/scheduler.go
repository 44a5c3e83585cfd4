package ecs

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/milk9111/topdown/ecs/component"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateSystem       = errors.New("ecs: duplicate system name")
	ErrUnknownDependency     = errors.New("ecs: unknown system dependency")
	ErrDependencyCycle       = errors.New("ecs: system dependency cycle")
	ErrResourceWriteConflict = errors.New("ecs: unordered systems write the same resource")
	ErrNilSystem             = errors.New("ecs: nil system")
)

type System interface {
	Update(w *World)
}

// Access lists the component and resource kinds a system touches. A system
// that does not implement AccessDeclarer is treated as writing everything,
// resources included.
type Access struct {
	Reads  []component.ComponentID
	Writes []component.ComponentID
}

type AccessDeclarer interface {
	Access() Access
}

// SystemNode registers a system under a unique name, running after every
// system named in After.
type SystemNode struct {
	Name   string
	System System
	After  []string
}

type scheduled struct {
	name      string
	system    System
	after     []int
	reads     map[component.ComponentID]struct{}
	writes    map[component.ComponentID]struct{}
	exclusive bool
}

// Scheduler runs every registered system exactly once per Tick, in an order
// consistent with the declared dependencies. Systems are grouped into stages
// by dependency depth; each stage is split into batches whose access sets do
// not conflict. Batches run one after another, systems inside a batch run
// concurrently when parallel execution is enabled.
type Scheduler struct {
	nodes    []*scheduled
	stages   [][][]*scheduled
	parallel bool
	limit    int
}

// NewScheduler validates the dependency graph and prepares the execution
// plan. All configuration errors surface here, before any tick runs.
func NewScheduler(nodes ...SystemNode) (*Scheduler, error) {
	byName := make(map[string]int, len(nodes))
	s := &Scheduler{limit: runtime.GOMAXPROCS(0)}
	for i, n := range nodes {
		if n.System == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilSystem, n.Name)
		}
		if _, dup := byName[n.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSystem, n.Name)
		}
		byName[n.Name] = i
		s.nodes = append(s.nodes, newScheduled(n))
	}
	for i, n := range nodes {
		for _, dep := range n.After {
			j, ok := byName[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %q runs after %q", ErrUnknownDependency, n.Name, dep)
			}
			s.nodes[i].after = append(s.nodes[i].after, j)
		}
	}

	depth, err := s.depths()
	if err != nil {
		return nil, err
	}
	if err := s.checkResourceWriters(); err != nil {
		return nil, err
	}
	s.plan(depth)
	return s, nil
}

func newScheduled(n SystemNode) *scheduled {
	sc := &scheduled{
		name:   n.Name,
		system: n.System,
		reads:  map[component.ComponentID]struct{}{},
		writes: map[component.ComponentID]struct{}{},
	}
	decl, ok := n.System.(AccessDeclarer)
	if !ok {
		sc.exclusive = true
		return sc
	}
	access := decl.Access()
	for _, id := range access.Reads {
		sc.reads[id] = struct{}{}
	}
	for _, id := range access.Writes {
		sc.writes[id] = struct{}{}
	}
	return sc
}

// WithParallel toggles concurrent execution inside batches.
func (s *Scheduler) WithParallel(parallel bool) *Scheduler {
	s.parallel = parallel
	return s
}

// Tick executes each registered system exactly once.
func (s *Scheduler) Tick(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, stage := range s.stages {
		for _, batch := range stage {
			if !s.parallel || len(batch) == 1 {
				for _, n := range batch {
					n.system.Update(w)
				}
				continue
			}
			var g errgroup.Group
			g.SetLimit(s.limit)
			for _, n := range batch {
				g.Go(func() error {
					n.system.Update(w)
					return nil
				})
			}
			_ = g.Wait()
		}
	}
}

// Stages reports the execution plan as system names: stage, batch, system.
func (s *Scheduler) Stages() [][][]string {
	out := make([][][]string, 0, len(s.stages))
	for _, stage := range s.stages {
		batches := make([][]string, 0, len(stage))
		for _, batch := range stage {
			names := make([]string, 0, len(batch))
			for _, n := range batch {
				names = append(names, n.name)
			}
			batches = append(batches, names)
		}
		out = append(out, batches)
	}
	return out
}

// Order flattens the plan into the sequential execution order.
func (s *Scheduler) Order() []string {
	var out []string
	for _, stage := range s.Stages() {
		for _, batch := range stage {
			out = append(out, batch...)
		}
	}
	return out
}

const (
	unvisited = iota
	visiting
	done
)

// depths computes the longest dependency chain ending at each node and
// reports the first cycle found.
func (s *Scheduler) depths() ([]int, error) {
	depth := make([]int, len(s.nodes))
	mark := make([]int, len(s.nodes))
	var path []int

	var visit func(i int) error
	visit = func(i int) error {
		switch mark[i] {
		case done:
			return nil
		case visiting:
			start := slices.Index(path, i)
			names := make([]string, 0, len(path)-start+1)
			for _, j := range path[start:] {
				names = append(names, s.nodes[j].name)
			}
			names = append(names, s.nodes[i].name)
			return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(names, " -> "))
		}
		mark[i] = visiting
		path = append(path, i)
		for _, j := range s.nodes[i].after {
			if err := visit(j); err != nil {
				return err
			}
			depth[i] = max(depth[i], depth[j]+1)
		}
		path = path[:len(path)-1]
		mark[i] = done
		return nil
	}

	for i := range s.nodes {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return depth, nil
}

// ordered reports whether a transitively runs after b or b after a.
func (s *Scheduler) ordered(a, b int) bool {
	return s.reaches(a, b) || s.reaches(b, a)
}

func (s *Scheduler) reaches(from, to int) bool {
	seen := make([]bool, len(s.nodes))
	stack := []int{from}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, j := range s.nodes[i].after {
			if j == to {
				return true
			}
			if !seen[j] {
				seen[j] = true
				stack = append(stack, j)
			}
		}
	}
	return false
}

// checkResourceWriters rejects pairs of unordered systems that may replace
// the same resource. An exclusive system counts as writing every resource.
func (s *Scheduler) checkResourceWriters() error {
	for i, a := range s.nodes {
		for j := i + 1; j < len(s.nodes); j++ {
			b := s.nodes[j]
			if !writesSharedResource(a, b) || s.ordered(i, j) {
				continue
			}
			return fmt.Errorf("%w: %q and %q", ErrResourceWriteConflict, a.name, b.name)
		}
	}
	return nil
}

func writesSharedResource(a, b *scheduled) bool {
	switch {
	case a.exclusive && b.exclusive:
		return true
	case a.exclusive:
		return writesResource(b)
	case b.exclusive:
		return writesResource(a)
	}
	for id := range a.writes {
		if _, both := b.writes[id]; both && component.IsResource(id) {
			return true
		}
	}
	return false
}

func writesResource(n *scheduled) bool {
	for id := range n.writes {
		if component.IsResource(id) {
			return true
		}
	}
	return false
}

func (s *Scheduler) plan(depth []int) {
	deepest := 0
	for _, d := range depth {
		deepest = max(deepest, d)
	}
	s.stages = make([][][]*scheduled, 0, deepest+1)
	for d := 0; d <= deepest; d++ {
		var stage [][]*scheduled
		for i, n := range s.nodes {
			if depth[i] != d {
				continue
			}
			placed := false
			for b, batch := range stage {
				if compatible(batch, n) {
					stage[b] = append(batch, n)
					placed = true
					break
				}
			}
			if !placed {
				stage = append(stage, []*scheduled{n})
			}
		}
		if len(stage) > 0 {
			s.stages = append(s.stages, stage)
		}
	}
}

func compatible(batch []*scheduled, n *scheduled) bool {
	for _, other := range batch {
		if conflicts(other, n) {
			return false
		}
	}
	return true
}

// conflicts is true when either side writes something the other touches.
func conflicts(a, b *scheduled) bool {
	if a.exclusive || b.exclusive {
		return true
	}
	for id := range a.writes {
		if _, ok := b.writes[id]; ok {
			return true
		}
		if _, ok := b.reads[id]; ok {
			return true
		}
	}
	for id := range b.writes {
		if _, ok := a.reads[id]; ok {
			return true
		}
	}
	return false
}
