package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Pruning    bool
	Duration   time.Duration
	Nodes      int64
	Leaves     int64
	Cutoffs    int64
}

type Collector interface {
	Start(goroutines int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	pruning    bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, pruning bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, pruning bool) {}
func (m *dummyCollector) AddNode()                           {}
func (m *dummyCollector) AddLeaf()                           {}
func (m *dummyCollector) AddCutoff()                         {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }
