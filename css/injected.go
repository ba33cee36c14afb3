package css

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Injected records rules already written to a stylesheet so each is emitted
// once. It only grows; there is no eviction. Safe for concurrent use.
type Injected struct {
	rules sync.Map // uint64 -> injectedRule
	seq   atomic.Uint64
	count atomic.Int64
}

type injectedRule struct {
	seq  uint64
	text string
}

// NewInjected returns an empty set.
func NewInjected() *Injected {
	return &Injected{}
}

func ruleKey(rule string) uint64 { return xxhash.Sum64String(rule) }

// Add records rule and reports whether it was new. Adding the same rule
// again is a no-op that returns false.
func (in *Injected) Add(rule string) bool {
	entry := injectedRule{seq: in.seq.Add(1), text: rule}
	if _, loaded := in.rules.LoadOrStore(ruleKey(rule), entry); loaded {
		// On a 64-bit hash collision the first rule keeps the slot.
		return false
	}
	in.count.Add(1)
	return true
}

// Has reports whether rule was added.
func (in *Injected) Has(rule string) bool {
	v, ok := in.rules.Load(ruleKey(rule))
	return ok && v.(injectedRule).text == rule
}

// Len returns the number of distinct rules added.
func (in *Injected) Len() int { return int(in.count.Load()) }

// Filter adds each rule and returns the ones that were new, in order.
func (in *Injected) Filter(rules []string) []string {
	var fresh []string
	for _, r := range rules {
		if in.Add(r) {
			fresh = append(fresh, r)
		}
	}
	return fresh
}

// Rules returns every added rule in insertion order.
func (in *Injected) Rules() []string {
	var entries []injectedRule
	in.rules.Range(func(_, v any) bool {
		entries = append(entries, v.(injectedRule))
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.text
	}
	return out
}

// CSS returns the stylesheet text of every added rule.
func (in *Injected) CSS() string {
	return strings.Join(in.Rules(), "\n")
}
