// Package document provides host document implementations: an in-memory
// document that emulates computed font sizes, and a file-backed document
// that publishes the composed stylesheet for hosts that load CSS snippets.
package document

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/fontkeeper/internal/application/port"
)

// DefaultSizeProperty is the root custom property elements inherit their size from.
const DefaultSizeProperty = "--b3-font-size"

var (
	// --name: 18px !important
	rootOverrideRe = regexp.MustCompile(`(--[\w-]+)\s*:\s*(-?\d+(?:\.\d+)?)px\s*!important`)
	// [attr='1'] { font-size: calc(var(--base) + 4px) !important; }
	markerRuleRe = regexp.MustCompile(`\[([\w-]+)(?:=['"][^'"]*['"])?\]\s*\{\s*font-size:\s*calc\(var\((--[\w-]+)\)\s*\+\s*(-?\d+(?:\.\d+)?)px\)`)
)

// Node is an element of a Memory document.
type Node struct {
	doc *Memory

	tag      string
	classes  map[string]struct{}
	attrs    map[string]string
	style    map[string]string
	children []*Node

	hostSize float64
	sizeProp string
}

var _ port.Element = (*Node)(nil)

// NewNode creates a detached element whose host-rendered size is hostSize px.
func NewNode(tag string, hostSize float64, classes ...string) *Node {
	n := &Node{
		tag:      strings.ToLower(tag),
		classes:  make(map[string]struct{}, len(classes)),
		attrs:    map[string]string{},
		style:    map[string]string{},
		hostSize: hostSize,
		sizeProp: DefaultSizeProperty,
	}
	for _, c := range classes {
		n.classes[c] = struct{}{}
	}
	return n
}

// WithSizeProperty makes the node inherit its size from another root property.
func (n *Node) WithSizeProperty(name string) *Node {
	n.sizeProp = name
	return n
}

func (n *Node) Tag() string { return n.tag }

func (n *Node) HasClass(name string) bool {
	_, ok := n.classes[name]
	return ok
}

func (n *Node) Attr(name string) (string, bool) {
	n.lock()
	defer n.unlock()
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) SetAttr(name, value string) {
	n.lock()
	defer n.unlock()
	n.attrs[name] = value
}

func (n *Node) RemoveAttr(name string) {
	n.lock()
	defer n.unlock()
	delete(n.attrs, name)
}

func (n *Node) SetStyleProperty(name, value string) {
	n.lock()
	defer n.unlock()
	n.style[name] = value
}

func (n *Node) RemoveStyleProperty(name string) {
	n.lock()
	defer n.unlock()
	delete(n.style, name)
}

// StyleProperty returns an inline style property.
func (n *Node) StyleProperty(name string) (string, bool) {
	n.lock()
	defer n.unlock()
	v, ok := n.style[name]
	return v, ok
}

// ComputedFontSize emulates the cascade the composed stylesheet produces: a
// marked element under an active marker rule renders at its recorded base
// plus the rule's delta; every other element renders at its host size shifted
// by any override of the root property it inherits from.
func (n *Node) ComputedFontSize() (float64, error) {
	if n.doc == nil {
		return n.hostSize, nil
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	return n.doc.computedLocked(n), nil
}

func (n *Node) Descendants() []port.Element {
	n.lock()
	defer n.unlock()
	var out []port.Element
	n.walk(func(d *Node) {
		if d != n {
			out = append(out, d)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

func (n *Node) lock() {
	if n.doc != nil {
		n.doc.mu.Lock()
	}
}

func (n *Node) unlock() {
	if n.doc != nil {
		n.doc.mu.Unlock()
	}
}

// Memory is an in-memory port.HostDocument.
type Memory struct {
	mu sync.Mutex

	root *Node
	body *Node

	rootDefaults map[string]float64
	styles       []port.StyleBlock
	observers    map[int]func([]port.Element)
	nextObserver int
}

var _ port.HostDocument = (*Memory)(nil)

// NewMemory creates a document whose root custom properties compute to
// rootDefaults (px) while no stylesheet overrides them.
func NewMemory(rootDefaults map[string]float64) *Memory {
	d := &Memory{
		rootDefaults: map[string]float64{},
		observers:    map[int]func([]port.Element){},
	}
	for k, v := range rootDefaults {
		d.rootDefaults[k] = v
	}
	d.root = NewNode("html", 0)
	d.root.doc = d
	d.body = NewNode("body", d.rootDefaults[DefaultSizeProperty])
	d.body.doc = d
	d.root.children = append(d.root.children, d.body)
	return d
}

// Root returns the document element.
func (d *Memory) Root() *Node { return d.root }

func (d *Memory) Body() port.Element {
	if d.body == nil {
		return nil
	}
	return d.body
}

// BodyNode returns the body as a concrete node for building trees.
func (d *Memory) BodyNode() *Node { return d.body }

// Append attaches child (and its subtree) under parent and notifies subtree
// observers, as a host inserting content would.
func (d *Memory) Append(parent, child *Node) {
	d.mu.Lock()
	child.walk(func(n *Node) { n.doc = d })
	parent.children = append(parent.children, child)
	observers := make([]func([]port.Element), 0, len(d.observers))
	for _, fn := range d.observers {
		observers = append(observers, fn)
	}
	d.mu.Unlock()

	for _, fn := range observers {
		fn([]port.Element{child})
	}
}

func (d *Memory) InsertStyle(_ context.Context, block port.StyleBlock) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.styles = append(d.styles, block)
	return nil
}

func (d *Memory) RemoveStyles(_ context.Context, id string, markers ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.styles[:0]
	for _, s := range d.styles {
		if s.ID == id || containsString(markers, s.Marker) {
			continue
		}
		kept = append(kept, s)
	}
	d.styles = kept
}

// Styles returns the injected style blocks in insertion order.
func (d *Memory) Styles() []port.StyleBlock {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]port.StyleBlock(nil), d.styles...)
}

// CSS returns the concatenated text of all injected style blocks.
func (d *Memory) CSS() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cssLocked()
}

func (d *Memory) QueryByAttr(name, value string) []port.Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []port.Element
	d.root.walk(func(n *Node) {
		if v, ok := n.attrs[name]; ok && v == value {
			out = append(out, n)
		}
	})
	return out
}

func (d *Memory) ObserveSubtrees(fn func([]port.Element)) (func(), error) {
	d.mu.Lock()
	id := d.nextObserver
	d.nextObserver++
	d.observers[id] = fn
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.observers, id)
			d.mu.Unlock()
		})
	}, nil
}

// ObserverCount returns the number of connected subtree observers.
func (d *Memory) ObserverCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.observers)
}

func (d *Memory) RootPropertyPx(name string) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.rootPropertyLocked(name)
	return v, ok
}

func (d *Memory) RemoveRootProperties(names ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, name := range names {
		delete(d.root.style, name)
	}
}

func (d *Memory) rootPropertyLocked(name string) (float64, bool) {
	if v, ok := d.overridesLocked()[name]; ok {
		return v, true
	}
	if raw, ok := d.root.style[name]; ok {
		if v, ok := parsePx(raw); ok {
			return v, true
		}
	}
	v, ok := d.rootDefaults[name]
	return v, ok
}

func (d *Memory) overridesLocked() map[string]float64 {
	out := map[string]float64{}
	for _, m := range rootOverrideRe.FindAllStringSubmatch(d.cssLocked(), -1) {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			out[m[1]] = v
		}
	}
	return out
}

func (d *Memory) computedLocked(n *Node) float64 {
	css := d.cssLocked()
	for _, m := range markerRuleRe.FindAllStringSubmatch(css, -1) {
		if _, marked := n.attrs[m[1]]; !marked {
			continue
		}
		base, ok := parsePx(n.style[m[2]])
		if !ok {
			continue
		}
		delta, _ := strconv.ParseFloat(m[3], 64)
		return base + delta
	}

	if math.IsNaN(n.hostSize) || math.IsInf(n.hostSize, 0) || n.hostSize <= 0 {
		return n.hostSize
	}
	def, ok := d.rootDefaults[n.sizeProp]
	if !ok {
		return n.hostSize
	}
	cur, _ := d.rootPropertyLocked(n.sizeProp)
	return n.hostSize + cur - def
}

func (d *Memory) cssLocked() string {
	parts := make([]string, 0, len(d.styles))
	for _, s := range d.styles {
		parts = append(parts, s.CSS)
	}
	return strings.Join(parts, "\n")
}

func parsePx(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "px"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func containsString(list []string, s string) bool {
	if s == "" {
		return false
	}
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
