// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package viz

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/treeviz/bst"
	"github.com/treeviz/bst/internal/randkeys"
	"github.com/treeviz/bst/internal/rate"
	"github.com/treeviz/bst/internal/strparse"
)

// SessionOptions holds the optional parameters for a Session.
type SessionOptions struct {
	// Render controls how frames are drawn.
	Render RenderOptions
	// Animation toggles per-step frames. When false, only the final state of
	// each operation is drawn.
	Animation bool
	// Speed multiplies the base frame rate; clamped to [0.1, 4.0] like the
	// speed slider it replaces.
	Speed float64
	// FrameRate is the frames per second played at 1.0x speed. Zero means
	// DefaultFrameRate.
	FrameRate float64
	// DisablePacing plays frames without sleeping. Used by scripts and
	// tests.
	DisablePacing bool
	// Logger receives operation outcomes. The default logs to the Go stdlib
	// logs.
	Logger bst.Logger
	// Seed seeds the random-fill generator. Zero means a fixed default, so
	// scripted sessions are reproducible.
	Seed uint64
}

const (
	// DefaultFrameRate is the animation frame rate at 1.0x speed.
	DefaultFrameRate = 8.0

	minSpeed = 0.1
	maxSpeed = 4.0
)

// EnsureDefaults ensures that the default values for all options are set if
// a valid value was not already specified.
func (o *SessionOptions) EnsureDefaults() *SessionOptions {
	if o == nil {
		o = &SessionOptions{Animation: true}
	}
	if o.Speed == 0 {
		o.Speed = 1.0
	}
	o.Speed = min(max(o.Speed, minSpeed), maxSpeed)
	if o.FrameRate == 0 {
		o.FrameRate = DefaultFrameRate
	}
	if o.Logger == nil {
		o.Logger = bst.DefaultLogger{}
	}
	if o.Seed == 0 {
		o.Seed = 1
	}
	return o
}

// Frame is one rendered animation step.
type Frame struct {
	// Desc describes the step (for example "visit 8: go left").
	Desc string
	// View is the rendered tree at this step.
	View string
}

// Session is the controller of the visualizer: it owns a Tree, applies user
// operations to it, and writes rendered frames and status output to out. All
// methods are synchronous; Session is not safe for concurrent use.
type Session struct {
	tree     *bst.Tree[int64]
	out      io.Writer
	opts     SessionOptions
	renderer *Renderer
	limiter  *rate.Limiter
	rng      *rand.Rand

	heights series
	counts  series

	// Animation state for the operation in flight. Session implements
	// bst.StepRecorder: every step renders a frame against the most recent
	// consistent snapshot, with the visited path highlighted cumulatively.
	frames    []Frame
	curSnap   bst.Snapshot
	highlight map[int]bool
}

var _ bst.StepRecorder = (*Session)(nil)

// NewSession returns a Session writing to out. opts may be nil.
func NewSession(out io.Writer, opts *SessionOptions) *Session {
	s := &Session{
		out:  out,
		opts: *opts.EnsureDefaults(),
	}
	s.renderer = NewRenderer(s.opts.Render)
	s.tree = bst.New[int64](&bst.Options{
		OnDuplicate: bst.DuplicateError,
		Logger:      s.opts.Logger,
	})
	s.tree.SetRecorder(s)
	if !s.opts.DisablePacing {
		s.limiter = rate.NewLimiter(s.opts.FrameRate*s.opts.Speed, 1)
	}
	s.rng = randkeys.NewRand(s.opts.Seed)
	return s
}

// Tree returns the session's tree.
func (s *Session) Tree() *bst.Tree[int64] { return s.tree }

// Frames returns the frames recorded by the most recent operation. The
// returned slice is reused by the next operation.
func (s *Session) Frames() []Frame { return s.frames }

// RecordStep implements bst.StepRecorder.
func (s *Session) RecordStep(st bst.Step) {
	if st.Kind.Mutating() {
		s.curSnap = s.tree.Snapshot()
		s.highlight = make(map[int]bool, 1)
	} else if s.highlight == nil {
		s.highlight = make(map[int]bool)
	}
	if st.NodeID >= 0 {
		s.highlight[st.NodeID] = true
	}
	s.frames = append(s.frames, Frame{
		Desc: st.Desc,
		View: s.renderer.Render(s.curSnap, s.highlight),
	})
}

func (s *Session) beginOp() {
	s.frames = s.frames[:0]
	s.curSnap = s.tree.Snapshot()
	s.highlight = make(map[int]bool)
}

// play writes the recorded frames of the finished operation, paced by the
// frame limiter. With animation off, only the final frame is written.
func (s *Session) play() {
	frames := s.frames
	if !s.opts.Animation && len(frames) > 0 {
		frames = frames[len(frames)-1:]
	}
	for i := range frames {
		if s.opts.Animation && s.limiter != nil {
			s.limiter.Wait(1)
		}
		fmt.Fprintf(s.out, "-- %s\n%s\n\n", frames[i].Desc, frames[i].View)
	}
}

func (s *Session) sample() {
	s.heights.record(int64(s.tree.Height()))
	s.counts.record(int64(s.tree.Len()))
}

func (s *Session) status() {
	fmt.Fprintf(s.out, "nodes: %d  height: %d  inorder: %v\n",
		s.tree.Len(), s.tree.Height(), s.tree.InOrderKeys())
}

// Insert inserts the keys in order, animating each insertion. Keys already
// present are reported but do not abort the batch, matching the original's
// batch insert.
func (s *Session) Insert(keys ...int64) error {
	if len(keys) == 0 {
		return errors.New("insert requires at least one key")
	}
	s.beginOp()
	var dups []int64
	for _, k := range keys {
		if _, err := s.tree.Insert(k); err != nil {
			if !errors.Is(err, bst.ErrDuplicate) {
				return err
			}
			dups = append(dups, k)
		}
	}
	s.play()
	s.sample()
	s.status()
	if len(dups) > 0 {
		fmt.Fprintf(s.out, "already present: %v\n", dups)
	}
	s.opts.Logger.Infof("insert: %d new, %d duplicate", len(keys)-len(dups), len(dups))
	return nil
}

// Delete removes key, animating the search and the relinking. A missing key
// is reported to the user rather than returned as an error.
func (s *Session) Delete(key int64) error {
	s.beginOp()
	_, err := s.tree.Delete(key)
	if err != nil && !errors.Is(err, bst.ErrNotFound) {
		return err
	}
	s.play()
	if errors.Is(err, bst.ErrNotFound) {
		fmt.Fprintf(s.out, "%d is not in the tree\n", key)
		return nil
	}
	s.sample()
	s.status()
	s.opts.Logger.Infof("delete: %d removed", key)
	return nil
}

// Search looks up key, animating the visited path (the flash animation of
// the original) and reporting the outcome with the full path.
func (s *Session) Search(key int64) {
	s.beginOp()
	path, found := s.tree.Search(key)
	s.play()
	keys := make([]int64, len(path))
	for i, n := range path {
		keys[i] = n.Key()
	}
	if found != nil {
		fmt.Fprintf(s.out, "found %d  path: %v\n", key, keys)
	} else {
		fmt.Fprintf(s.out, "%d not found  path: %v\n", key, keys)
	}
}

// Traverse prints the keys in the given order.
func (s *Session) Traverse(order bst.TraversalOrder) {
	fmt.Fprintf(s.out, "%s: %v\n", order, s.tree.AppendKeys(order, nil))
}

// Random inserts n random keys not already present, like the original's
// random fill.
func (s *Session) Random(n int) error {
	if n <= 0 {
		return errors.Newf("random requires a positive count, got %d", n)
	}
	existing := make(map[int64]bool, s.tree.Len())
	for _, k := range s.tree.InOrderKeys() {
		existing[k] = true
	}
	keys := randkeys.Unique(s.rng, n, existing)
	fmt.Fprintf(s.out, "random keys: %v\n", keys)
	return s.Insert(keys...)
}

// Clear empties the tree.
func (s *Session) Clear() {
	s.beginOp()
	s.tree.Reset()
	s.play()
	s.sample()
	s.status()
	s.opts.Logger.Infof("clear")
}

// Print draws the current tree with no highlights.
func (s *Session) Print() {
	fmt.Fprintln(s.out, s.renderer.Render(s.tree.Snapshot(), nil))
}

// Stats writes a table of tree metrics.
func (s *Session) Stats() {
	m := s.tree.Metrics()
	tw := tablewriter.NewWriter(s.out)
	tw.SetHeader([]string{"metric", "value"})
	tw.Append([]string{"nodes", strconv.FormatInt(m.Nodes, 10)})
	tw.Append([]string{"height", strconv.FormatInt(m.Height, 10)})
	tw.Append([]string{"inserts", strconv.FormatInt(m.Inserts, 10)})
	tw.Append([]string{"duplicates", strconv.FormatInt(m.Duplicates, 10)})
	tw.Append([]string{"deletes", strconv.FormatInt(m.Deletes, 10)})
	tw.Append([]string{"searches", strconv.FormatInt(m.Searches, 10)})
	tw.Append([]string{"misses", strconv.FormatInt(m.Misses, 10)})
	tw.Append([]string{"comparisons", strconv.FormatInt(m.Comparisons, 10)})
	tw.Append([]string{"digest", fmt.Sprintf("%016x", s.tree.Digest())})
	tw.Render()
}

// Plot draws how the node count and height evolved over the session's
// mutating operations.
func (s *Session) Plot() {
	if s.counts.empty() {
		fmt.Fprintln(s.out, "no operations to plot")
		return
	}
	fmt.Fprintln(s.out, s.counts.plot(60, 8, "nodes per operation"))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.heights.plot(60, 8, "height per operation"))
}

// SetSpeed sets the animation speed multiplier, clamped to [0.1, 4.0].
func (s *Session) SetSpeed(mult float64) {
	s.opts.Speed = min(max(mult, minSpeed), maxSpeed)
	if s.limiter != nil {
		s.limiter.SetRate(s.opts.FrameRate * s.opts.Speed)
	}
	fmt.Fprintf(s.out, "animation speed: %.2fx\n", s.opts.Speed)
}

// SetAnimation toggles per-step animation.
func (s *Session) SetAnimation(on bool) {
	s.opts.Animation = on
	if on {
		fmt.Fprintln(s.out, "animation on")
	} else {
		fmt.Fprintln(s.out, "animation off")
	}
}

// Help lists the session commands.
func (s *Session) Help() {
	fmt.Fprint(s.out, `commands:
  insert <key>...    insert keys (aliases: i)
  delete <key>       delete a key (aliases: d)
  search <key>       search for a key, animating the path (aliases: s)
  traverse [order]   list keys: inorder, preorder, postorder, levelorder
  random [n]         insert n random keys (default 10)
  clear              empty the tree
  print              draw the tree
  compact            draw the tree as an indented listing
  stats              show tree metrics
  plot               plot node count and height over operations
  speed <mult>       set animation speed (0.1 to 4.0)
  anim on|off        toggle animation
  help               show this help
  quit               exit
`)
}

// HandleLine parses and executes one command line. It returns quit=true for
// the quit command. Parse and validation failures are returned as errors;
// the caller reports them and continues.
func (s *Session) HandleLine(line string) (quit bool, err error) {
	defer strparse.Catch(&err)
	p := strparse.MakeParser(line)
	cmd := p.Next()
	switch cmd {
	case "":
		return false, nil
	case "insert", "i":
		return false, s.Insert(p.Keys()...)
	case "delete", "d":
		key := p.Key()
		s.expectDone(&p)
		return false, s.Delete(key)
	case "search", "s":
		key := p.Key()
		s.expectDone(&p)
		s.Search(key)
		return false, nil
	case "traverse", "t":
		order := bst.InOrder
		if !p.Done() {
			order, err = bst.ParseTraversalOrder(p.Next())
			if err != nil {
				return false, err
			}
		}
		s.expectDone(&p)
		s.Traverse(order)
		return false, nil
	case "random", "r":
		n := 10
		if !p.Done() {
			n = p.Int()
		}
		s.expectDone(&p)
		return false, s.Random(n)
	case "clear":
		s.expectDone(&p)
		s.Clear()
		return false, nil
	case "print", "p":
		s.expectDone(&p)
		s.Print()
		return false, nil
	case "compact":
		s.expectDone(&p)
		r := NewRenderer(RenderOptions{Width: s.opts.Render.Width, Compact: true})
		fmt.Fprintln(s.out, r.Render(s.tree.Snapshot(), nil))
		return false, nil
	case "stats":
		s.expectDone(&p)
		s.Stats()
		return false, nil
	case "plot":
		s.expectDone(&p)
		s.Plot()
		return false, nil
	case "speed":
		s.SetSpeed(p.Float())
		s.expectDone(&p)
		return false, nil
	case "anim":
		switch arg := p.Next(); arg {
		case "on":
			s.SetAnimation(true)
		case "off":
			s.SetAnimation(false)
		default:
			return false, errors.Newf("anim requires on or off, got %q", arg)
		}
		s.expectDone(&p)
		return false, nil
	case "help", "h", "?":
		s.Help()
		return false, nil
	case "quit", "q", "exit":
		return true, nil
	default:
		return false, errors.Newf("unknown command %q; try help", cmd)
	}
}

func (s *Session) expectDone(p *strparse.Parser) {
	if !p.Done() {
		p.Errf("unexpected argument %q", p.Peek())
	}
}
