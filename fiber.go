package histrion

// StackFrame is one level of a fiber's call stack: a program counter into
// an instruction array, plus the local bindings visible while executing
// it.
type StackFrame struct {
	PC     int
	Script []Action
	Locals map[string]Value
}

// Fiber is one in-flight script execution: the actor it runs as, and its
// stack of call frames. Execution is single-threaded and cooperative —
// a Fiber only ever advances when the interpreter's dispatch loop steps
// it; it never runs concurrently with anything else in the world.
type Fiber struct {
	Me    ActorHandle
	Stack []*StackFrame
}

// NewFiber creates a fiber with a single top-level frame.
func NewFiber(me ActorHandle, script []Action, locals map[string]Value) *Fiber {
	if locals == nil {
		locals = make(map[string]Value)
	}
	return &Fiber{
		Me: me,
		Stack: []*StackFrame{
			{PC: 0, Script: script, Locals: locals},
		},
	}
}

// topFrame returns the innermost active frame, or nil if the fiber's
// stack is empty.
func (f *Fiber) topFrame() *StackFrame {
	if len(f.Stack) == 0 {
		return nil
	}
	return f.Stack[len(f.Stack)-1]
}

// fetch returns the next action to execute, advancing pc. Frames whose
// script is exhausted are popped automatically, so falling off the end
// of a callee frame behaves exactly like an explicit Return. ok is false
// once the whole stack is exhausted.
func (f *Fiber) fetch() (Action, bool) {
	for {
		frame := f.topFrame()
		if frame == nil {
			return nil, false
		}
		if frame.PC >= len(frame.Script) {
			f.Stack = f.Stack[:len(f.Stack)-1]
			continue
		}
		action := frame.Script[frame.PC]
		frame.PC++
		return action, true
	}
}

// cloneLocals returns a shallow copy of m, used when spawning a nested
// AsActor fiber: it must see the caller's bindings but not share the map.
func cloneLocals(m map[string]Value) map[string]Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SortToken orders dispatch: eta first, then guid (creation order) to
// break ties deterministically.
type SortToken struct {
	Eta  Instant
	Guid uint64
}

// Less implements the (eta, guid) lexicographic comparison.
func (a SortToken) Less(b SortToken) bool {
	if a.Eta != b.Eta {
		return a.Eta < b.Eta
	}
	return a.Guid < b.Guid
}

// QueuedTask is a fiber parked to resume at a specific SortToken.
type QueuedTask struct {
	Token SortToken
	Fiber *Fiber
}

// Waiting is a fiber parked on a signal; its eta is assigned (= now) only
// once the signal is transmitted.
type Waiting struct {
	Guid  uint64
	Fiber *Fiber
}

// Method is a registered, callable script with named parameters.
type Method struct {
	Params []string
	Script []Action
}
