package histrion

// Action is the union of every instruction the interpreter can execute.
// Producers (e.g. a script-compilation collaborator, out of scope for this
// module) must emit well-formed trees; an unrecognized variant reaching
// the interpreter is a programmer error.
type Action interface {
	isAction()
}

// Halt stops the world: has_halted becomes true and the outer simulate
// loop terminates once the current action finishes.
type Halt struct{}

// Trace evaluates Expr and emits a human-readable "expr = value" line.
// Purely observational; never affects control flow.
type Trace struct {
	Expr Expr
}

// Spawn creates a fresh actor named Name, inheriting the spawner's current
// position as a Fixed trajectory, and binds globals[Name] to it.
type Spawn struct {
	Name string
}

// AsActor runs Script as a nested fiber whose Me is the actor bound to
// Name. The nested fiber shares a cloned copy of the caller's locals. If
// the nested fiber suspends, it parks on the target actor and this action
// returns immediately; the caller resumes at the next instruction either
// way.
type AsActor struct {
	Name   string
	Script []Action
}

// SetAccel replaces the caller's trajectory with one accelerating at
// Value from the caller's current position and velocity, collapsing to
// Fixed when both are zero.
type SetAccel struct {
	Value Vec3
}

// Wait parks the fiber on the caller's actor with eta = now + Interval,
// suspending execution.
type Wait struct {
	Interval Interval
}

// ListenFor suspends the fiber, registering it to resume the instant a
// matching Transmit fires the signal {Head, eval(Args)...}.
type ListenFor struct {
	Head string
	Args []Expr
}

// Transmit builds {Head, eval(Args)...} and wakes every actor currently
// listening for it. Does not suspend the transmitting fiber.
type Transmit struct {
	Head string
	Args []Expr
}

// Die marks the caller's actor dead. The entity stays queryable; its last
// trajectory is retained.
type Die struct{}

// WriteLocal evaluates Value and binds it under Name in the top frame's
// locals, overwriting any prior binding.
type WriteLocal struct {
	Name  string
	Value Expr
}

// DefGlobalMethod registers a world-level method, overwriting any
// previous method of the same name.
type DefGlobalMethod struct {
	Name   string
	Params []string
	Script []Action
}

// Call invokes a registered method, pushing a new StackFrame bound to the
// evaluated arguments.
type Call struct {
	Name string
	Args []Expr
}

// Return pops the top StackFrame. Falling off the last frame ends the
// fiber the same way.
type Return struct{}

func (Halt) isAction()            {}
func (Trace) isAction()           {}
func (Spawn) isAction()           {}
func (AsActor) isAction()         {}
func (SetAccel) isAction()        {}
func (Wait) isAction()            {}
func (ListenFor) isAction()       {}
func (Transmit) isAction()        {}
func (Die) isAction()             {}
func (WriteLocal) isAction()      {}
func (DefGlobalMethod) isAction() {}
func (Call) isAction()            {}
func (Return) isAction()          {}

// Expr is the pure expression language: fiber locals, globals, and
// actor-derived fields.
type Expr interface {
	isExpr()
}

// Myself evaluates to Actor(fiber.me).
type Myself struct{}

// Var resolves name first against the top frame's locals, then globals.
type Var struct {
	Name string
}

// NumConst evaluates to Num(Value), rejecting NaN.
type NumConst struct {
	Value float64
}

// Field evaluates Subject then looks up FieldName on it: "position" on an
// Actor, or any key on a Struct.
type Field struct {
	Subject   Expr
	FieldName string
}

func (Myself) isExpr()   {}
func (Var) isExpr()      {}
func (NumConst) isExpr() {}
func (Field) isExpr()    {}
