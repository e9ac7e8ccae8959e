package histrion

import "fmt"

// run is the dispatch loop: repeatedly fetch the next action from the
// fiber's top frame and execute it. It returns when the fiber exhausts
// its stack, when it executes Halt, or when an action suspends it (Wait,
// ListenFor). Halt flips has_halted and ends this run immediately; any
// actions after it in the fiber are not executed, and Simulate stops
// issuing further Update calls once that flag is observed.
func (w *World) run(fiber *Fiber) error {
	for {
		action, ok := fiber.fetch()
		if !ok {
			return nil
		}

		w.logger.TraceStep(w.now, printAction(action))

		switch a := action.(type) {
		case Halt:
			w.hasHalted = true
			return nil

		case Trace:
			value, err := w.evalExpr(fiber, a.Expr)
			if err != nil {
				return w.logErr(err)
			}
			w.logger.TraceExpr(printExpr(a.Expr), value.String())

		case Spawn:
			if err := w.doSpawn(fiber, a); err != nil {
				return w.logErr(err)
			}

		case AsActor:
			if err := w.doAsActor(fiber, a); err != nil {
				return w.logErr(err)
			}

		case SetAccel:
			if err := w.doSetAccel(fiber, a); err != nil {
				return w.logErr(err)
			}

		case Wait:
			w.doWait(fiber, a)
			return nil

		case ListenFor:
			if err := w.doListenFor(fiber, a); err != nil {
				return w.logErr(err)
			}
			return nil

		case Transmit:
			if err := w.doTransmit(fiber, a); err != nil {
				return w.logErr(err)
			}

		case Die:
			w.store.setAlive(fiber.Me, false)

		case WriteLocal:
			if err := w.doWriteLocal(fiber, a); err != nil {
				return w.logErr(err)
			}

		case DefGlobalMethod:
			w.methods[a.Name] = &Method{Params: a.Params, Script: a.Script}

		case Call:
			if err := w.doCall(fiber, a); err != nil {
				return w.logErr(err)
			}

		case Return:
			w.doReturn(fiber)

		default:
			return w.logErr(fmt.Errorf("histrion: unknown action %T", action))
		}
	}
}

// logErr records err at LevelError before it unwinds out of run, mirroring
// the teacher's pattern of routing fatal errors through the logger on their
// way out rather than letting callers discover them only via the return
// value.
func (w *World) logErr(err error) error {
	w.logger.Log(LevelError, CatInterpreter, "%v", err)
	return err
}

func (w *World) doSpawn(fiber *Fiber, a Spawn) error {
	pos := w.position(fiber.Me)
	handle := w.store.createActor(a.Name, w.now, FixedTrajectory{Value: pos})
	w.globals[a.Name] = handle
	return nil
}

func (w *World) doAsActor(fiber *Fiber, a AsActor) error {
	target, ok := w.globals[a.Name]
	if !ok {
		return errNoSuchGlobal(a.Name)
	}

	locals := cloneLocals(fiber.topFrame().Locals)
	nested := NewFiber(target, a.Script, locals)
	return w.run(nested)
}

func (w *World) doSetAccel(fiber *Fiber, a SetAccel) error {
	name := w.store.name(fiber.Me)
	pos := w.position(fiber.Me)

	traj, ok := w.store.trajectory[fiber.Me]
	if !ok {
		traj = defaultTrajectory()
	}
	velocity := traj.VelocityAt(w.now)

	var next Trajectory
	if velocity.MagnitudeSquared() == 0 && a.Value.MagnitudeSquared() == 0 {
		next = FixedTrajectory{Value: pos}
	} else {
		next = LinearTrajectory{
			StartPlace:    pos,
			StartTime:     w.now,
			StartVelocity: velocity,
			Accel:         a.Value,
		}
	}

	if err := w.store.setTrajectory(fiber.Me, next); err != nil {
		return fmt.Errorf("histrion: setting trajectory for %s: %w", name, err)
	}
	w.logger.Log(LevelDebug, CatTrajectory, "%s accel=%v from v=%v at %s", name, a.Value, velocity, w.now)
	return nil
}

func (w *World) doWait(fiber *Fiber, a Wait) {
	guid := w.nextGuid()
	token := SortToken{Eta: w.now.Add(a.Interval), Guid: guid}
	w.store.agendaOf(fiber.Me).Next = &QueuedTask{Token: token, Fiber: fiber}
}

func (w *World) doListenFor(fiber *Fiber, a ListenFor) error {
	body, err := w.evalArgs(fiber, a.Args)
	if err != nil {
		return err
	}
	sig := Signal{Head: a.Head, Body: body}
	guid := w.nextGuid()
	w.store.agendaOf(fiber.Me).listen(sig, guid, fiber)
	w.logger.Log(LevelDebug, CatSignal, "%s listening for %s", w.store.name(fiber.Me), sig)
	return nil
}

func (w *World) doTransmit(fiber *Fiber, a Transmit) error {
	body, err := w.evalArgs(fiber, a.Args)
	if err != nil {
		return err
	}
	sig := Signal{Head: a.Head, Body: body}
	w.logger.Log(LevelDebug, CatSignal, "%s transmitting %s", w.store.name(fiber.Me), sig)

	// Iterate every agenda; wake every listener for this exact signal.
	// Last-writer-wins if the woken actor already has a pending Wait: see
	// SPEC_FULL.md's note on Transmit overwriting a pending Wait.
	for handle, agenda := range w.store.agenda {
		waiting, ok := agenda.fulfil(sig)
		if !ok {
			continue
		}
		if agenda.Next != nil {
			w.logger.Log(LevelWarn, CatSignal, "%s: transmit overwrites a pending wait", w.store.name(handle))
		}
		token := SortToken{Eta: w.now, Guid: waiting.Guid}
		agenda.Next = &QueuedTask{Token: token, Fiber: waiting.Fiber}
	}
	return nil
}

func (w *World) doWriteLocal(fiber *Fiber, a WriteLocal) error {
	value, err := w.evalExpr(fiber, a.Value)
	if err != nil {
		return err
	}
	fiber.topFrame().Locals[a.Name] = value
	return nil
}

func (w *World) doCall(fiber *Fiber, a Call) error {
	method, ok := w.methods[a.Name]
	if !ok {
		return errNoSuchMethod(a.Name)
	}
	if len(a.Args) != len(method.Params) {
		return errArgListMismatch(a.Name, len(method.Params), len(a.Args))
	}

	locals := make(map[string]Value, len(method.Params))
	for i, argExpr := range a.Args {
		value, err := w.evalExpr(fiber, argExpr)
		if err != nil {
			return err
		}
		locals[method.Params[i]] = value
	}

	fiber.Stack = append(fiber.Stack, &StackFrame{PC: 0, Script: method.Script, Locals: locals})
	w.logger.Log(LevelDebug, CatInterpreter, "%s: pushed frame for %s, depth=%d", w.store.name(fiber.Me), a.Name, len(fiber.Stack))
	return nil
}

func (w *World) doReturn(fiber *Fiber) {
	if len(fiber.Stack) > 0 {
		fiber.Stack = fiber.Stack[:len(fiber.Stack)-1]
	}
	w.logger.Log(LevelDebug, CatInterpreter, "%s: popped frame, depth=%d", w.store.name(fiber.Me), len(fiber.Stack))
}

func (w *World) evalArgs(fiber *Fiber, exprs []Expr) ([]Value, error) {
	out := make([]Value, len(exprs))
	for i, e := range exprs {
		v, err := w.evalExpr(fiber, e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalExpr is the pure expression evaluator: it reads fiber locals,
// globals, and actor-derived fields, and never mutates world state.
func (w *World) evalExpr(fiber *Fiber, expr Expr) (Value, error) {
	switch e := expr.(type) {
	case Myself:
		return ActorValue{Handle: fiber.Me}, nil

	case Var:
		frame := fiber.topFrame()
		if frame != nil {
			if v, ok := frame.Locals[e.Name]; ok {
				return v, nil
			}
		}
		if handle, ok := w.globals[e.Name]; ok {
			return ActorValue{Handle: handle}, nil
		}
		return nil, errNoSuchGlobal(e.Name)

	case NumConst:
		n, err := NewNum(e.Value)
		if err != nil {
			return nil, err
		}
		return NumValue{N: n}, nil

	case Field:
		subject, err := w.evalExpr(fiber, e.Subject)
		if err != nil {
			return nil, err
		}
		return w.evalField(subject, e.FieldName)

	default:
		return nil, fmt.Errorf("histrion: unknown expression %T", expr)
	}
}

func (w *World) evalField(subject Value, fieldName string) (Value, error) {
	switch v := subject.(type) {
	case ActorValue:
		if fieldName != "position" {
			return nil, errNoSuchField(fieldName, subject)
		}
		return positionValue(w.position(v.Handle)), nil

	case StructValue:
		field, ok := v.Fields[fieldName]
		if !ok {
			return nil, errNoSuchField(fieldName, subject)
		}
		return field, nil

	default:
		return nil, errNoSuchField(fieldName, subject)
	}
}
