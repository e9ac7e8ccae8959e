package histrion

import (
	"fmt"
	"strings"
)

// printAction renders a single action the way spec §6's trace output
// requires: one line, no trailing newline. AsActor renders its header
// only; PrettyPrint below additionally nests the block body.
func printAction(a Action) string {
	switch x := a.(type) {
	case Halt:
		return "halt"

	case Trace:
		return fmt.Sprintf("trace %s", printExpr(x.Expr))

	case Spawn:
		return fmt.Sprintf("spawn %s", fmtActorName(x.Name))

	case AsActor:
		return fmt.Sprintf("as %s do ...", fmtActorName(x.Name))

	case SetAccel:
		return "self.accel = ..."

	case Wait:
		return fmt.Sprintf("wait %gsec", float64(x.Interval))

	case ListenFor:
		return fmt.Sprintf("listen %s", Signal{Head: x.Head, Body: nil}.headerString(x.Args))

	case Transmit:
		return fmt.Sprintf("transmit %s", Signal{Head: x.Head, Body: nil}.headerString(x.Args))

	case Die:
		return "die"

	case WriteLocal:
		return fmt.Sprintf("%s = %s", x.Name, printExpr(x.Value))

	case DefGlobalMethod:
		return fmt.Sprintf("def %s(%s) do ...", x.Name, strings.Join(x.Params, ", "))

	case Call:
		parts := make([]string, len(x.Args))
		for i, arg := range x.Args {
			parts[i] = printExpr(arg)
		}
		return fmt.Sprintf("call %s(%s)", x.Name, strings.Join(parts, ", "))

	case Return:
		return "return"

	default:
		return fmt.Sprintf("UNIMPLEMENTED(%T)", a)
	}
}

// headerString renders a signal's #head(args) form from unevaluated
// expressions, for ListenFor/Transmit trace lines.
func (s Signal) headerString(args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printExpr(a)
	}
	return fmt.Sprintf("#%s(%s)", s.Head, strings.Join(parts, ", "))
}

func printExpr(e Expr) string {
	switch x := e.(type) {
	case Myself:
		return "self"
	case Var:
		return x.Name
	case NumConst:
		return formatFloat(x.Value)
	case Field:
		return fmt.Sprintf("%s.%s", printExpr(x.Subject), x.FieldName)
	default:
		return fmt.Sprintf("UNIMPLEMENTED(%T)", e)
	}
}

func fmtActorName(name string) string {
	if strings.Contains(name, " ") {
		return "[" + name + "]"
	}
	return name
}

// PrettyPrint renders a full script as nested, indented "as X do ... done"
// blocks, one statement per line, matching the original histrion
// pretty-printer's Printer (src/pretty_print.rs in original_source): a
// blank line after each top-level statement, 4-space indent per nesting
// level.
func PrettyPrint(script []Action) string {
	p := &printer{}
	for _, a := range script {
		p.printOne(a)
	}
	return p.buf.String()
}

type printer struct {
	indent int
	buf    strings.Builder
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *printer) printOne(a Action) {
	if asActor, ok := a.(AsActor); ok {
		p.writeIndent()
		fmt.Fprintf(&p.buf, "as %s do\n", fmtActorName(asActor.Name))
		p.indent++
		for _, inner := range asActor.Script {
			p.printOne(inner)
		}
		p.indent--
		p.writeIndent()
		p.buf.WriteString("done\n")
	} else {
		p.writeIndent()
		p.buf.WriteString(printAction(a))
		p.buf.WriteString("\n")
	}

	if p.indent == 0 {
		p.buf.WriteString("\n")
	}
}
