package histrion

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ActorHandle is an opaque, stable reference to an actor, suitable as a
// hash/map key. Backed by a UUID rather than a reused integer index so
// handles stay unambiguous across the lifetime of a world, even across
// many Spawn calls.
type ActorHandle = uuid.UUID

// Vec3 is a 3D double vector used for position, velocity and acceleration,
// in light-seconds / light-seconds-per-second / light-seconds-per-second^2.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Plus(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

func (a Vec3) MagnitudeSquared() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Position is the current location of an actor, in light-seconds.
type Position Vec3

// Num is a finite float64: NaN is rejected at construction so equality and
// ordering over Value stay total.
type Num float64

// NewNum wraps f as a Num, rejecting NaN.
func NewNum(f float64) (Num, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("histrion: %w: NaN is not a valid number", ErrNotANumber)
	}
	return Num(f), nil
}

// Value is the runtime value domain: an actor handle, a finite number, or
// a named struct of values. Struct iterates in name-sorted order so that
// Display is deterministic regardless of insertion order.
type Value interface {
	isValue()
	String() string
}

type ActorValue struct {
	Handle ActorHandle
}

func (ActorValue) isValue()         {}
func (v ActorValue) String() string { return v.Handle.String() }

type NumValue struct {
	N Num
}

func (NumValue) isValue() {}
func (v NumValue) String() string {
	return formatFloat(float64(v.N))
}

type StructValue struct {
	Fields map[string]Value
}

func (StructValue) isValue() {}
func (v StructValue) String() string {
	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("{ ")
	for _, name := range names {
		fmt.Fprintf(&b, "%s = %s; ", name, v.Fields[name].String())
	}
	b.WriteString("}")
	return b.String()
}

func formatFloat(f float64) string {
	s := strings.TrimRight(fmt.Sprintf("%f", f), "0")
	return strings.TrimSuffix(s, ".")
}

// positionValue turns a Position into the Struct {x, y, z: Num} that Field
// access on "position" returns.
func positionValue(p Position) Value {
	return StructValue{Fields: map[string]Value{
		"x": NumValue{Num(p.X)},
		"y": NumValue{Num(p.Y)},
		"z": NumValue{Num(p.Z)},
	}}
}

// valueKey produces a canonical string encoding of a Value's structural
// content, used to key Signal equality/hashing (map[string]listenEntry)
// without requiring Value itself to be a comparable Go type.
func valueKey(v Value) string {
	switch x := v.(type) {
	case ActorValue:
		return "a:" + x.Handle.String()
	case NumValue:
		return "n:" + fmt.Sprintf("%x", float64(x.N))
	case StructValue:
		names := make([]string, 0, len(x.Fields))
		for name := range x.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		var b strings.Builder
		b.WriteString("s:{")
		for _, name := range names {
			b.WriteString(name)
			b.WriteString("=")
			b.WriteString(valueKey(x.Fields[name]))
			b.WriteString(";")
		}
		b.WriteString("}")
		return b.String()
	default:
		return "?"
	}
}

// Signal is a head name with a value tuple, used for Transmit/ListenFor
// rendezvous. Equality and hashing are by structural content.
type Signal struct {
	Head string
	Body []Value
}

// Key returns a canonical string that two structurally equal signals
// always share, suitable as a map key for the listening table.
func (s Signal) Key() string {
	var b strings.Builder
	b.WriteString(s.Head)
	b.WriteString("(")
	for _, v := range s.Body {
		b.WriteString(valueKey(v))
		b.WriteString(",")
	}
	b.WriteString(")")
	return b.String()
}

func (s Signal) String() string {
	parts := make([]string, len(s.Body))
	for i, v := range s.Body {
		parts[i] = v.String()
	}
	return fmt.Sprintf("#%s(%s)", s.Head, strings.Join(parts, ", "))
}
