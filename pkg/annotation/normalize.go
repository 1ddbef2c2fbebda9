package annotation

// Classification is the normalized form of an Annotation.
// Its implementations are Skip, LiteralSet and TypeSet.
type Classification interface {
	classification()
}

// Skip imposes no constraint.
type Skip struct{}

// LiteralSet accepts values equal to one of Values.
type LiteralSet struct {
	Values []any
}

// TypeSet accepts values whose runtime type matches one of Types.
// An empty TypeSet accepts nothing.
type TypeSet struct {
	Types []Annotation
}

func (Skip) classification()       {}
func (LiteralSet) classification() {}
func (TypeSet) classification()    {}

// Normalize classifies a. A nil annotation is classified as Skip; a zero-value
// annotation with no origin yields an empty TypeSet.
func Normalize(a Annotation) Classification {
	switch a := a.(type) {
	case nil:
		return Skip{}
	case *SpecialForm:
		if a == nil {
			return TypeSet{}
		}
		return Skip{}
	case RuntimeType:
		return TypeSet{Types: []Annotation{a}}
	case Parameterized:
		return normalizeParameterized(a)
	default:
		return TypeSet{Types: []Annotation{a}}
	}
}

func normalizeParameterized(p Parameterized) Classification {
	switch origin := p.Origin().(type) {
	case *SpecialForm:
		if origin == nil {
			return TypeSet{}
		}
		if origin.CatchAll() {
			return Skip{}
		}
		if origin == LiteralForm {
			return LiteralSet{Values: p.Args()}
		}
		return TypeSet{Types: annotationArgs(p.Args())}
	case RuntimeType:
		return TypeSet{Types: []Annotation{origin}}
	default:
		return TypeSet{}
	}
}

// annotationArgs keeps the arguments that are annotations. Anything else
// cannot describe a type and is dropped, which may leave the set empty.
func annotationArgs(args []any) []Annotation {
	out := make([]Annotation, 0, len(args))
	for _, arg := range args {
		if a, ok := arg.(Annotation); ok && a != nil {
			out = append(out, a)
		}
	}
	return out
}
