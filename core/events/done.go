package events

// Done terminates a successful stream. IsInsufficient reports that the
// generator found no grounding for the query.
type Done struct {
	Base
	IsInsufficient bool
}

func NewDone(isInsufficient bool) Done {
	return Done{Base: NewBase(KindDone), IsInsufficient: isInsufficient}
}
