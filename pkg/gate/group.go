package gate

import "context"

// Group is a gate over an ordered collection of member gates. It completes
// once every member has completed. Members are polled head-first: each poll
// of the group polls the oldest still-pending member and stops at the first
// one that is not finished, so completion is discovered in FIFO order.
//
// Group embeds Gate and supports its full API, including callbacks, Wait,
// and membership in another Group.
type Group struct {
	*Gate

	pending []*Gate
	done    []*Gate
}

// NewGroup creates a group over the given member gates. Members may be added
// later with Add.
func NewGroup(name string, members []*Gate, opts ...Option) (*Group, error) {
	grp := &Group{pending: append([]*Gate(nil), members...)}

	g, err := New(name, grp.allFinished, opts...)
	if err != nil {
		return nil, err
	}
	g.isGroup = true
	grp.Gate = g
	return grp, nil
}

func (g *Group) allFinished(ctx context.Context) (bool, error) {
	for len(g.pending) > 0 {
		head := g.pending[0]
		ok, err := head.Poll(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		g.done = append(g.done, head)
		g.pending = g.pending[1:]
	}
	return true, nil
}

// Add appends a member gate to the group. Membership changes are rejected
// once the group itself has completed.
func (g *Group) Add(member *Gate) error {
	if g.Gate.finished {
		return ErrGateFinished
	}
	g.pending = append(g.pending, member)
	return nil
}

// AddAbsorb appends a member gate and moves its completion callbacks onto
// the group, so they fire when the whole group completes instead of when the
// member does. Absorbing another group is not supported.
func (g *Group) AddAbsorb(member *Gate) error {
	if member.isGroup {
		return ErrAbsorbGroup
	}
	if err := g.Add(member); err != nil {
		return err
	}
	// Registration may fail, so move callbacks one at a time: a callback is
	// removed from the member only after the group accepted it.
	for len(member.then) > 0 {
		if err := g.Then(member.then[0]); err != nil {
			return err
		}
		member.then = member.then[1:]
	}
	return nil
}

// Pending returns the number of members not yet observed finished.
func (g *Group) Pending() int { return len(g.pending) }
