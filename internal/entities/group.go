package entities

// Group is one leader and any number of members travelling together
type Group struct {
	ID        string
	Name      string
	LeaderID  string
	MemberIDs []string
}

// IsLeader reports whether id leads the group
func (g *Group) IsLeader(id string) bool {
	return g.LeaderID == id
}

// Contains reports whether id is the leader or a member
func (g *Group) Contains(id string) bool {
	if g.LeaderID == id {
		return true
	}
	for _, m := range g.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

// Size counts the leader plus members
func (g *Group) Size() int {
	return 1 + len(g.MemberIDs)
}
