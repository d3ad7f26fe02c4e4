package world

import (
	"fmt"

	"github.com/KirkDiggler/rpg-perception/internal/entities"
	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/geometry"
	"github.com/KirkDiggler/rpg-perception/internal/language"
)

// DefaultFacing is used for characters whose definition names no direction
const DefaultFacing = "north"

// Snapshot is a fully linked, read-only view of a world. It is safe to share
// between goroutines as long as nobody mutates the entities it hands out.
type Snapshot struct {
	ID   string
	Name string

	rooms      map[string]*entities.Room
	roomList   []*entities.Room
	portals    map[string]*entities.Portal
	characters map[string]*entities.Character
	charList   []*entities.Character
	groups     map[string]*entities.Group
}

// Room returns the room with the given id
func (s *Snapshot) Room(id string) (*entities.Room, bool) {
	r, ok := s.rooms[id]
	return r, ok
}

// Rooms returns every room in definition order
func (s *Snapshot) Rooms() []*entities.Room {
	return s.roomList
}

// Portal returns the portal with the given id
func (s *Snapshot) Portal(id string) (*entities.Portal, bool) {
	p, ok := s.portals[id]
	return p, ok
}

// Character returns the character with the given id
func (s *Snapshot) Character(id string) (*entities.Character, bool) {
	c, ok := s.characters[id]
	return c, ok
}

// Characters returns every character in definition order
func (s *Snapshot) Characters() []*entities.Character {
	return s.charList
}

// Group returns the group with the given id
func (s *Snapshot) Group(id string) (*entities.Group, bool) {
	g, ok := s.groups[id]
	return g, ok
}

// GroupOf returns the group a character belongs to, or nil
func (s *Snapshot) GroupOf(c *entities.Character) *entities.Group {
	if c == nil || c.GroupID == "" {
		return nil
	}
	return s.groups[c.GroupID]
}

// Build validates a definition and links it into a snapshot. Every problem
// found is reported at once as an InvalidArgument error whose metadata lists
// the offending fields.
func Build(def *Definition) (*Snapshot, error) {
	if def == nil {
		return nil, errors.InvalidArgument("world definition is required")
	}

	b := &builder{
		vb: errors.NewValidationBuilder(),
		snap: &Snapshot{
			ID:         def.ID,
			Name:       def.Name,
			rooms:      make(map[string]*entities.Room, len(def.Rooms)),
			portals:    make(map[string]*entities.Portal, len(def.Portals)),
			characters: make(map[string]*entities.Character, len(def.Characters)),
			groups:     make(map[string]*entities.Group, len(def.Groups)),
		},
	}

	errors.ValidateRequired("id", def.ID, b.vb)
	if len(def.Rooms) == 0 {
		b.vb.Field("rooms", "at least one room is required")
	}

	for i := range def.Rooms {
		b.addRoom(fmt.Sprintf("rooms[%d]", i), &def.Rooms[i])
	}
	for i := range def.Portals {
		b.addPortal(fmt.Sprintf("portals[%d]", i), &def.Portals[i])
	}
	for i := range def.Characters {
		b.addCharacter(fmt.Sprintf("characters[%d]", i), &def.Characters[i])
	}
	// targets may point at characters defined later
	for i := range def.Characters {
		b.checkTarget(fmt.Sprintf("characters[%d].action.target", i), &def.Characters[i])
	}
	for i := range def.Groups {
		b.addGroup(fmt.Sprintf("groups[%d]", i), &def.Groups[i])
	}

	if err := b.vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid world %q", def.ID).WithMeta("world_id", def.ID)
	}
	return b.snap, nil
}

type builder struct {
	vb   *errors.ValidationBuilder
	snap *Snapshot
}

func (b *builder) addRoom(field string, def *RoomDef) {
	if def.ID == "" {
		b.vb.RequiredField(field + ".id")
		return
	}
	if _, dup := b.snap.rooms[def.ID]; dup {
		b.vb.Fieldf(field+".id", "duplicate room id %q", def.ID)
		return
	}

	flags, err := entities.ParseRoomFlags(def.Flags)
	if err != nil {
		b.vb.Field(field+".flags", err.Error())
	}

	room := &entities.Room{
		ID:          def.ID,
		Name:        def.Name,
		Position:    def.Position,
		Flags:       flags,
		Multipliers: b.multipliers(field+".multipliers", def.Multipliers),
	}

	for i := range def.Items {
		if item := b.item(fmt.Sprintf("%s.items[%d]", field, i), &def.Items[i]); item != nil {
			room.Items = append(room.Items, item)
		}
	}

	b.snap.rooms[room.ID] = room
	b.snap.roomList = append(b.snap.roomList, room)
}

func (b *builder) item(field string, def *ItemDef) *entities.Item {
	errors.ValidateRequired(field+".id", def.ID, b.vb)
	errors.ValidateRequired(field+".name", def.Name, b.vb)

	attachment := entities.Attachment(def.Attachment)
	switch attachment {
	case entities.AttachedNone, entities.AttachedWall, entities.AttachedCeiling:
	default:
		b.vb.Fieldf(field+".attachment", "unknown attachment %q", def.Attachment)
		return nil
	}

	return &entities.Item{
		ID:         def.ID,
		Name:       def.Name,
		Plural:     def.Plural,
		Offset:     def.Offset,
		Attachment: attachment,
	}
}

func (b *builder) addPortal(field string, def *PortalDef) {
	if def.ID == "" {
		b.vb.RequiredField(field + ".id")
		return
	}
	if _, dup := b.snap.portals[def.ID]; dup {
		b.vb.Fieldf(field+".id", "duplicate portal id %q", def.ID)
		return
	}

	a := b.endpoint(field+".a", def.A)
	bRoom := b.endpoint(field+".b", def.B)

	sideA, err := entities.ParsePortalFlags(def.SideA)
	if err != nil {
		b.vb.Field(field+".side_a", err.Error())
	}
	sideB, err := entities.ParsePortalFlags(def.SideB)
	if err != nil {
		b.vb.Field(field+".side_b", err.Error())
	}

	if a == nil || bRoom == nil {
		return
	}

	portal := &entities.Portal{
		ID:          def.ID,
		Name:        def.Name,
		A:           a,
		B:           bRoom,
		SideA:       sideA,
		SideB:       sideB,
		Open:        def.Open,
		Multipliers: b.multipliers(field+".multipliers", def.Multipliers),
	}

	b.snap.portals[portal.ID] = portal
	a.Portals = append(a.Portals, portal)
	if bRoom != a {
		bRoom.Portals = append(bRoom.Portals, portal)
	}
}

func (b *builder) endpoint(field, roomID string) *entities.Room {
	if roomID == "" {
		b.vb.RequiredField(field)
		return nil
	}
	room, ok := b.snap.rooms[roomID]
	if !ok {
		b.vb.Fieldf(field, "unknown room %q", roomID)
		return nil
	}
	return room
}

func (b *builder) addCharacter(field string, def *CharacterDef) {
	if def.ID == "" {
		b.vb.RequiredField(field + ".id")
		return
	}
	if _, dup := b.snap.characters[def.ID]; dup {
		b.vb.Fieldf(field+".id", "duplicate character id %q", def.ID)
		return
	}
	if def.Name == "" && def.Description == "" {
		b.vb.Field(field+".description", "a name or a description is required")
	}

	gender, ok := language.ParseGender(def.Gender)
	if !ok {
		b.vb.Fieldf(field+".gender", "unknown gender %q", def.Gender)
	}

	facingName := def.Facing
	if facingName == "" {
		facingName = DefaultFacing
	}
	facing, ok := geometry.DirectionByName(facingName)
	if !ok || facing.Vector.Horizontal().IsZero() {
		b.vb.Fieldf(field+".facing", "must be a horizontal direction, got %q", def.Facing)
	}

	action := b.action(field+".action", &def.Action)
	room := b.endpoint(field+".room", def.Room)
	if room == nil {
		return
	}

	c := &entities.Character{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Plural:      def.Plural,
		Gender:      gender,
		Race:        def.Race,
		Animal:      def.Animal,
		Facing:      facing.Vector,
		Action:      action,
		Room:        room,
	}

	room.Characters = append(room.Characters, c)
	b.snap.characters[c.ID] = c
	b.snap.charList = append(b.snap.charList, c)
}

func (b *builder) action(field string, def *ActionDef) entities.Action {
	kind := entities.ActionKind(def.Kind)
	switch kind {
	case entities.ActionNone:
		return entities.Action{}
	case entities.ActionWalking, entities.ActionRunning:
		if _, ok := geometry.DirectionByName(def.Direction); def.Direction != "" && !ok {
			b.vb.Fieldf(field+".direction", "unknown direction %q", def.Direction)
		}
	case entities.ActionFighting, entities.ActionGuarding:
		if def.Target == "" {
			b.vb.RequiredField(field + ".target")
		}
	default:
		b.vb.Fieldf(field+".kind", "unknown action %q", def.Kind)
	}

	return entities.Action{
		Kind:      kind,
		Direction: def.Direction,
		TargetID:  def.Target,
	}
}

func (b *builder) checkTarget(field string, def *CharacterDef) {
	if def.Action.Target == "" {
		return
	}
	if _, ok := b.snap.characters[def.Action.Target]; !ok {
		b.vb.Fieldf(field, "unknown character %q", def.Action.Target)
	}
}

func (b *builder) addGroup(field string, def *GroupDef) {
	if def.ID == "" {
		b.vb.RequiredField(field + ".id")
		return
	}
	if _, dup := b.snap.groups[def.ID]; dup {
		b.vb.Fieldf(field+".id", "duplicate group id %q", def.ID)
		return
	}

	group := &entities.Group{
		ID:       def.ID,
		Name:     def.Name,
		LeaderID: def.Leader,
	}

	join := func(memberField, id string) bool {
		c, ok := b.snap.characters[id]
		if !ok {
			b.vb.Fieldf(memberField, "unknown character %q", id)
			return false
		}
		if c.GroupID != "" && c.GroupID != group.ID {
			b.vb.Fieldf(memberField, "character %q already belongs to group %q", id, c.GroupID)
			return false
		}
		if c.GroupID == group.ID {
			b.vb.Fieldf(memberField, "character %q listed twice", id)
			return false
		}
		c.GroupID = group.ID
		return true
	}

	if def.Leader == "" {
		b.vb.RequiredField(field + ".leader")
	} else {
		join(field+".leader", def.Leader)
	}

	for i, id := range def.Members {
		if join(fmt.Sprintf("%s.members[%d]", field, i), id) {
			group.MemberIDs = append(group.MemberIDs, id)
		}
	}

	b.snap.groups[group.ID] = group
}

func (b *builder) multipliers(field string, in map[string]float64) entities.Multipliers {
	if len(in) == 0 {
		return nil
	}
	out := make(entities.Multipliers, len(in))
	for ch, v := range in {
		errors.ValidateUnitInterval(field+"."+ch, v, b.vb)
		out[entities.Channel(ch)] = v
	}
	return out
}
