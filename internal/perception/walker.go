package perception

import (
	"container/heap"
	"math"

	"github.com/KirkDiggler/rpg-perception/internal/entities"
	"github.com/KirkDiggler/rpg-perception/internal/geometry"
)

// MinVisibleStrength is the faintest signal that still counts as seen.
// A cell whose strength falls below it is neither reported nor explored.
const MinVisibleStrength = 0.1

// Observation is one character seen by an observer
type Observation struct {
	Character *entities.Character
	Room      *entities.Room
	Strength  float64 // in (0,1]
	Distance  float64 // between the observer's room and Room
}

type frontierCell struct {
	room     *entities.Room
	incoming geometry.Vector // step taken to reach room, zero for the origin
	entered  bool            // false only for the origin
	strength float64
	seq      int
}

// frontier is a max-heap on strength, ties broken by discovery order
type frontier []*frontierCell

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].strength != f[j].strength {
		return f[i].strength > f[j].strength
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierCell)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	cell := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return cell
}

// FindVisibleActors walks the portal graph outwards from the observer's room
// and returns every other character whose room is reached with a strength of
// at least MinVisibleStrength. Cells are explored strongest first, so each
// is reached through its clearest path and visited at most once. The walk
// owns its visited set; concurrent calls never share state.
func FindVisibleActors(observer *entities.Character) []Observation {
	if observer == nil || observer.Room == nil {
		return nil
	}

	w := &walk{
		observer: observer,
		origin:   observer.Room,
		visited:  make(map[*entities.Room]bool),
	}
	return w.run()
}

type walk struct {
	observer *entities.Character
	origin   *entities.Room
	visited  map[*entities.Room]bool
	queue    frontier
	seq      int
	found    []Observation
}

func (w *walk) push(cell *frontierCell) {
	cell.seq = w.seq
	w.seq++
	heap.Push(&w.queue, cell)
}

func (w *walk) run() []Observation {
	w.push(&frontierCell{
		room:     w.origin,
		strength: w.origin.EventMultiplier(entities.ChannelVisual),
	})

	for w.queue.Len() > 0 {
		cell := heap.Pop(&w.queue).(*frontierCell)
		if w.visited[cell.room] || cell.strength < MinVisibleStrength {
			continue
		}
		w.visited[cell.room] = true
		w.collect(cell)
		w.expand(cell)
	}

	return w.found
}

func (w *walk) collect(cell *frontierCell) {
	distance := geometry.Distance(cell.room.Position, w.origin.Position)
	for _, c := range cell.room.ActorsPresent() {
		if c == w.observer {
			continue
		}
		w.found = append(w.found, Observation{
			Character: c,
			Room:      cell.room,
			Strength:  cell.strength,
			Distance:  distance,
		})
	}
}

func (w *walk) expand(cell *frontierCell) {
	room := cell.room
	for _, portal := range room.Portals {
		if !portal.CanSeeThrough(room) {
			continue
		}
		next := portal.OtherSide(room)
		if next == nil || w.visited[next] {
			continue
		}

		step := next.Position.Sub(room.Position)
		if !w.admits(cell, next, step) {
			continue
		}
		if step.Z > 0 && room.HasFlag(entities.HasCeiling) {
			continue
		}
		if step.Z < 0 && room.HasFlag(entities.HasFloor) {
			continue
		}

		w.push(&frontierCell{
			room:     next,
			incoming: step,
			entered:  true,
			strength: cell.strength *
				next.EventMultiplier(entities.ChannelVisual) *
				portal.EventMultiplier(entities.ChannelVisual),
		})
	}
}

// admits applies directional pruning. Sight passes through a walled room only
// in a straight line; elsewhere the next room must lie inside the observer's
// forward cone.
func (w *walk) admits(cell *frontierCell, next *entities.Room, step geometry.Vector) bool {
	if cell.room.HasFlag(entities.HasWalls) && cell.entered {
		return cell.incoming.SameHorizontalAxis(step)
	}
	angle := geometry.SignedAngle(w.observer.Facing, next.Position.Sub(w.origin.Position))
	return math.Abs(angle) < AngleOver
}
