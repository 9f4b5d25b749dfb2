package game

import "testing"

func TestBlackwoodManorFullyTraversable(t *testing.T) {
	layout := BlackwoodManor()
	byID := map[string]Room{}
	for _, room := range layout.Rooms {
		byID[room.ID] = room
	}

	visited := map[string]bool{layout.StartingRoom: true}
	queue := []string{layout.StartingRoom}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, door := range byID[current].Doors {
			if !visited[door.ToRoom] {
				visited[door.ToRoom] = true
				queue = append(queue, door.ToRoom)
			}
		}
	}

	for _, room := range layout.Rooms {
		if !visited[room.ID] {
			t.Fatalf("room %s is unreachable from the %s", room.ID, layout.StartingRoom)
		}
	}
}

func TestBlackwoodManorDoorsPaired(t *testing.T) {
	layout := BlackwoodManor()
	byID := map[string]Room{}
	for _, room := range layout.Rooms {
		byID[room.ID] = room
	}

	for _, room := range layout.Rooms {
		for _, door := range room.Doors {
			target, ok := byID[door.ToRoom]
			if !ok {
				t.Fatalf("door in %s leads to unknown room %s", room.ID, door.ToRoom)
			}
			back := false
			for _, reverse := range target.Doors {
				if reverse.ToRoom == room.ID {
					back = true
				}
			}
			if !back {
				t.Fatalf("door %s -> %s has no return door", room.ID, door.ToRoom)
			}
		}
	}
}

func TestBlackwoodManorRoomIDsUnique(t *testing.T) {
	layout := BlackwoodManor()
	seen := map[string]bool{}
	for _, room := range layout.Rooms {
		if seen[room.ID] {
			t.Fatalf("duplicate room id %s", room.ID)
		}
		seen[room.ID] = true
	}
	if len(layout.Rooms) != 12 {
		t.Fatalf("expected 12 rooms, got %d", len(layout.Rooms))
	}
	if _, ok := seen[layout.StartingRoom]; !ok {
		t.Fatalf("starting room %s missing from layout", layout.StartingRoom)
	}
}
