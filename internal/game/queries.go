package game

// Pure lookups over a state snapshot. Misses return ok=false, never panic.

func (s *GameState) FindRoom(roomID string) (Room, bool) {
	return roomByID(s.Rooms, roomID)
}

func (s *GameState) FindNPC(npcID string) (NPC, bool) {
	for _, npc := range s.NPCs {
		if npc.ID == npcID {
			return npc, true
		}
	}
	return NPC{}, false
}

func (s *GameState) FindItem(itemID string) (Item, bool) {
	for _, item := range s.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return Item{}, false
}

func (s *GameState) findAlibiGroup(groupID string) (AlibiGroup, bool) {
	for _, group := range s.AlibiGroups {
		if group.ID == groupID {
			return group, true
		}
	}
	return AlibiGroup{}, false
}

// NPCsInRoom lists suspects currently standing in the room.
func (s *GameState) NPCsInRoom(roomID string) []NPC {
	out := make([]NPC, 0, len(s.NPCs))
	for _, npc := range s.NPCs {
		if npc.CurrentRoom == roomID {
			out = append(out, npc)
		}
	}
	return out
}

// ItemsInRoom lists items physically present in the room, excluding anything
// already in the player's inventory.
func (s *GameState) ItemsInRoom(roomID string) []Item {
	out := make([]Item, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Room == roomID && !s.InInventory(item.ID) {
			out = append(out, item)
		}
	}
	return out
}

func (s *GameState) InInventory(itemID string) bool {
	for _, id := range s.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// CanMoveTo reports whether the current room has an outgoing door to the
// target. Doors are directed; reverse traversal needs its own door.
func (s *GameState) CanMoveTo(targetRoomID string) bool {
	current, ok := s.FindRoom(s.CurrentRoom)
	if !ok {
		return false
	}
	for _, door := range current.Doors {
		if door.ToRoom == targetRoomID {
			return true
		}
	}
	return false
}
