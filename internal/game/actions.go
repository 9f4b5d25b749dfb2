package game

// Transitions mutate the state in place when their preconditions hold and
// otherwise decline without touching anything. Declines are not errors:
// front ends are expected to gate unavailable actions, and any caller that
// does not can inspect the typed reason instead.

type DeclineReason string

const (
	DeclinedNotAdjacent      DeclineReason = "not_adjacent"
	DeclinedNoSelection      DeclineReason = "no_selection"
	DeclinedSelectionNotItem DeclineReason = "selection_not_item"
	DeclinedSelectionNotNPC  DeclineReason = "selection_not_npc"
	DeclinedNotTakable       DeclineReason = "not_takable"
	DeclinedAlreadyHeld      DeclineReason = "already_held"
	DeclinedEmptyInventory   DeclineReason = "empty_inventory"
	DeclinedWrongPhase       DeclineReason = "wrong_phase"
	DeclinedNotFound         DeclineReason = "not_found"
)

type ActionResult struct {
	Applied  bool
	Declined DeclineReason
	Message  string
}

func applied(message string) ActionResult {
	return ActionResult{Applied: true, Message: message}
}

func declined(reason DeclineReason) ActionResult {
	return ActionResult{Declined: reason}
}

// Select marks the entity the next action applies to. At most one entity is
// selected at a time.
func (s *GameState) Select(kind SelectionKind, id string) ActionResult {
	switch kind {
	case SelectionNPC:
		if _, ok := s.FindNPC(id); !ok {
			return declined(DeclinedNotFound)
		}
	case SelectionItem:
		if _, ok := s.FindItem(id); !ok {
			return declined(DeclinedNotFound)
		}
	default:
		return declined(DeclinedNotFound)
	}
	s.Selection = &Selection{Kind: kind, ID: id}
	return applied("")
}

func (s *GameState) Deselect() ActionResult {
	s.Selection = nil
	return applied("")
}

// MoveTo walks through a door into an adjacent room, clearing any selection.
func (s *GameState) MoveTo(targetRoomID string) ActionResult {
	if !s.CanMoveTo(targetRoomID) {
		return declined(DeclinedNotAdjacent)
	}
	room, ok := s.FindRoom(targetRoomID)
	if !ok {
		return declined(DeclinedNotFound)
	}
	s.CurrentRoom = targetRoomID
	s.Selection = nil
	message := moveMessage(room)
	s.appendMessage(message)
	return applied(message)
}

// Examine describes the selected item. Message log aside, nothing changes.
func (s *GameState) Examine() ActionResult {
	item, result := s.selectedItem()
	if !result.Applied {
		return result
	}
	message := examineMessage(item)
	s.appendMessage(message)
	return applied(message)
}

// Take moves the selected item into the inventory, once.
func (s *GameState) Take() ActionResult {
	item, result := s.selectedItem()
	if !result.Applied {
		return result
	}
	if !item.CanTake {
		return declined(DeclinedNotTakable)
	}
	if s.InInventory(item.ID) {
		return declined(DeclinedAlreadyHeld)
	}
	s.Inventory = append(s.Inventory, item.ID)
	s.Selection = nil
	message := takeMessage(item)
	s.appendMessage(message)
	return applied(message)
}

// Question asks the selected suspect for a clue. Selection is retained so
// the player can press further.
func (s *GameState) Question() ActionResult {
	npc, result := s.selectedNPC()
	if !result.Applied {
		return result
	}
	message := s.QuestionResponse(npc)
	s.appendMessage(message)
	return applied(message)
}

// Alibi asks the selected suspect where they were.
func (s *GameState) Alibi() ActionResult {
	npc, result := s.selectedNPC()
	if !result.Applied {
		return result
	}
	message := s.AlibiResponse(npc)
	s.appendMessage(message)
	return applied(message)
}

// Assemble summons every suspect to the player's room and opens the
// accusation phase. Requires evidence in hand.
func (s *GameState) Assemble() ActionResult {
	if len(s.Inventory) == 0 {
		return declined(DeclinedEmptyInventory)
	}
	for i := range s.NPCs {
		s.NPCs[i].CurrentRoom = s.CurrentRoom
	}
	s.Phase = PhaseAssembled
	message := assembleMessage()
	s.appendMessage(message)
	return applied(message)
}

// Accuse resolves the final accusation. Winning takes all three: the right
// suspect, accused in the murder room, with the murder weapon in hand.
func (s *GameState) Accuse() ActionResult {
	if s.Phase != PhaseAssembled {
		return declined(DeclinedWrongPhase)
	}
	accused, result := s.selectedNPC()
	if !result.Applied {
		return result
	}
	currentRoom, roomOK := s.FindRoom(s.CurrentRoom)
	weapon, weaponOK := s.FindItem(s.MurderWeapon)
	if !roomOK || !weaponOK {
		return declined(DeclinedNotFound)
	}

	correctMurderer := accused.ID == s.Murderer
	correctRoom := s.CurrentRoom == s.MurderRoom
	hasWeapon := s.InInventory(s.MurderWeapon)

	var message string
	if correctMurderer && correctRoom && hasWeapon {
		s.Phase = PhaseWon
		message = winMessage(accused.Name, s.Victim, weapon.Name, currentRoom.Name)
	} else {
		s.Phase = PhaseLost
		message = loseMessage(accused.Name)
	}
	s.appendMessage(message)
	return applied(message)
}

func (s *GameState) selectedItem() (Item, ActionResult) {
	if s.Selection == nil {
		return Item{}, declined(DeclinedNoSelection)
	}
	if s.Selection.Kind != SelectionItem {
		return Item{}, declined(DeclinedSelectionNotItem)
	}
	item, ok := s.FindItem(s.Selection.ID)
	if !ok {
		return Item{}, declined(DeclinedNotFound)
	}
	return item, applied("")
}

func (s *GameState) selectedNPC() (NPC, ActionResult) {
	if s.Selection == nil {
		return NPC{}, declined(DeclinedNoSelection)
	}
	if s.Selection.Kind != SelectionNPC {
		return NPC{}, declined(DeclinedSelectionNotNPC)
	}
	npc, ok := s.FindNPC(s.Selection.ID)
	if !ok {
		return NPC{}, declined(DeclinedNotFound)
	}
	return npc, applied("")
}

// DebugSummary exposes the planted solution, for the hidden debug command.
func (s *GameState) DebugSummary() []string {
	murdererName := "Unknown"
	if npc, ok := s.FindNPC(s.Murderer); ok {
		murdererName = npc.Name
	}
	roomName := "Unknown"
	if room, ok := s.FindRoom(s.MurderRoom); ok {
		roomName = room.Name
	}
	weaponName := "Unknown"
	if item, ok := s.FindItem(s.MurderWeapon); ok {
		weaponName = item.Name
	}
	return []string{
		"=== DEBUG INFO ===",
		"Victim: " + s.Victim,
		"Murderer: " + murdererName,
		"Murder Room: " + roomName,
		"Murder Weapon: " + weaponName,
		"==================",
	}
}
