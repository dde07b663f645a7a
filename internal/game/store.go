package game

// Store is the authoritative mapping from room code to room. It holds
// no transition logic; all mutation flows through the coordinator,
// which is also the only goroutine allowed to touch it, so
// implementations need no locking.
type Store interface {
	Get(code string) (Room, bool)
	GetAll() map[string]Room
	Set(code string, room Room)
	Delete(code string)
}

// MemoryStore keeps rooms in process memory. State does not survive a
// restart. Get and GetAll hand out deep copies; callers mutate their
// copy and Set it back.
type MemoryStore struct {
	rooms map[string]Room
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string]Room)}
}

func (s *MemoryStore) Get(code string) (Room, bool) {
	room, ok := s.rooms[code]
	if !ok {
		return Room{}, false
	}
	return room.clone(), true
}

func (s *MemoryStore) GetAll() map[string]Room {
	out := make(map[string]Room, len(s.rooms))
	for code, room := range s.rooms {
		out[code] = room.clone()
	}
	return out
}

func (s *MemoryStore) Set(code string, room Room) {
	s.rooms[code] = room
}

func (s *MemoryStore) Delete(code string) {
	delete(s.rooms, code)
}
