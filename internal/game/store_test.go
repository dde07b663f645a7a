package game

import "testing"

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	store.Set("1234", Room{
		Code:    "1234",
		HostID:  "h1",
		Players: []Player{{ID: "h1", Name: "Host", Tile: 1}},
	})

	room, ok := store.Get("1234")
	if !ok {
		t.Fatal("expected room")
	}
	room.Players[0].Tile = 99

	again, _ := store.Get("1234")
	if again.Players[0].Tile != 1 {
		t.Fatalf("store leaked shared state: tile %d", again.Players[0].Tile)
	}
}

func TestMemoryStoreGetDerivesIsHost(t *testing.T) {
	store := NewMemoryStore()
	store.Set("1234", Room{
		Code:   "1234",
		HostID: "h1",
		Players: []Player{
			{ID: "h1", Name: "Host"},
			{ID: "p2", Name: "Bob", IsHost: true}, // lies
		},
	})

	room, _ := store.Get("1234")
	if !room.Players[0].IsHost || room.Players[1].IsHost {
		t.Fatalf("isHost not derived from hostId: %+v", room.Players)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	store.Set("1234", Room{Code: "1234"})
	store.Delete("1234")

	if _, ok := store.Get("1234"); ok {
		t.Fatal("expected room gone")
	}
	if len(store.GetAll()) != 0 {
		t.Fatal("expected empty snapshot")
	}
}
