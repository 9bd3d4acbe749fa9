package sim

import "testing"

func TestStoreSpawnAssignsSequentialIDs(t *testing.T) {
	s := NewStore(0)
	id1 := s.Spawn(&Entity{Kind: KindBullet})
	id2 := s.Spawn(&Entity{Kind: KindEnemy})
	if id1 == 0 || id2 == 0 {
		t.Fatal("spawn returned zero id")
	}
	if id2 <= id1 {
		t.Errorf("ids not increasing: %d then %d", id1, id2)
	}
}

func TestStoreIDsNeverReused(t *testing.T) {
	s := NewStore(0)
	id1 := s.Spawn(&Entity{Kind: KindBullet})
	s.Remove(id1)
	s.Flush()
	id2 := s.Spawn(&Entity{Kind: KindBullet})
	if id2 == id1 {
		t.Errorf("id %d reused after removal", id1)
	}
}

func TestStoreRemoveIsDeferred(t *testing.T) {
	s := NewStore(0)
	id := s.Spawn(&Entity{Kind: KindEnemy})
	e, _ := s.Get(id)
	s.Remove(id)

	if _, ok := s.Get(id); ok {
		t.Error("removed entity still visible via Get")
	}
	if s.Count(KindEnemy) != 0 {
		t.Errorf("count after remove = %d, want 0", s.Count(KindEnemy))
	}
	if e.Alive() {
		t.Error("removed entity reports alive")
	}

	// Double remove is a no-op.
	s.Remove(id)
	if s.Len() != 0 {
		t.Errorf("len after double remove = %d, want 0", s.Len())
	}
	s.Flush()
}

func TestStoreEachInsertionOrder(t *testing.T) {
	s := NewStore(0)
	want := []ID{
		s.Spawn(&Entity{Kind: KindEnemy}),
		s.Spawn(&Entity{Kind: KindEnemy}),
		s.Spawn(&Entity{Kind: KindEnemy}),
	}
	var got []ID
	s.Each(KindEnemy, func(e *Entity) bool {
		got = append(got, e.ID)
		return true
	})
	if len(got) != len(want) {
		t.Fatalf("visited %d entities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("iteration order[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStoreEachSkipsRemovedAndFiltersKind(t *testing.T) {
	s := NewStore(0)
	s.Spawn(&Entity{Kind: KindBullet})
	id := s.Spawn(&Entity{Kind: KindEnemy})
	s.Spawn(&Entity{Kind: KindEnemy})
	s.Remove(id)

	count := 0
	s.Each(KindEnemy, func(e *Entity) bool {
		count++
		return true
	})
	if count != 1 {
		t.Errorf("visited %d enemies, want 1", count)
	}

	all := 0
	s.Each(KindNone, func(e *Entity) bool {
		all++
		return true
	})
	if all != 2 {
		t.Errorf("visited %d total, want 2", all)
	}
}

func TestStoreSpawnDuringIterationNotVisited(t *testing.T) {
	s := NewStore(0)
	s.Spawn(&Entity{Kind: KindEnemy})
	visited := 0
	s.Each(KindEnemy, func(e *Entity) bool {
		visited++
		if visited == 1 {
			s.Spawn(&Entity{Kind: KindEnemy})
		}
		return true
	})
	if visited != 1 {
		t.Errorf("visited %d entities, want 1 (mid-iteration spawn deferred)", visited)
	}
	if s.Count(KindEnemy) != 2 {
		t.Errorf("count = %d, want 2", s.Count(KindEnemy))
	}
}

func TestStoreCapRejectsSpawn(t *testing.T) {
	s := NewStore(2)
	s.Spawn(&Entity{Kind: KindBullet})
	s.Spawn(&Entity{Kind: KindBullet})
	if id := s.Spawn(&Entity{Kind: KindBullet}); id != 0 {
		t.Errorf("spawn over cap returned id %d, want 0", id)
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
}

func TestStoreFlushCompacts(t *testing.T) {
	s := NewStore(0)
	var ids []ID
	for i := 0; i < 10; i++ {
		ids = append(ids, s.Spawn(&Entity{Kind: KindBullet}))
	}
	for _, id := range ids[:5] {
		s.Remove(id)
	}
	s.Flush()
	if s.Len() != 5 {
		t.Errorf("len after flush = %d, want 5", s.Len())
	}
	count := 0
	s.Each(KindBullet, func(e *Entity) bool {
		count++
		return true
	})
	if count != 5 {
		t.Errorf("visited %d after flush, want 5", count)
	}
}

func TestStoreFirst(t *testing.T) {
	s := NewStore(0)
	if s.First(KindBoss) != nil {
		t.Error("First on empty store should be nil")
	}
	id := s.Spawn(&Entity{Kind: KindBoss})
	boss := s.First(KindBoss)
	if boss == nil || boss.ID != id {
		t.Error("First did not return the spawned boss")
	}
}
