package engine

import (
	"testing"

	"github.com/lixenwraith/neon-serpent/core"
)

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 5; i++ {
		s.Set(core.Entity(i), i*10)
	}

	entities := s.All()
	for i, e := range entities {
		if e != core.Entity(i+1) {
			t.Fatalf("iteration order broken at %d: got %d", i, e)
		}
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore[string]()
	for i := 1; i <= 5; i++ {
		s.Set(core.Entity(i), "v")
	}
	s.Remove(3)

	want := []core.Entity{1, 2, 4, 5}
	got := s.All()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStoreRemoveBatchPreservesSurvivorOrder(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 8; i++ {
		s.Set(core.Entity(i), i)
	}
	s.RemoveBatch([]core.Entity{2, 5, 7, 99})

	want := []core.Entity{1, 3, 4, 6, 8}
	got := s.All()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if s.Has(5) {
		t.Error("removed entity still present")
	}
}

func TestStoreSetOverwriteKeepsPosition(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(1, 11)

	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
	if got := s.All()[0]; got != 1 {
		t.Errorf("overwrite moved entity to position of %d", got)
	}
	if v, _ := s.Get(1); v != 11 {
		t.Errorf("Get(1) = %d, want 11", v)
	}
}

func TestStoreRangeEarlyStop(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 5; i++ {
		s.Set(core.Entity(i), i)
	}

	visited := 0
	s.Range(func(e core.Entity, v int) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}

func TestWorldDestroyEntityRemovesEverywhere(t *testing.T) {
	w := NewWorld(1)
	e := SpawnPlayer(w)

	w.DestroyEntity(e)
	if w.Component.Motion.Has(e) || w.Component.Health.Has(e) || w.Component.Body.Has(e) {
		t.Error("components survived DestroyEntity")
	}
}

func TestWorldClearEntitiesKeepsResources(t *testing.T) {
	w := NewWorld(1)
	SpawnPlayer(w)
	w.Resource.Match.Score = 500

	w.ClearEntities()
	if w.Component.Motion.Count() != 0 {
		t.Error("entities survived ClearEntities")
	}
	if w.Resource.Match.Score != 500 {
		t.Error("resources must survive ClearEntities")
	}
	if w.Resource.Player.Entity != core.NoEntity {
		t.Error("stale player handle survived ClearEntities")
	}
}
