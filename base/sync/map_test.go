package sync_test

import (
	gosync "sync"
	"testing"

	"github.com/gx-org/tiletype/base/sync"
)

func TestMap(t *testing.T) {
	var m sync.Map[string, int]
	if !m.Empty() {
		t.Errorf("new map is not empty")
	}
	if _, ok := m.Load("a"); ok {
		t.Errorf("found key a in an empty map")
	}
	if got, loaded := m.LoadOrStore("a", 1); loaded || got != 1 {
		t.Errorf("LoadOrStore(a, 1): got %d,%v but want 1,false", got, loaded)
	}
	if got, loaded := m.LoadOrStore("a", 2); !loaded || got != 1 {
		t.Errorf("LoadOrStore(a, 2): got %d,%v but want 1,true", got, loaded)
	}
	m.LoadOrStore("b", 3)
	if got, ok := m.Load("b"); !ok || got != 3 {
		t.Errorf("Load(b): got %d,%v but want 3,true", got, ok)
	}
	if m.Size() != 2 {
		t.Errorf("got size %d but want 2", m.Size())
	}
	sum := 0
	for v := range m.Values() {
		sum += v
	}
	if sum != 4 {
		t.Errorf("got sum of values %d but want 4", sum)
	}
	for k, v := range m.Iter() {
		if want, _ := m.Load(k); want != v {
			t.Errorf("key %s: iterated %d but loaded %d", k, v, want)
		}
	}
}

func TestLoadOrStoreRace(t *testing.T) {
	const numGoroutines = 32
	var m sync.Map[string, *int]
	results := make([]*int, numGoroutines)
	var wg gosync.WaitGroup
	for i := range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := i
			results[i], _ = m.LoadOrStore("key", &v)
		}()
	}
	wg.Wait()
	for i, r := range results {
		if r != results[0] {
			t.Errorf("goroutine %d got %p but goroutine 0 got %p", i, r, results[0])
		}
	}
	if m.Size() != 1 {
		t.Errorf("got size %d but want 1", m.Size())
	}
}
