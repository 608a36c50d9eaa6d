package vibrant

import (
	"reflect"
	"testing"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	om := NewOrderedMap[string, int]()
	om.Set("b", 1)
	om.Set("a", 2)
	om.Set("c", 3)
	om.Set("a", 20)

	if got, want := om.Keys(), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, ok := om.Get("a"); !ok || v != 20 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := om.Get("z"); ok {
		t.Error("Get(z) should miss")
	}
	if om.Len() != 3 {
		t.Errorf("Len() = %d, want 3", om.Len())
	}

	var values []int
	om.Iterate(func(_ string, v int) { values = append(values, v) })
	if want := []int{1, 20, 3}; !reflect.DeepEqual(values, want) {
		t.Errorf("Iterate values = %v, want %v", values, want)
	}
}

func TestOrderedMapKeysIsCopy(t *testing.T) {
	om := NewOrderedMap[int, bool]()
	om.Set(1, true)
	keys := om.Keys()
	keys[0] = 99
	if om.Keys()[0] != 1 {
		t.Error("modifying Keys() result changed the map")
	}
}

func TestDedupTable(t *testing.T) {
	table := []byte{
		1, 2, 3, 255,
		4, 5, 6, 255,
		1, 2, 3, 0,
		7, 8, 9, 255,
		4, 5, 6, 10,
	}
	colors, idx := dedupTable(table)
	if want := []RGB{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v, want %v", colors, want)
	}
	if want := []int{0, 1, 0, 2, 1}; !reflect.DeepEqual(idx, want) {
		t.Errorf("index = %v, want %v", idx, want)
	}
}
