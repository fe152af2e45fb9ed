package coord

import "testing"

func TestQueuePutGet(t *testing.T) {
	q := NewQueue[int](4)
	q.Put(1)
	q.Put(2)
	q.Done()

	var got []int
	for {
		v, ok := q.Get()
		if !ok {
			break
		}
		got = append(got, v)
	}

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected drain order: %v", got)
	}
}

func TestQueueGetAfterDoneOnEmpty(t *testing.T) {
	q := NewQueue[string](1)
	q.Done()

	_, ok := q.Get()
	if ok {
		t.Fatalf("expected ok=false draining an empty, closed queue")
	}
}
