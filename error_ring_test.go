package relay

import (
	"errors"
	"testing"
)

func TestErrorRing_NilSafe(t *testing.T) {
	var r *errorRing

	r.push(errors.New("ignored"))
	r.clear()

	if r.all() != nil {
		t.Error("expected nil from nil ring")
	}
}

func TestErrorRing_NonPositiveCapacity(t *testing.T) {
	if r := newErrorRing(0); r != nil {
		t.Error("expected nil ring for capacity 0")
	}
	if r := newErrorRing(-1); r != nil {
		t.Error("expected nil ring for negative capacity")
	}
}

func TestErrorRing_OldestFirst(t *testing.T) {
	r := newErrorRing(3)

	r.push(errors.New("first"))
	r.push(errors.New("second"))

	errs := r.all()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Error() != "first" || errs[1].Error() != "second" {
		t.Errorf("expected [first second], got %v", errs)
	}
}

func TestErrorRing_WrapsAndEvictsOldest(t *testing.T) {
	r := newErrorRing(3)

	r.push(errors.New("first"))
	r.push(errors.New("second"))
	r.push(errors.New("third"))
	r.push(errors.New("fourth"))

	errs := r.all()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	if errs[0].Error() != "second" {
		t.Errorf("expected oldest entry to be evicted, got %v first", errs[0])
	}
	if errs[2].Error() != "fourth" {
		t.Errorf("expected newest entry last, got %v", errs[2])
	}
}

func TestErrorRing_ManyWraps(t *testing.T) {
	r := newErrorRing(2)

	for i := 0; i < 10; i++ {
		r.push(errors.New("err"))
	}

	if errs := r.all(); len(errs) != 2 {
		t.Errorf("expected 2 errors after repeated wraps, got %d", len(errs))
	}
}

func TestErrorRing_Clear(t *testing.T) {
	r := newErrorRing(3)

	r.push(errors.New("first"))
	r.push(errors.New("second"))
	r.clear()

	if errs := r.all(); errs != nil {
		t.Errorf("expected nil after clear, got %v", errs)
	}

	r.push(errors.New("after"))

	errs := r.all()
	if len(errs) != 1 || errs[0].Error() != "after" {
		t.Errorf("expected [after] following clear, got %v", errs)
	}
}

func TestErrorRing_EmptyAll(t *testing.T) {
	r := newErrorRing(3)

	if errs := r.all(); errs != nil {
		t.Errorf("expected nil for empty ring, got %v", errs)
	}
}

func TestErrorRing_CapacityOne(t *testing.T) {
	r := newErrorRing(1)

	r.push(errors.New("first"))
	r.push(errors.New("second"))

	errs := r.all()
	if len(errs) != 1 || errs[0].Error() != "second" {
		t.Errorf("expected newest entry to replace the old, got %v", errs)
	}
}
