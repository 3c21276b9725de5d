package staff

import (
	"context"
	"errors"
	"testing"
)

func strptr(s string) *string { return &s }

func TestGet_UnwrittenRoomDefaults(t *testing.T) {
	svc := NewService(NewMemRepo())

	a, err := svc.Get(context.Background(), "obs1")
	if err != nil {
		t.Fatal(err)
	}
	if a.Nurse != "" || a.Tens != "" {
		t.Errorf("expected blank staff, got %+v", a)
	}
	if a.Shift != ShiftDay {
		t.Errorf("expected default day shift, got %q", a.Shift)
	}
}

func TestGet_UnknownRoom(t *testing.T) {
	svc := NewService(NewMemRepo())
	if _, err := svc.Get(context.Background(), "icu"); !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("expected ErrUnknownRoom, got %v", err)
	}
}

func TestApply_LazyCreateAndMerge(t *testing.T) {
	svc := NewService(NewMemRepo())
	ctx := context.Background()

	// First write creates the assignment.
	a, err := svc.Apply(ctx, "obs1", Update{Nurse: strptr("María")})
	if err != nil {
		t.Fatal(err)
	}
	if a.Nurse != "María" || a.Tens != "" || a.Shift != ShiftDay {
		t.Errorf("got %+v", a)
	}

	// Second write touches only tens; nurse survives.
	a, err = svc.Apply(ctx, "obs1", Update{Tens: strptr("Pedro")})
	if err != nil {
		t.Fatal(err)
	}
	if a.Nurse != "María" {
		t.Errorf("merge lost the nurse: %+v", a)
	}
	if a.Tens != "Pedro" {
		t.Errorf("tens not applied: %+v", a)
	}

	// Shift change keeps both names.
	a, err = svc.Apply(ctx, "obs1", Update{Shift: strptr(ShiftNight)})
	if err != nil {
		t.Fatal(err)
	}
	if a.Nurse != "María" || a.Tens != "Pedro" || a.Shift != ShiftNight {
		t.Errorf("got %+v", a)
	}
}

func TestApply_ClearingAFieldIsExplicit(t *testing.T) {
	svc := NewService(NewMemRepo())
	ctx := context.Background()

	if _, err := svc.Apply(ctx, "obs1", Update{Nurse: strptr("María")}); err != nil {
		t.Fatal(err)
	}
	a, err := svc.Apply(ctx, "obs1", Update{Nurse: strptr("")})
	if err != nil {
		t.Fatal(err)
	}
	if a.Nurse != "" {
		t.Errorf("explicit blank should clear the field, got %q", a.Nurse)
	}
}

func TestApply_InvalidShift(t *testing.T) {
	svc := NewService(NewMemRepo())

	_, err := svc.Apply(context.Background(), "obs1", Update{Shift: strptr("Tarde")})
	if !errors.Is(err, ErrInvalidShift) {
		t.Errorf("expected ErrInvalidShift, got %v", err)
	}
}

func TestApply_PublishesSnapshot(t *testing.T) {
	svc := NewService(NewMemRepo())
	var published string
	svc.SetNotifier(notifierFunc(func(roomID string, _ interface{}) {
		published = roomID
	}))

	if _, err := svc.Apply(context.Background(), "obs2", Update{Nurse: strptr("María")}); err != nil {
		t.Fatal(err)
	}
	if published != "obs2" {
		t.Errorf("expected snapshot for obs2, got %q", published)
	}
}

type notifierFunc func(roomID string, payload interface{})

func (f notifierFunc) PublishSnapshot(roomID string, payload interface{}) { f(roomID, payload) }

func TestAll_CoversEveryRoom(t *testing.T) {
	svc := NewService(NewMemRepo())
	ctx := context.Background()

	if _, err := svc.Apply(ctx, "reanimador", Update{Nurse: strptr("María")}); err != nil {
		t.Fatal(err)
	}

	all, err := svc.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Fatalf("expected all 5 rooms, got %d", len(all))
	}
	if all["reanimador"].Nurse != "María" {
		t.Errorf("stored assignment missing: %+v", all["reanimador"])
	}
	if all["obs1"].Shift != ShiftDay {
		t.Errorf("unwritten room should default to day shift: %+v", all["obs1"])
	}
}
