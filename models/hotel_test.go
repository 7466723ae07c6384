package models

import "testing"

func TestMinRoomPrice(t *testing.T) {
	if _, ok := MinRoomPrice(nil); ok {
		t.Fatal("no room types must report no minimum")
	}

	min, ok := MinRoomPrice([]RoomType{
		{Type: "deluxe", Price: 320},
		{Type: "standard", Price: 150},
		{Type: "suite", Price: 800},
	})
	if !ok || min != 150 {
		t.Fatalf("got %v (ok=%v), want 150", min, ok)
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		status string
		review bool
		toggle bool
	}{
		{StatusPending, true, false},
		{StatusApproved, false, true},
		{StatusRejected, false, false},
		{StatusOffline, false, true},
	}
	for _, tc := range cases {
		h := Hotel{Status: tc.status}
		if h.CanReview() != tc.review {
			t.Errorf("%s: CanReview=%v, want %v", tc.status, h.CanReview(), tc.review)
		}
		if h.CanToggle() != tc.toggle {
			t.Errorf("%s: CanToggle=%v, want %v", tc.status, h.CanToggle(), tc.toggle)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected, StatusOffline} {
		if !ValidStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidStatus("archived") {
		t.Error("archived should be invalid")
	}
}
