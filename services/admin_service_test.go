package services

import (
	"context"
	"errors"
	"testing"
)

func TestReview_RejectNeedsReason(t *testing.T) {
	s := &AdminService{}

	for _, reason := range []string{"", "   ", " \t\n "} {
		err := s.Review(context.Background(), 1, ActionReject, reason)
		if !errors.Is(err, ErrReasonNeeded) {
			t.Errorf("reason %q: got %v, want ErrReasonNeeded", reason, err)
		}
	}
}

func TestReview_UnknownAction(t *testing.T) {
	s := &AdminService{}

	err := s.Review(context.Background(), 1, "archive", "")
	if !errors.Is(err, ErrBadAction) {
		t.Fatalf("got %v, want ErrBadAction", err)
	}
}
