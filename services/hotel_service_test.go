package services

import (
	"errors"
	"testing"

	"gorm.io/datatypes"

	"stayhub-backend/models"
)

func hotelWith(rooms []models.RoomType, price float64) *models.Hotel {
	return &models.Hotel{
		Name:      "Test Hotel",
		Address:   "Somewhere 1",
		Star:      3,
		RoomTypes: datatypes.NewJSONSlice(rooms),
		Price:     price,
	}
}

func TestNormalize_FillsPriceFromCheapestRoom(t *testing.T) {
	h := hotelWith([]models.RoomType{
		{Type: "standard", Price: 150},
		{Type: "deluxe", Price: 320},
	}, 0)

	if err := normalize(h); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if h.Price != 150 {
		t.Fatalf("price = %v, want 150", h.Price)
	}
}

func TestNormalize_AcceptsMatchingPrice(t *testing.T) {
	h := hotelWith([]models.RoomType{{Type: "standard", Price: 99}}, 99)
	if err := normalize(h); err != nil {
		t.Fatalf("normalize: %v", err)
	}
}

func TestNormalize_RejectsPriceMismatch(t *testing.T) {
	h := hotelWith([]models.RoomType{
		{Type: "standard", Price: 150},
		{Type: "deluxe", Price: 320},
	}, 320)

	if err := normalize(h); !errors.Is(err, ErrPriceMismatch) {
		t.Fatalf("got %v, want ErrPriceMismatch", err)
	}
}

func TestNormalize_RejectsEmptyRoomTypes(t *testing.T) {
	h := hotelWith(nil, 100)
	if err := normalize(h); !errors.Is(err, ErrNoRoomTypes) {
		t.Fatalf("got %v, want ErrNoRoomTypes", err)
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func rejectedHotel() *models.Hotel {
	h := hotelWith([]models.RoomType{
		{Type: "standard", Price: 150},
		{Type: "deluxe", Price: 320},
	}, 150)
	h.Status = models.StatusRejected
	h.RejectReason = strPtr("photos missing")
	return h
}

func TestApplyUpdate_NameOnlyRevertsToPending(t *testing.T) {
	h := rejectedHotel()

	err := applyUpdate(h, HotelUpdate{Name: strPtr("Renamed Hotel")})
	if err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}

	if h.Name != "Renamed Hotel" {
		t.Fatalf("name = %q, want the new name", h.Name)
	}
	if h.Status != models.StatusPending {
		t.Fatalf("status = %q, want pending after any edit", h.Status)
	}
	if h.RejectReason != nil {
		t.Fatalf("reject_reason = %q, want cleared", *h.RejectReason)
	}
	if h.Price != 150 || len(h.RoomTypes) != 2 {
		t.Fatalf("untouched fields changed: price=%v rooms=%d", h.Price, len(h.RoomTypes))
	}
}

func TestApplyUpdate_NewRoomsRecomputePrice(t *testing.T) {
	h := rejectedHotel()

	rooms := []models.RoomType{{Type: "suite", Price: 500}}
	if err := applyUpdate(h, HotelUpdate{RoomTypes: &rooms}); err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}
	if h.Price != 500 {
		t.Fatalf("price = %v, want recomputed 500", h.Price)
	}
}

func TestApplyUpdate_ExplicitPriceMustMatchRooms(t *testing.T) {
	h := rejectedHotel()

	rooms := []models.RoomType{{Type: "suite", Price: 500}}
	err := applyUpdate(h, HotelUpdate{RoomTypes: &rooms, Price: floatPtr(450)})
	if !errors.Is(err, ErrPriceMismatch) {
		t.Fatalf("got %v, want ErrPriceMismatch", err)
	}
}

func TestApplyUpdate_EmptyEditStillRevertsToPending(t *testing.T) {
	h := rejectedHotel()

	if err := applyUpdate(h, HotelUpdate{}); err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}
	if h.Status != models.StatusPending || h.RejectReason != nil {
		t.Fatalf("status=%q reason=%v, want pending with no reason", h.Status, h.RejectReason)
	}
}
