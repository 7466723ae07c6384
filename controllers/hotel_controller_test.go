package controllers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindUpdatePayload(t *testing.T, body string) (HotelUpdatePayload, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("PUT", "/api/hotels/1", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p HotelUpdatePayload
	err := c.ShouldBindJSON(&p)
	return p, err
}

func TestHotelUpdatePayload_BindsPartialBody(t *testing.T) {
	p, err := bindUpdatePayload(t, `{"name":"New Name Only"}`)
	if err != nil {
		t.Fatalf("partial body should bind: %v", err)
	}
	if p.Name == nil || *p.Name != "New Name Only" {
		t.Fatalf("name not bound: %+v", p)
	}
	if p.Address != nil || p.Star != nil || p.RoomTypes != nil || p.OpenDate != nil || p.Price != nil {
		t.Fatalf("omitted fields should stay nil: %+v", p)
	}
}

func TestHotelUpdatePayload_ValidatesProvidedFields(t *testing.T) {
	if _, err := bindUpdatePayload(t, `{"star":9}`); err == nil {
		t.Fatal("out-of-range star should fail binding")
	}
	if _, err := bindUpdatePayload(t, `{"open_date":"tomorrow"}`); err == nil {
		t.Fatal("malformed open_date should fail binding")
	}
}

func TestHotelUpdatePayload_ToUpdateConvertsRooms(t *testing.T) {
	p, err := bindUpdatePayload(t, `{"room_type":[{"type":"suite","price":500}]}`)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	u := p.toUpdate()
	if u.RoomTypes == nil || len(*u.RoomTypes) != 1 {
		t.Fatalf("rooms not converted: %+v", u.RoomTypes)
	}
	if (*u.RoomTypes)[0].Type != "suite" || (*u.RoomTypes)[0].Price != 500 {
		t.Fatalf("room fields lost: %+v", (*u.RoomTypes)[0])
	}
	if u.Name != nil || u.Price != nil {
		t.Fatalf("omitted fields should stay nil: %+v", u)
	}
}
