package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smarttour/pkg/model"
)

func TestBookingClient_SelectTour(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody model.SelectTourRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.EscapedPath()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"token":"tok/1","state":{"current_step":1,"step_name":"tour_selection","selected_tour":{"id":"1","name":"Petra Day Tour","price":75}},"quote":{"subtotal":75,"service_fee":3.75,"taxes":12,"total":90.75}}}`))
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL)
	session, err := c.SelectTour(context.Background(), "tok/1", "1")
	if err != nil {
		t.Fatalf("SelectTour: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %s", gotMethod)
	}
	if gotPath != "/api/v1/booking-sessions/tok%2F1/tour" {
		t.Errorf("path = %s", gotPath)
	}
	if gotBody.TourID != "1" {
		t.Errorf("body tour_id = %q", gotBody.TourID)
	}
	if session.State.SelectedTour == nil || session.State.SelectedTour.Name != "Petra Day Tour" {
		t.Errorf("unexpected state %+v", session.State)
	}
	if session.Quote.Total != 90.75 {
		t.Errorf("total = %v", session.Quote.Total)
	}
}

func TestBookingClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Select a tour before continuing","code":"PRECONDITION_FAILED"}`))
	}))
	defer srv.Close()

	_, err := NewBookingClient(srv.URL).Advance(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "Select a tour before continuing"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not contain %q", err, want)
	}
}

func TestBookingClient_ListBookings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "10" || r.URL.Query().Get("offset") != "20" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"data":[{"booking_id":"ST000001","status":"confirmed"}],"total_count":21,"limit":10,"offset":20}`))
	}))
	defer srv.Close()

	records, meta, err := NewBookingClient(srv.URL).ListBookings(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(records) != 1 || records[0].BookingID != "ST000001" {
		t.Errorf("records = %+v", records)
	}
	if meta.TotalCount != 21 || meta.Limit != 10 || meta.Offset != 20 {
		t.Errorf("meta = %+v", meta)
	}
}

func TestWishlistClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/wishlists/u1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("priority") != "high" || r.URL.Query().Get("sort") != "budget" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"data":{"items":[{"id":"wish_1","name":"Petra","priority":"high","estimated_budget":150}],"stats":{"count":1,"total_budget":150,"high_priority_count":1,"average_budget":150}}}`))
	}))
	defer srv.Close()

	view, err := NewWishlistClient(srv.URL).List(context.Background(), "u1", "high", "budget")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(view.Items) != 1 || view.Stats.HighPriorityCount != 1 {
		t.Errorf("view = %+v", view)
	}
}

func TestWishlistClient_RemoveItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/wishlists/u1/items/wish_9" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := NewWishlistClient(srv.URL).RemoveItem(context.Background(), "u1", "wish_9"); err != nil {
		t.Errorf("RemoveItem: %v", err)
	}
}
