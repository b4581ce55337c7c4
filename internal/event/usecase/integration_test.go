package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"event-calendar/internal/event"
	"event-calendar/internal/event/repository/rest"
	"event-calendar/internal/model"
)

// newBackend serves the events REST contract from memory.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	var mu sync.Mutex
	var nextID int64 = 1
	events := map[int64]model.Event{}
	order := []int64{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		out := make([]model.Event, 0, len(order))
		for _, id := range order {
			out = append(out, events[id])
		}
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /events", func(w http.ResponseWriter, r *http.Request) {
		var req model.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		e := model.Event{
			ID: nextID, Title: req.Title, Description: req.Description,
			StartDateTime: req.StartDateTime, EndDateTime: req.EndDateTime, Location: req.Location,
		}
		nextID++
		events[e.ID] = e
		order = append(order, e.ID)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(e)
	})
	mux.HandleFunc("GET /events/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		mu.Lock()
		defer mu.Unlock()
		e, ok := events[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(e)
	})
	mux.HandleFunc("DELETE /events/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		mu.Lock()
		defer mu.Unlock()
		if _, ok := events[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(events, id)
		for i, v := range order {
			if v == id {
				order = append(order[:i], order[i+1:]...)
				break
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestCreateThenListAgainstBackend(t *testing.T) {
	ts := newBackend(t)
	transport := rest.New(rest.NewClient(ts.URL, 0, "UTC"), &mockLogger{})
	uc, _ := newUseCase(transport)
	ctx := context.Background()

	open := uc.OpenCreate(ctx)
	created, err := uc.SubmitCreate(ctx, event.SubmitCreateInput{Token: open.Token, Form: validForm()})
	if err != nil || created.Created == nil {
		t.Fatalf("create failed: %+v %v", created, err)
	}

	list := uc.LoadList(ctx, event.ListInput{Month: "2024-01"})
	if list.State != event.ListLoaded {
		t.Fatalf("expected loaded, got %s (%s)", list.State, list.Error)
	}
	var found bool
	for _, e := range list.Events {
		if e.ID == created.Created.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("expected event %d in list %+v", created.Created.ID, list.Events)
	}
}

func TestDeleteAgainstBackend(t *testing.T) {
	ts := newBackend(t)
	transport := rest.New(rest.NewClient(ts.URL, 0, "UTC"), &mockLogger{})
	uc, _ := newUseCase(transport)
	ctx := context.Background()

	created, _ := uc.SubmitCreate(ctx, event.SubmitCreateInput{Form: validForm()})
	id := created.Created.ID

	snap := uc.OpenDetail(ctx, id)
	in := event.DetailInput{Token: snap.Token, ID: id}
	uc.RequestDelete(ctx, in)
	snap, err := uc.ConfirmDelete(ctx, in)
	if err != nil || snap.Navigate != event.CalendarPath {
		t.Fatalf("unexpected delete result: %+v %v", snap, err)
	}

	if snap := uc.OpenDetail(ctx, id); snap.State != event.DetailNotFound {
		t.Errorf("expected not found after delete, got %s", snap.State)
	}
}
