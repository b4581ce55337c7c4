package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"event-calendar/internal/event"
	"event-calendar/internal/event/repository"
	"event-calendar/internal/event/usecase"
	"event-calendar/internal/event/validation"
	"event-calendar/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeTransport is an in-memory backend. Setting a *Err field makes the
// matching call fail; setting a gate makes it block until the gate is closed.
type fakeTransport struct {
	mu     sync.Mutex
	nextID int64
	events []model.Event

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	createGate chan struct{}
	updateGate chan struct{}
	entered    chan struct{}

	calls map[string]int
}

func newFakeTransport(events ...model.Event) *fakeTransport {
	f := &fakeTransport{nextID: 1, calls: map[string]int{}}
	for _, e := range events {
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
		f.events = append(f.events, e)
	}
	return f
}

func (f *fakeTransport) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeTransport) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeTransport) wait(gate chan struct{}) {
	if gate == nil {
		return
	}
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	<-gate
}

func (f *fakeTransport) Create(ctx context.Context, req model.EventRequest) (model.Event, error) {
	f.record("Create")
	f.wait(f.createGate)
	if f.createErr != nil {
		return model.Event{}, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e := model.Event{
		ID: f.nextID, Title: req.Title, Description: req.Description,
		StartDateTime: req.StartDateTime, EndDateTime: req.EndDateTime, Location: req.Location,
	}
	f.nextID++
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeTransport) List(ctx context.Context) ([]model.Event, error) {
	f.record("List")
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Event{}, f.events...), nil
}

func (f *fakeTransport) GetByID(ctx context.Context, id int64) (model.Event, error) {
	f.record("GetByID")
	if f.getErr != nil {
		return model.Event{}, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, repository.NormalizeResponse(http.StatusNotFound, nil)
}

func (f *fakeTransport) Update(ctx context.Context, id int64, req model.EventRequest) (model.Event, error) {
	f.record("Update")
	f.wait(f.updateGate)
	if f.updateErr != nil {
		return model.Event{}, f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.events {
		if e.ID == id {
			f.events[i] = model.Event{
				ID: id, Title: req.Title, Description: req.Description,
				StartDateTime: req.StartDateTime, EndDateTime: req.EndDateTime, Location: req.Location,
			}
			return f.events[i], nil
		}
	}
	return model.Event{}, repository.NormalizeResponse(http.StatusNotFound, nil)
}

func (f *fakeTransport) Delete(ctx context.Context, id int64) error {
	f.record("Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return repository.NormalizeResponse(http.StatusNotFound, nil)
}

var errBackendDown = &repository.TransportError{Status: 500, Message: "connection refused", Errors: []string{}}

func meeting() model.Event {
	return model.Event{
		ID:            1,
		Title:         "Meeting",
		Description:   model.StringPtr("Weekly sync"),
		StartDateTime: "2024-01-10T10:00:00",
		EndDateTime:   "2024-01-10T11:00:00",
		Location:      model.StringPtr("Room 1"),
	}
}

func validForm() model.EventForm {
	return model.EventForm{
		Title:         "Meeting",
		StartDateTime: "2024-01-10T10:00:00",
		EndDateTime:   "2024-01-10T11:00:00",
	}
}

func newUseCase(tr repository.Transport) (event.UseCase, *usecase.Views) {
	views := usecase.NewViews(16, time.Minute)
	uc := usecase.New(tr, validation.New(validation.Options{}), views, &mockLogger{}, usecase.Config{
		DefaultTimezone: "UTC",
		WeekStart:       time.Sunday,
	})
	return uc, views
}

func isTransportError(err error) bool {
	var te *repository.TransportError
	return errors.As(err, &te)
}

func hasField(errs validation.Errors, field string) bool {
	_, ok := errs.ByField()[field]
	return ok
}
