package contactclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualClock fires scheduled functions only when advanced
type manualClock struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now + d, fn: f}
	c.pending = append(c.pending, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	rest := c.pending[:0]
	for _, t := range c.pending {
		if t.at <= c.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	c.pending = rest
	c.mu.Unlock()

	for _, t := range due {
		if !t.stopped {
			t.stopped = true
			t.fn()
		}
	}
}

type stubSender struct {
	calls int
	got   Submission
	err   error
	// block, when set, holds Send until closed
	block chan struct{}
}

func (s *stubSender) Send(_ context.Context, sub Submission) (string, error) {
	s.calls++
	s.got = sub
	if s.block != nil {
		<-s.block
	}
	return "E-mail succesvol verzonden!", s.err
}

func validFields() Submission {
	return Submission{Name: "Jan", Email: "jan@test.nl", Subject: "Algemeen", Message: "Hallo"}
}

func TestFormFieldSetters(t *testing.T) {
	form := NewForm(&stubSender{})
	form.SetName("Jan")
	form.SetEmail("jan@test.nl")
	form.SetPhone("06 12345678")
	form.SetSubject("Proefles")
	form.SetMessage("Hallo")

	assert.Equal(t, Submission{Name: "Jan", Email: "jan@test.nl", Phone: "06 12345678", Subject: "Proefles", Message: "Hallo"}, form.Fields())

	form.SetPhone("")
	assert.Empty(t, form.Fields().Phone)
	assert.Equal(t, "Jan", form.Fields().Name)
}

func TestFormSuccessLifecycle(t *testing.T) {
	clock := &manualClock{}
	sender := &stubSender{}
	var seen []Status
	form := NewForm(sender, WithClock(clock), OnChange(func(s State) { seen = append(seen, s.Status) }))
	form.SetFields(validFields())

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, []Status{StatusSending, StatusSuccess}, seen)
	assert.Equal(t, validFields(), sender.got)

	st := form.State()
	assert.Equal(t, StatusSuccess, st.Status)
	assert.Equal(t, MsgSuccess, st.Banner)
	assert.Equal(t, Submission{}, st.Fields, "fields are cleared on success")

	clock.Advance(4 * time.Second)
	assert.Equal(t, StatusSuccess, form.State().Status)

	clock.Advance(time.Second)
	st = form.State()
	assert.Equal(t, StatusIdle, st.Status)
	assert.Empty(t, st.Banner)
	assert.Equal(t, []Status{StatusSending, StatusSuccess, StatusIdle}, seen)
}

func TestFormErrorKeepsFields(t *testing.T) {
	clock := &manualClock{}
	sender := &stubSender{err: &NetworkError{Err: errors.New("connection refused")}}
	form := NewForm(sender, WithClock(clock))
	form.SetFields(validFields())

	err := form.Submit(context.Background())
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)

	st := form.State()
	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, MsgNetworkError, st.Banner)
	assert.Equal(t, validFields(), st.Fields)

	clock.Advance(time.Minute)
	assert.Equal(t, StatusError, form.State().Status, "error state has no timed dismissal")
}

func TestFormBanners(t *testing.T) {
	cases := map[string]struct {
		err    error
		banner string
	}{
		"server message":    {&APIError{StatusCode: 400, Message: "Naam, e-mail en bericht zijn verplicht"}, "Naam, e-mail en bericht zijn verplicht"},
		"no server message": {&APIError{StatusCode: 502}, MsgServerFailure},
		"network failure":   {&NetworkError{Err: errors.New("dial tcp")}, MsgNetworkError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			form := NewForm(&stubSender{err: tc.err}, WithClock(&manualClock{}))
			form.SetFields(validFields())
			_ = form.Submit(context.Background())
			assert.Equal(t, tc.banner, form.State().Banner)
		})
	}
}

func TestFormValidation(t *testing.T) {
	cases := map[string]func(*Submission){
		"name":          func(s *Submission) { s.Name = " " },
		"email":         func(s *Submission) { s.Email = "" },
		"email format":  func(s *Submission) { s.Email = "jan@" },
		"display email": func(s *Submission) { s.Email = "Jan <jan@test.nl>" },
		"subject":       func(s *Submission) { s.Subject = "" },
		"message":       func(s *Submission) { s.Message = "" },
	}
	for name, mutate := range cases {
		t.Run("Should block submit on invalid "+name, func(t *testing.T) {
			sender := &stubSender{}
			form := NewForm(sender, WithClock(&manualClock{}))
			fields := validFields()
			mutate(&fields)
			form.SetFields(fields)

			var fieldErr *FieldError
			require.ErrorAs(t, form.Submit(context.Background()), &fieldErr)
			assert.Equal(t, StatusIdle, form.State().Status)
			assert.Zero(t, sender.calls)
		})
	}

	t.Run("Should allow an empty phone", func(t *testing.T) {
		form := NewForm(&stubSender{}, WithClock(&manualClock{}))
		form.SetFields(validFields())
		assert.NoError(t, form.Validate())
	})
}

func TestFormRejectsConcurrentSubmit(t *testing.T) {
	sender := &stubSender{block: make(chan struct{})}
	form := NewForm(sender, WithClock(&manualClock{}))
	form.SetFields(validFields())

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()

	require.Eventually(t, func() bool { return form.State().Status == StatusSending }, time.Second, time.Millisecond)
	assert.True(t, form.State().Status.Disabled())
	assert.ErrorIs(t, form.Submit(context.Background()), ErrSubmitting)

	close(sender.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, sender.calls)
}

func TestFormResubmitCancelsPendingReset(t *testing.T) {
	clock := &manualClock{}
	sender := &stubSender{}
	form := NewForm(sender, WithClock(clock))

	form.SetFields(validFields())
	require.NoError(t, form.Submit(context.Background()))

	clock.Advance(3 * time.Second)
	sender.err = &APIError{StatusCode: 500, Message: "Er is een fout opgetreden bij het verzenden van de e-mail"}
	form.SetFields(validFields())
	require.Error(t, form.Submit(context.Background()))

	// The first success timer would have fired here
	clock.Advance(3 * time.Second)
	st := form.State()
	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, "Er is een fout opgetreden bij het verzenden van de e-mail", st.Banner)
}

func TestFormStaleTimerIsIgnored(t *testing.T) {
	form := NewForm(&stubSender{}, WithClock(&manualClock{}))
	form.SetFields(validFields())
	require.NoError(t, form.Submit(context.Background()))

	// A timer from an older generation must not reset a newer success
	form.reset(0)
	assert.Equal(t, StatusSuccess, form.State().Status)
}

func TestClientSend(t *testing.T) {
	t.Run("Should post JSON and return the server message", func(t *testing.T) {
		var got Submission
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, ContactPath, r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "E-mail succesvol verzonden!"})
		}))
		defer srv.Close()

		msg, err := NewClient(srv.URL+"/").Send(context.Background(), validFields())
		require.NoError(t, err)
		assert.Equal(t, "E-mail succesvol verzonden!", msg)
		assert.Equal(t, validFields(), got)
	})

	t.Run("Should surface the server error text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Naam, e-mail en bericht zijn verplicht"})
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).Send(context.Background(), Submission{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Naam, e-mail en bericht zijn verplicht", apiErr.Message)
	})

	t.Run("Should tolerate a non-JSON error page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "<html>bad gateway</html>", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).Send(context.Background(), validFields())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Empty(t, apiErr.Message)
	})

	t.Run("Should report network failures", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewClient(url).Send(context.Background(), validFields())
		var netErr *NetworkError
		assert.ErrorAs(t, err, &netErr)
	})
}
