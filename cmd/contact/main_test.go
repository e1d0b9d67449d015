package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportloods-backend/pkg/contactclient"
)

func TestRenderBanner(t *testing.T) {
	assert.Empty(t, RenderBanner(contactclient.State{Status: contactclient.StatusIdle}))
	assert.Empty(t, RenderBanner(contactclient.State{Status: contactclient.StatusSending}))
	assert.Contains(t, RenderBanner(contactclient.State{Status: contactclient.StatusSuccess, Banner: "Bedankt!"}), "Bedankt!")
	assert.Contains(t, RenderBanner(contactclient.State{Status: contactclient.StatusError, Banner: "Mislukt"}), "Mislukt")
}

func TestCLIParse(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--name=Jan", "--email=jan@test.nl", "--message=Hallo"})
	require.NoError(t, err)
	assert.Equal(t, "Algemeen", cli.Subject)
	assert.Equal(t, "http://localhost:8080", cli.Endpoint)
	assert.Equal(t, 15*time.Second, cli.Timeout)

	var partial CLI
	parser, err = kong.New(&partial)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--name=Jan"})
	assert.Error(t, err, "email and message are required")
}

func TestCLIRun(t *testing.T) {
	t.Run("Should print the success banner", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "E-mail succesvol verzonden!"})
		}))
		defer srv.Close()

		var out bytes.Buffer
		cli := CLI{Endpoint: srv.URL, Timeout: 5 * time.Second, Name: "Jan", Email: "jan@test.nl", Subject: "Algemeen", Message: "Hallo"}
		require.NoError(t, cli.Run(&out))
		assert.Contains(t, out.String(), "Verzenden...")
		assert.Contains(t, out.String(), "Bedankt!")
		assert.NotContains(t, out.String(), "Bel ons")
	})

	t.Run("Should give up after the timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		var out bytes.Buffer
		cli := CLI{Endpoint: srv.URL, Timeout: 50 * time.Millisecond, Name: "Jan", Email: "jan@test.nl", Subject: "Algemeen", Message: "Hallo"}
		assert.Error(t, cli.Run(&out))
		assert.Contains(t, out.String(), contactclient.MsgNetworkError)
	})

	t.Run("Should print the server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Er is een fout opgetreden bij het verzenden van de e-mail"})
		}))
		defer srv.Close()

		var out bytes.Buffer
		cli := CLI{Endpoint: srv.URL, Timeout: 5 * time.Second, Name: "Jan", Email: "jan@test.nl", Subject: "Algemeen", Message: "Hallo"}
		assert.Error(t, cli.Run(&out))
		assert.Contains(t, out.String(), "Er is een fout opgetreden")
		assert.Contains(t, out.String(), "Bel ons: +31 20 123 4567")
	})
}
