package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient()

	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewBackendClient_Configured(t *testing.T) {
	client := NewBackendClient("http://127.0.0.1:8000", 5*time.Second, NewUUIDGenerator())

	assert.Equal(t, "http://127.0.0.1:8000", client.BaseURL)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)
}

func TestNewBackendClient_GeneratesTraceID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(TraceIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewBackendClient(srv.URL, time.Second, NewUUIDGenerator())
	_, err := client.R().Get("/")
	require.NoError(t, err)

	_, err = uuid.Parse(got)
	assert.NoError(t, err, "expected generated uuid, got %q", got)
}

func TestNewBackendClient_ReusesContextTraceID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(TraceIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewBackendClient(srv.URL, time.Second, NewUUIDGenerator())
	ctx := WithTraceID(context.Background(), "ctx-trace")
	_, err := client.R().SetContext(ctx).Get("/")
	require.NoError(t, err)

	assert.Equal(t, "ctx-trace", got)
}
