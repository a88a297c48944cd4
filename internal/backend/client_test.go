package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientServicesDecodesEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/services", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"Gardiennage","slug":"gardiennage","description":"Agents qualifiés"}]}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL+"/api", nil)
	require.NoError(t, err)

	services, err := client.Services(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "Gardiennage", services[0].Title)
}

func TestClientSuccessFalseYieldsAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"adresse déjà inscrite"}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, nil)
	require.NoError(t, err)

	err = client.SubscribeNewsletter(context.Background(), "test@example.com")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 0, apiErr.Status)
	require.Equal(t, "adresse déjà inscrite", apiErr.Message)
}

func TestClientNon2xxCarriesStatusAndMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"message":"email invalide"}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, nil)
	require.NoError(t, err)

	err = client.SubmitContact(context.Background(), ContactRequest{Name: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	require.Equal(t, "email invalide", apiErr.Message)
}

func TestClientLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return the token", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "admin@aissia-security.com", body["email"])

			_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok-123"}}`))
		}))
		defer srv.Close()

		client, err := New(srv.URL, nil)
		require.NoError(t, err)

		token, err := client.Login(context.Background(), "admin@aissia-security.com", "secret")
		require.NoError(t, err)
		require.Equal(t, "tok-123", token)
	})

	t.Run("rejected credentials surface the server message", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Identifiants incorrects"}`))
		}))
		defer srv.Close()

		client, err := New(srv.URL, nil)
		require.NoError(t, err)

		_, err = client.Login(context.Background(), "admin@aissia-security.com", "wrong")
		require.True(t, IsUnauthorized(err))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Identifiants incorrects", apiErr.Message)
	})
}

func TestClientBearerTokenOnAdminCalls(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, nil)
	require.NoError(t, err)

	_, err = client.ContactMessages(context.Background(), "tok-123")
	require.NoError(t, err)
}

func TestClientDeleteWithEmptyBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/admin/job-offers/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := New(srv.URL, nil)
	require.NoError(t, err)

	require.NoError(t, client.DeleteJobOffer(context.Background(), "tok", 7))
}

func TestClientNetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	client, err := New(srv.URL, nil)
	require.NoError(t, err)

	_, err = client.News(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestClientBaseURLRequired(t *testing.T) {
	t.Parallel()

	_, err := New("  ", nil)
	require.Error(t, err)
}
