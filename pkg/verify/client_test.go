package verify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agromercado/agromercado-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{
		VerifyBaseURL:    baseURL,
		VerifyServiceSID: "VA123",
		VerifyAccountSID: "AC123",
		VerifyAuthToken:  "secret",
	})
}

func TestSendCode(t *testing.T) {
	var gotPath, gotTo, gotChannel, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotTo = r.PostForm.Get("To")
		gotChannel = r.PostForm.Get("Channel")
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "pending"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	require.NoError(t, client.SendCode("+51987654321"))

	assert.Equal(t, "/Services/VA123/Verifications", gotPath)
	assert.Equal(t, "+51987654321", gotTo)
	assert.Equal(t, "sms", gotChannel)
	assert.Contains(t, gotAuth, "Basic ")
}

func TestCheckCodeApproved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Services/VA123/VerificationCheck", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1234", r.PostForm.Get("Code"))
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "approved"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	status, err := client.CheckCode("+51987654321", "1234")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)
}

func TestCheckCodePending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "pending"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	status, err := client.CheckCode("+51987654321", "0000")
	require.NoError(t, err)
	assert.NotEqual(t, StatusApproved, status)
}

func TestProviderErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Max send attempts reached"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SendCode("+51987654321")
	require.Error(t, err)
	assert.Equal(t, "Max send attempts reached", err.Error())
}

func TestMissingCredentials(t *testing.T) {
	client := NewClient(&config.Config{VerifyBaseURL: "http://localhost"})
	err := client.SendCode("+51987654321")
	assert.Error(t, err)
}
