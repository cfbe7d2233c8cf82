// Package verify wraps the external SMS verification provider. The provider
// owns the one-time codes; nothing is stored locally.
package verify

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agromercado/agromercado-backend/pkg/config"
)

const StatusApproved = "approved"

type Client struct {
	baseURL    string
	serviceSID string
	accountSID string
	authToken  string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.VerifyBaseURL,
		serviceSID: cfg.VerifyServiceSID,
		accountSID: cfg.VerifyAccountSID,
		authToken:  cfg.VerifyAuthToken,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) post(endpoint string, form url.Values) (map[string]interface{}, error) {
	if c.accountSID == "" || c.authToken == "" || c.serviceSID == "" {
		return nil, errors.New("verification provider credentials not set")
	}

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	auth := base64.StdEncoding.EncodeToString([]byte(c.accountSID + ":" + c.authToken))
	req.Header.Set("Authorization", "Basic "+auth)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	if res.StatusCode >= 400 {
		if msg, ok := body["message"].(string); ok && msg != "" {
			return nil, errors.New(msg)
		}
		return nil, fmt.Errorf("verification provider returned status %d", res.StatusCode)
	}
	return body, nil
}

// SendCode asks the provider to SMS a one-time code to the phone number.
func (c *Client) SendCode(phoneNumber string) error {
	endpoint := fmt.Sprintf("%s/Services/%s/Verifications", c.baseURL, c.serviceSID)
	form := url.Values{}
	form.Set("To", phoneNumber)
	form.Set("Channel", "sms")

	_, err := c.post(endpoint, form)
	return err
}

// CheckCode validates a submitted code and returns the provider's status
// string ("approved" on success).
func (c *Client) CheckCode(phoneNumber, code string) (string, error) {
	endpoint := fmt.Sprintf("%s/Services/%s/VerificationCheck", c.baseURL, c.serviceSID)
	form := url.Values{}
	form.Set("To", phoneNumber)
	form.Set("Code", code)

	body, err := c.post(endpoint, form)
	if err != nil {
		return "", err
	}

	status, ok := body["status"].(string)
	if !ok {
		return "", errors.New("no status returned from verification provider")
	}
	return status, nil
}
