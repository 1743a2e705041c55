package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/muhammadheryan/storefront/cmd/config"
)

const sendPath = "/message/sms/send"

// Client talks to an Eskiz-style SMS gateway: bearer token auth and a JSON
// send endpoint.
type Client struct {
	baseURL string
	token   string
	from    string
	http    *http.Client
}

func New(cfg config.SMSConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		from:    cfg.From,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	MobilePhone string `json:"mobile_phone"`
	Message     string `json:"message"`
	From        string `json:"from"`
}

// SendOTPSMS texts the verification code. The gateway expects digits only,
// so a leading '+' is dropped.
func (c *Client) SendOTPSMS(ctx context.Context, phone, code string) error {
	body, err := json.Marshal(sendRequest{
		MobilePhone: strings.TrimPrefix(phone, "+"),
		Message:     fmt.Sprintf("Your verification code: %s", code),
		From:        c.from,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}
