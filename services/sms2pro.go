package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type SMS2ProClient struct {
	APIKey string
	Client *http.Client
}

type SMS2ProSendRequest struct {
	Recipient  string `json:"recipient"`
	SenderName string `json:"sender_name"`
	Message    string `json:"message"`
}

type SMS2ProSendResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

func NewSMS2ProClient(apiKey string) *SMS2ProClient {
	return &SMS2ProClient{
		APIKey: apiKey,
		Client: &http.Client{},
	}
}

func (s *SMS2ProClient) SendMessage(phone string, message string) error {
	payload := SMS2ProSendRequest{
		Recipient:  phone,
		SenderName: "ALLOTMENT",
		Message:    message,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("[SMS2PRO] Failed to marshal payload: %v\n", err)
		return err
	}

	req, err := http.NewRequest("POST", "https://portal.sms2pro.com/sms-api/sms/send", bytes.NewBuffer(payloadBytes))
	if err != nil {
		fmt.Printf("[SMS2PRO] Failed to create request: %v\n", err)
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.APIKey))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		fmt.Printf("[SMS2PRO] Failed to send request: %v\n", err)
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("[SMS2PRO] Failed to read response body: %v\n", err)
		return err
	}

	fmt.Printf("[SMS2PRO] SendMessage Response Status: %d, Body: %s\n", resp.StatusCode, string(body))

	var response SMS2ProSendResponse
	if err := json.Unmarshal(body, &response); err != nil {
		fmt.Printf("[SMS2PRO] Failed to parse response: %v\n", err)
		return err
	}

	if response.Code != 0 {
		return fmt.Errorf("SMS2PRO SendMessage failed: %s", response.Msg)
	}

	return nil
}
