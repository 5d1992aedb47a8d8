package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type SMSMKTClient struct {
	APIKey     string
	SecretKey  string
	ProjectKey string
	URL        string
}

type SMSMKTResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Result struct {
		Status bool `json:"status"`
	} `json:"result"`
}

func (s *SMSMKTClient) SendMessage(phone string, message string) error {
	payload := map[string]interface{}{
		"project_key": s.ProjectKey,
		"phone":       phone,
		"message":     message,
		"sender":      "ALLOTMENT",
	}

	body, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", s.URL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api_key", s.APIKey)
	req.Header.Set("secret_key", s.SecretKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SMSMKT failed with status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var smsmktResp SMSMKTResponse
	if err := json.Unmarshal(respBody, &smsmktResp); err != nil {
		return err
	}

	if smsmktResp.Code != "000" {
		return fmt.Errorf("SMSMKT error: %s", smsmktResp.Detail)
	}

	return nil
}
