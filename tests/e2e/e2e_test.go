package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

const baseURL = "http://localhost:8080"

// adminID — бутстрап-администратор из миграций
const adminID = "admin"

func postAs(t *testing.T, client *http.Client, actorID, path string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest("POST", baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if actorID != "" {
		req.Header.Set("X-User-Id", actorID)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request to %s: %v", path, err)
	}
	return resp
}

func getAs(t *testing.T, client *http.Client, actorID, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest("GET", baseURL+path, nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if actorID != "" {
		req.Header.Set("X-User-Id", actorID)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request to %s: %v", path, err)
	}
	return resp
}

func TestE2E_FullFlow(t *testing.T) {
	waitForService(t)

	client := &http.Client{Timeout: 5 * time.Second}

	t.Log("Step 1: Create Team with Users")
	teamBody := []byte(`{
		"team_name": "gophers_e2e",
		"members": [
			{"user_id": "u1", "username": "alice", "role": "USER", "is_active": true},
			{"user_id": "m1", "username": "mary", "role": "MANAGER", "is_active": true}
		]
	}`)

	resp := postAs(t, client, adminID, "/team/add", teamBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		t.Fatalf("Step 1 Failed: Expected 200/201, got %d", resp.StatusCode)
	}
	t.Log("Step 1: Success")

	// --- ШАГ 2: Регистрация и вход ---
	t.Log("Step 2: Register and Login")
	registerBody := []byte(`{
		"username": "carol.e2e",
		"password": "e2e-password-1",
		"team_name": "gophers_e2e"
	}`)

	resp = postAs(t, client, "", "/auth/register", registerBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Step 2 Failed: Expected 201, got %d", resp.StatusCode)
	}

	loginBody := []byte(`{"username": "carol.e2e", "password": "e2e-password-1"}`)
	resp = postAs(t, client, "", "/auth/login", loginBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 2 Failed: Expected 200 on login, got %d", resp.StatusCode)
	}
	t.Log("Step 2: Success")

	// --- ШАГ 3: Заявка на отпуск ---
	t.Log("Step 3: Create Vacation Request")
	vacationBody := []byte(`{
		"title": "Summer vacation",
		"kind": "VACATION",
		"scope": "SELF",
		"starts_at": "2030-07-01T00:00:00Z",
		"ends_at": "2030-07-15T00:00:00Z"
	}`)

	resp = postAs(t, client, "u1", "/event/create", vacationBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Step 3 Failed: Expected 201, got %d", resp.StatusCode)
	}

	var createResp struct {
		Event struct {
			EventID string `json:"event_id"`
			Status  string `json:"status"`
		} `json:"event"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&createResp); err != nil {
		t.Fatal("Failed to decode event response:", err)
	}

	if createResp.Event.Status != "PENDING" {
		t.Errorf("Expected status PENDING, got %s", createResp.Event.Status)
	}
	eventID := createResp.Event.EventID
	t.Logf("Step 3: Success (event %s pending)", eventID)

	// --- ШАГ 4: Утверждение менеджером ---
	t.Log("Step 4: Manager Approves")
	decideBody := []byte(`{"event_id": "` + eventID + `", "decision": "approve"}`)

	resp = postAs(t, client, "m1", "/event/decide", decideBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 4 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var decideResp struct {
		Event struct {
			Status     string  `json:"status"`
			ApproverID *string `json:"approver_id"`
		} `json:"event"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decideResp); err != nil {
		t.Fatal("Failed to decode decide response:", err)
	}

	if decideResp.Event.Status != "APPROVED" {
		t.Errorf("Expected status APPROVED, got %s", decideResp.Event.Status)
	}
	if decideResp.Event.ApproverID == nil || *decideResp.Event.ApproverID != "m1" {
		t.Errorf("Expected approver m1, got %v", decideResp.Event.ApproverID)
	}
	t.Log("Step 4: Success (vacation approved)")

	// Повторное решение по той же заявке — конфликт
	t.Log("Step 4.1: Second Decision Conflicts")
	rejectBody := []byte(`{"event_id": "` + eventID + `", "decision": "reject"}`)

	resp = postAs(t, client, adminID, "/event/decide", rejectBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Step 4.1 Failed: Expected 409 on second decision, got %d", resp.StatusCode)
	}
	t.Log("Step 4.1: Success")

	// --- ШАГ 5: Календарь с цветами статусов ---
	t.Log("Step 5: Calendar View")
	resp = getAs(t, client, "u1", "/calendar/get?from=2030-07-01&to=2030-08-01")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 5 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var calendarResp struct {
		Events []struct {
			EventID string `json:"event_id"`
			Status  string `json:"status"`
			Color   string `json:"color"`
		} `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&calendarResp); err != nil {
		t.Fatal("Failed to decode calendar response:", err)
	}

	found := false
	for _, e := range calendarResp.Events {
		if e.EventID == eventID {
			found = true
			if e.Color != "#10b981" {
				t.Errorf("Expected approved color #10b981, got %s", e.Color)
			}
		}
	}
	if !found {
		t.Error("Expected approved vacation in calendar")
	}
	t.Log("Step 5: Success")

	// --- ШАГ 6: Встреча утверждается сразу ---
	t.Log("Step 6: Meeting Auto-Approved")
	meetingBody := []byte(`{
		"title": "Sprint planning",
		"kind": "MEETING",
		"scope": "TEAM",
		"starts_at": "2030-07-02T10:00:00Z",
		"ends_at": "2030-07-02T11:00:00Z"
	}`)

	resp = postAs(t, client, "u1", "/event/create", meetingBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Step 6 Failed: Expected 201, got %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&createResp); err != nil {
		t.Fatal("Failed to decode event response:", err)
	}
	if createResp.Event.Status != "APPROVED" {
		t.Errorf("Expected status APPROVED, got %s", createResp.Event.Status)
	}
	t.Log("Step 6: Success")

	// --- ШАГ 7: Деактивация пользователя ---
	t.Log("Step 7: Deactivate User")
	activeBody := []byte(`{"user_id": "u1", "is_active": false}`)

	resp = postAs(t, client, adminID, "/users/setIsActive", activeBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 7 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var userResp struct {
		User struct {
			UserID   string `json:"user_id"`
			IsActive bool   `json:"is_active"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userResp); err != nil {
		t.Fatal("Failed to decode user response:", err)
	}
	if userResp.User.IsActive {
		t.Error("Expected is_active=false, got true")
	}

	// Деактивированный актор больше не разрешается
	resp = getAs(t, client, "u1", "/calendar/get?from=2030-07-01&to=2030-08-01")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Step 7 Failed: Expected 401 for deactivated actor, got %d", resp.StatusCode)
	}
	t.Log("Step 7: Success (User Deactivated)")
}

func waitForService(t *testing.T) {
	t.Log("Waiting for service to start...")
	timeout := time.After(60 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatal("Service did not start in time")
		case <-ticker.C:
			resp, err := http.Get(baseURL + "/health")
			if err == nil {
				resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					t.Log("Service is up")
					return
				}
			}
		}
	}
}
