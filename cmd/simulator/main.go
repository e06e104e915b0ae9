// Board traffic simulator. Logs in as a seeded account and generates a
// steady trickle of demand and chat activity against a running server, for
// demos and soak testing.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

var clients = []string{"MARTINS", "OKAFOR", "DUBOIS", "HANSEN", "KOWALSKI", "ROSSI"}
var postcodes = []string{"N7", "E14", "SE1", "SW9", "CR2", "EN1"}

type simulator struct {
	baseURL string
	token   string
	client  *http.Client
}

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	email := os.Getenv("SIM_EMAIL")
	if email == "" {
		email = "admin@cerberus.com"
	}
	password := os.Getenv("SIM_PASSWORD")
	if password == "" {
		password = "admin"
	}
	interval := 10 * time.Second
	if v := os.Getenv("SIM_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			interval = parsed
		}
	}

	sim := &simulator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	if err := sim.login(email, password); err != nil {
		log.WithError(err).Fatal("Login failed")
	}
	log.WithField("api", baseURL).Info("Simulator started")

	for {
		sim.tick()
		time.Sleep(interval)
	}
}

func (s *simulator) login(email, password string) error {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := s.client.Post(s.baseURL+"/api/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login returned %d: %s", resp.StatusCode, body)
	}
	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	s.token = result.Token
	return nil
}

// tick performs one random action against the board.
func (s *simulator) tick() {
	switch rand.Intn(3) {
	case 0:
		s.createDemand()
	case 1:
		s.sendChat()
	default:
		s.browse()
	}
}

func (s *simulator) createDemand() {
	registration := s.pickAvailableRegistration()
	if registration == "" {
		log.Debug("No available vehicles, skipping create")
		return
	}
	form := map[string]interface{}{
		"sector":       "LOGISTICS",
		"clientName":   clients[rand.Intn(len(clients))],
		"proclaim":     fmt.Sprintf("%06d", 600000+rand.Intn(99999)),
		"postcode":     postcodes[rand.Intn(len(postcodes))],
		"registration": registration,
		"category":     "B2A",
		"contract":     "365",
		"licenceType":  "FULL",
		"swap":         "NO",
	}
	if err := s.post("/api/demands/create", form); err != nil {
		log.WithError(err).Warn("Create demand failed")
		return
	}
	log.WithField("registration", registration).Info("Created demand")
}

func (s *simulator) sendChat() {
	messages := []string{
		"Anyone free to check the morning run?",
		"@Victor can you confirm the collection slot?",
		"Stock list updated, please refresh.",
		"@Joana the postcode on the new entry looks wrong.",
	}
	payload := map[string]interface{}{
		"channel": "ALL",
		"message": messages[rand.Intn(len(messages))],
	}
	if err := s.post("/api/chat/send", payload); err != nil {
		log.WithError(err).Warn("Chat send failed")
		return
	}
	log.Info("Posted chat message")
}

func (s *simulator) browse() {
	sectors := []string{"LOGISTICS", "WORKSHOP", "HIREFLEET"}
	sector := sectors[rand.Intn(len(sectors))]
	resp, err := s.get("/api/demands?sector=" + sector)
	if err != nil {
		log.WithError(err).Warn("Board read failed")
		return
	}
	defer resp.Body.Close()
	var demands []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&demands); err != nil {
		log.WithError(err).Warn("Board decode failed")
		return
	}
	log.WithFields(log.Fields{"sector": sector, "count": len(demands)}).Info("Read board")
}

func (s *simulator) pickAvailableRegistration() string {
	resp, err := s.get("/api/vehicles")
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	var vehicles []struct {
		Registration string `json:"registration"`
		Status       string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&vehicles); err != nil {
		return ""
	}
	var available []string
	for _, v := range vehicles {
		if v.Status == "available" {
			available = append(available, v.Registration)
		}
	}
	if len(available) == 0 {
		return ""
	}
	return available[rand.Intn(len(available))]
}

func (s *simulator) post(path string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, body)
	}
	return nil
}

func (s *simulator) get(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	return s.client.Do(req)
}
