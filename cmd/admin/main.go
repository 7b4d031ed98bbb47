// Command admin is a small operator CLI for the FIR Portal API. It
// logs in with the admin account and drives the same HTTP surface the
// review console uses.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"firportal/backend/internal/models"
)

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func main() {
	baseURL := os.Getenv("FIRPORTAL_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list [status], show <fir_id>, update-status <fir_id> <status> [comment], stats")
		os.Exit(1)
	}

	c := &client{baseURL: baseURL, http: http.DefaultClient}
	if err := c.login(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "list":
		status := ""
		if len(os.Args) > 2 {
			status = os.Args[2]
		}
		if err := c.list(status); err != nil {
			log.Fatalf("Error listing FIRs: %v", err)
		}
	case "show":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin show <fir_id>")
			os.Exit(1)
		}
		if err := c.show(os.Args[2]); err != nil {
			log.Fatalf("Error fetching FIR: %v", err)
		}
	case "update-status":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin update-status <fir_id> <status> [comment]")
			os.Exit(1)
		}
		comment := ""
		if len(os.Args) > 4 {
			comment = os.Args[4]
		}
		if err := c.updateStatus(os.Args[2], os.Args[3], comment); err != nil {
			log.Fatalf("Error updating status: %v", err)
		}
		fmt.Printf("FIR %s is now %s.\n", os.Args[2], os.Args[3])
	case "stats":
		if err := c.stats(); err != nil {
			log.Fatalf("Error fetching stats: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func (c *client) login(email, password string) error {
	if email == "" {
		email = "admin@system.gov"
	}
	if password == "" {
		password = "admin123"
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.post("/auth/login", map[string]string{"email": email, "password": password}, &out); err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

func (c *client) list(status string) error {
	path := "/firs"
	if status != "" {
		path += "?status=" + status
	}
	var out struct {
		FIRs []models.FIR `json:"firs"`
	}
	if err := c.get(path, &out); err != nil {
		return err
	}
	for _, f := range out.FIRs {
		fmt.Printf("%-42s %-10s %-8s %s\n", f.ID, f.Status, f.Priority, f.Title)
	}
	return nil
}

func (c *client) show(id string) error {
	var out models.FIR
	if err := c.get("/firs/"+id, &out); err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

func (c *client) updateStatus(id, status, comment string) error {
	body := map[string]string{"status": status, "comment": comment}
	req, err := http.NewRequest(http.MethodPatch, c.baseURL+"/firs/"+id+"/status", encode(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *client) stats() error {
	var out struct {
		Summary struct {
			Total      int            `json:"total"`
			ByStatus   map[string]int `json:"byStatus"`
			ByPriority map[string]int `json:"byPriority"`
		} `json:"summary"`
	}
	if err := c.get("/stats", &out); err != nil {
		return err
	}
	fmt.Printf("Total FIRs: %d\n", out.Summary.Total)
	for status, n := range out.Summary.ByStatus {
		fmt.Printf("  %-10s %d\n", status, n)
	}
	return nil
}

func (c *client) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *client) post(path string, body, out interface{}) error {
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, encode(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func encode(body interface{}) *bytes.Buffer {
	buf := new(bytes.Buffer)
	_ = json.NewEncoder(buf).Encode(body)
	return buf
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var e struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&e)
	if e.Error != "" {
		return fmt.Errorf("%s (HTTP %d)", e.Error, resp.StatusCode)
	}
	return fmt.Errorf("HTTP %d", resp.StatusCode)
}
