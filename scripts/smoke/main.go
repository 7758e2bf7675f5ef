// Command smoke probes a running events-api instance and reports whether the
// core surfaces respond. Intended for post-deploy verification.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type probe struct {
	Name     string
	Method   string
	Path     string
	Body     string
	Want     int
	Critical bool
}

type result struct {
	Probe    probe
	Status   int
	Duration time.Duration
	Err      error
}

func main() {
	var (
		base    string
		prefix  string
		timeout time.Duration
		submit  bool
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&prefix, "prefix", "/api/v1", "API route prefix")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.BoolVar(&submit, "submit", false, "also submit a probe event (mutates state)")
	flag.Parse()

	probes := []probe{
		{Name: "health", Method: http.MethodGet, Path: "/health", Want: http.StatusOK, Critical: true},
		{Name: "ready", Method: http.MethodGet, Path: "/ready", Want: http.StatusOK, Critical: true},
		{Name: "metrics", Method: http.MethodGet, Path: "/metrics", Want: http.StatusOK},
		{Name: "analytics", Method: http.MethodGet, Path: prefix + "/analytics", Want: http.StatusOK, Critical: true},
		{Name: "upcoming events", Method: http.MethodGet, Path: prefix + "/events/upcoming", Want: http.StatusOK, Critical: true},
		{Name: "pending events", Method: http.MethodGet, Path: prefix + "/events/pending", Want: http.StatusOK},
		{Name: "buildings catalog", Method: http.MethodGet, Path: prefix + "/reference/buildings", Want: http.StatusOK},
		{Name: "departments catalog", Method: http.MethodGet, Path: prefix + "/reference/departments", Want: http.StatusOK},
		{Name: "events without club", Method: http.MethodGet, Path: prefix + "/events", Want: http.StatusBadRequest},
	}
	if submit {
		probes = append(probes, probe{
			Name:     "submit probe event",
			Method:   http.MethodPost,
			Path:     prefix + "/events",
			Body:     probeEventBody(),
			Want:     http.StatusCreated,
			Critical: true,
		})
	}

	client := &http.Client{Timeout: timeout}
	failures := 0
	for _, p := range probes {
		res := run(client, base, p)
		report(res)
		if res.Err != nil || res.Status != p.Want {
			if p.Critical {
				failures++
			}
		}
	}

	if failures > 0 {
		log.Fatalf("smoke check failed: %d critical probe(s) broken", failures)
	}
	fmt.Println("smoke check passed")
}

func run(client *http.Client, base string, p probe) result {
	url := strings.TrimRight(base, "/") + p.Path
	var body io.Reader
	if p.Body != "" {
		body = bytes.NewBufferString(p.Body)
	}
	req, err := http.NewRequest(p.Method, url, body)
	if err != nil {
		return result{Probe: p, Err: err}
	}
	if p.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		return result{Probe: p, Duration: duration, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return result{Probe: p, Status: resp.StatusCode, Duration: duration}
}

func report(res result) {
	status := "ok"
	detail := fmt.Sprintf("%d in %s", res.Status, res.Duration.Round(time.Millisecond))
	if res.Err != nil {
		status = "FAIL"
		detail = res.Err.Error()
	} else if res.Status != res.Probe.Want {
		status = "FAIL"
		detail = fmt.Sprintf("got %d, want %d", res.Status, res.Probe.Want)
	}
	fmt.Fprintf(os.Stdout, "%-4s %-22s %s %s (%s)\n", status, res.Probe.Name, res.Probe.Method, res.Probe.Path, detail)
}

func probeEventBody() string {
	// Scheduled far enough out to clear the notice period; the description
	// clears the 50 character minimum.
	payload := map[string]interface{}{
		"title":       "Smoke Probe",
		"club":        "Smoke Test Club",
		"date":        time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"startTime":   "10:00",
		"endTime":     "11:00",
		"venue":       "Main Auditorium",
		"building":    "Main Building",
		"description": "Deployment verification probe event submitted by the smoke check tooling.",
		"staffCoordinator": map[string]string{
			"id":         "cs1",
			"name":       "Dr. John Smith",
			"department": "Computer Science",
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}
