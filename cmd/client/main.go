package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type lessonRequest struct {
	Topic string `json:"topic"`

	Quality string `json:"quality,omitempty"`
	Accent  string `json:"accent,omitempty"`
}

type lessonResponse struct {
	ID    string `json:"id"`
	Topic string `json:"topic,omitempty"`

	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`

	Deck []slideResponse `json:"deck,omitempty"`
}

type slideResponse struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`

	ImageURL string `json:"imageUrl,omitempty"`
	AudioURL string `json:"audioUrl,omitempty"`
}

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	qualityFlag := flag.String("quality", "medium", "image quality (low, medium, high)")
	accentFlag := flag.String("accent", "american", "narration accent")
	outputFlag := flag.String("output", "lesson", "output directory")

	flag.Parse()

	topic := strings.Join(flag.Args(), " ")

	if topic == "" {
		fmt.Fprintln(os.Stderr, "usage: client [flags] <topic>")
		os.Exit(1)
	}

	base := strings.TrimRight(*urlFlag, "/")

	lesson, err := submit(base, lessonRequest{
		Topic: topic,

		Quality: *qualityFlag,
		Accent:  *accentFlag,
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("generating lesson", lesson.ID)

	for lesson.State == "loading" {
		time.Sleep(2 * time.Second)

		lesson, err = poll(base, lesson.ID)

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if lesson.State == "error" {
		if lesson.Reason == "credentials" {
			fmt.Fprintln(os.Stderr, "generation failed: check the configured API credentials")
		} else {
			fmt.Fprintln(os.Stderr, "generation failed, try again")
		}

		os.Exit(1)
	}

	if err := save(base, lesson, *outputFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("lesson written to", *outputFlag)
}

func submit(base string, req lessonRequest) (*lessonResponse, error) {
	data, _ := json.Marshal(req)

	resp, err := http.Post(base+"/v1/lessons", "application/json", bytes.NewReader(data))

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		text, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("submit failed: %s", strings.TrimSpace(string(text)))
	}

	var result lessonResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func poll(base, id string) (*lessonResponse, error) {
	resp, err := http.Get(base + "/v1/lessons/" + id)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var result lessonResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func save(base string, lesson *lessonResponse, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, _ := json.MarshalIndent(lesson, "", "  ")

	if err := os.WriteFile(filepath.Join(dir, "lesson.json"), data, 0o644); err != nil {
		return err
	}

	for i, s := range lesson.Deck {
		if s.ImageURL != "" {
			if err := download(base+s.ImageURL, filepath.Join(dir, fmt.Sprintf("slide%02d.png", i))); err != nil {
				return err
			}
		}

		if s.AudioURL != "" {
			if err := download(base+s.AudioURL, filepath.Join(dir, fmt.Sprintf("slide%02d.wav", i))); err != nil {
				return err
			}
		}
	}

	return nil
}

func download(url, path string) error {
	resp, err := http.Get(url)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("download failed: %s", url)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
