package config

import (
	"reflect"
	"testing"
)

func TestOrigins_DefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}
	if got := cfg.Origins(); !reflect.DeepEqual(got, defaultOrigins) {
		t.Fatalf("expected development defaults, got %v", got)
	}
}

func TestOrigins_SingleValue(t *testing.T) {
	cfg := &Config{CORSOrigin: "https://dash.example.com"}
	want := []string{"https://dash.example.com"}
	if got := cfg.Origins(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOrigins_CommaListTrimmed(t *testing.T) {
	cfg := &Config{CORSOrigin: " https://dash.example.com , http://localhost:5173 ,, "}
	want := []string{"https://dash.example.com", "http://localhost:5173"}
	if got := cfg.Origins(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
