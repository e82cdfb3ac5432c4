package model

import (
	"strings"
	"testing"

	"go-hangar/app/internal/errcode"
)

func TestSpacecraftValidation(t *testing.T) {
	cases := []struct {
		name  string
		m     Spacecraft
		valid bool
	}{
		{"ok", Spacecraft{Name: "Falcon9", MaxSpeed: 27000, Weight: 25000}, true},
		{"boundary", Spacecraft{Name: "abc", MaxSpeed: 1000, Weight: 200}, true},
		{"short name", Spacecraft{Name: "ab", MaxSpeed: 27000, Weight: 25000}, false},
		{"long name", Spacecraft{Name: strings.Repeat("x", 201), MaxSpeed: 27000, Weight: 25000}, false},
		{"slow", Spacecraft{Name: "Falcon9", MaxSpeed: 999, Weight: 25000}, false},
		{"light", Spacecraft{Name: "Falcon9", MaxSpeed: 27000, Weight: 199}, false},
		{"missing", Spacecraft{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.m.BeforeSave(nil)
			if c.valid && err != nil {
				t.Error("expected valid", err)
			}
			if !c.valid && !errcode.ErrValidation.Has(err) {
				t.Error("expected validation error, got", err)
			}
		})
	}
}

func TestAstronautValidation(t *testing.T) {
	cases := []struct {
		name  string
		m     Astronaut
		valid bool
	}{
		{"commander", Astronaut{Name: "Yuri Gagarin", Role: "COMMANDER", SpacecraftId: 1}, true},
		{"pilot", Astronaut{Name: "Buzz Aldrin", Role: "PILOT", SpacecraftId: 1}, true},
		{"engineer", Astronaut{Name: "Sally Ride", Role: "ENGINEER", SpacecraftId: 1}, true},
		{"short name", Astronaut{Name: "Yuri", Role: "PILOT", SpacecraftId: 1}, false},
		{"bad role", Astronaut{Name: "Yuri Gagarin", Role: "CAPTAIN", SpacecraftId: 1}, false},
		{"lower role", Astronaut{Name: "Yuri Gagarin", Role: "pilot", SpacecraftId: 1}, false},
		{"no parent", Astronaut{Name: "Yuri Gagarin", Role: "PILOT"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.m.BeforeSave(nil)
			if c.valid && err != nil {
				t.Error("expected valid", err)
			}
			if !c.valid && !errcode.ErrValidation.Has(err) {
				t.Error("expected validation error, got", err)
			}
		})
	}
}
