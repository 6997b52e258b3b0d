package model

import (
	"fmt"
	"strings"
)

// Sex of a user. Only used for presentation (owner name colour).
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// ParseSex accepts "m"/"f" in either case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m":
		return SexMale, nil
	case "f":
		return SexFemale, nil
	}
	return "", fmt.Errorf("invalid sex %q: want m or f", s)
}

// UnmarshalText lets YAML and JSON fixtures spell the value as M/F or m/f.
func (s *Sex) UnmarshalText(text []byte) error {
	v, err := ParseSex(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// String returns the canonical lower-case form.
func (s Sex) String() string {
	return string(s)
}
