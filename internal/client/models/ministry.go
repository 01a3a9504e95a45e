package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMinistry is returned when text does not name a Ministry.
var ErrUnknownMinistry = errors.New("unknown ministry")

// Ministry is a named affiliation group.
type Ministry uint8

const (
	MinistryWorship Ministry = iota
	MinistryKids
	MinistryYouth
	MinistryAdmin
	MinistryOutreach

	ministryCount
)

var ministryNames = [ministryCount]string{
	MinistryWorship:  "worship",
	MinistryKids:     "kids",
	MinistryYouth:    "youth",
	MinistryAdmin:    "admin",
	MinistryOutreach: "outreach",
}

// AllMinistries lists every ministry in declaration order.
func AllMinistries() []Ministry {
	out := make([]Ministry, 0, ministryCount)
	for m := Ministry(0); m < ministryCount; m++ {
		out = append(out, m)
	}
	return out
}

func (m Ministry) Valid() bool { return m < ministryCount }

func (m Ministry) String() string {
	if m.Valid() {
		return ministryNames[m]
	}
	return fmt.Sprintf("Ministry(%d)", uint8(m))
}

func ParseMinistry(s string) (Ministry, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range ministryNames {
		if name == s {
			return Ministry(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMinistry, s)
}

// MinistrySet is a set of ministries stored as a bitmask, one bit per
// Ministry. The zero value is the empty set.
type MinistrySet uint8

func NewMinistrySet(ms ...Ministry) MinistrySet {
	var s MinistrySet
	for _, m := range ms {
		s = s.With(m)
	}
	return s
}

// Has reports whether m is in the set.
func (s MinistrySet) Has(m Ministry) bool {
	if !m.Valid() {
		return false
	}
	return s&(1<<m) != 0
}

// With returns a copy of s that also contains m. Invalid values are ignored.
func (s MinistrySet) With(m Ministry) MinistrySet {
	if !m.Valid() {
		return s
	}
	return s | 1<<m
}

// Without returns a copy of s with m removed.
func (s MinistrySet) Without(m Ministry) MinistrySet {
	if !m.Valid() {
		return s
	}
	return s &^ (1 << m)
}

func (s MinistrySet) Empty() bool { return s == 0 }

func (s MinistrySet) Len() int {
	n := 0
	for m := Ministry(0); m < ministryCount; m++ {
		if s.Has(m) {
			n++
		}
	}
	return n
}

// Slice returns the members in declaration order; never nil.
func (s MinistrySet) Slice() []Ministry {
	out := make([]Ministry, 0, s.Len())
	for m := Ministry(0); m < ministryCount; m++ {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s MinistrySet) String() string {
	names := make([]string, 0, s.Len())
	for _, m := range s.Slice() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func (s MinistrySet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, s.Len())
	for _, m := range s.Slice() {
		names = append(names, m.String())
	}
	return json.Marshal(names)
}

// UnmarshalJSON accepts an array of names (null is the empty set). Repeated
// names collapse; an unknown name fails the whole decode.
func (s *MinistrySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var set MinistrySet
	for _, n := range names {
		m, err := ParseMinistry(n)
		if err != nil {
			return err
		}
		set = set.With(m)
	}
	*s = set
	return nil
}
