// Package duration parses compact minute/second strings such as "2m3s".
package duration

import (
	"fmt"
	"regexp"
	"strconv"
)

// The two parts may appear in either order, so "2m3s" and "3s2m" both parse.
// time.ParseDuration rejects the reversed form, hence the hand-rolled match.
var (
	minutesFirst = regexp.MustCompile(`^((?P<minutes>\d+)m)?((?P<seconds>\d+)s)?$`)
	secondsFirst = regexp.MustCompile(`^((?P<seconds>\d+)s)?((?P<minutes>\d+)m)?$`)
)

// Seconds parses a "<minutes>m<seconds>s" string, either part optional and in
// either order, and returns the total number of seconds.
func Seconds(s string) (int, error) {
	re := minutesFirst
	m := re.FindStringSubmatch(s)
	if m == nil {
		re = secondsFirst
		m = re.FindStringSubmatch(s)
	}
	if m == nil {
		return 0, fmt.Errorf("invalid time string %q", s)
	}
	total := 0
	if v := m[re.SubexpIndex("minutes")]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid time string %q: %w", s, err)
		}
		total += n * 60
	}
	if v := m[re.SubexpIndex("seconds")]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid time string %q: %w", s, err)
		}
		total += n
	}
	return total, nil
}

// Flag is a pflag.Value that stores the parsed number of seconds.
type Flag struct {
	Seconds int

	set bool
}

func (f *Flag) Set(s string) error {
	n, err := Seconds(s)
	if err != nil {
		return err
	}
	f.Seconds = n
	f.set = true
	return nil
}

func (f *Flag) String() string {
	if !f.set {
		return ""
	}
	return strconv.Itoa(f.Seconds) + "s"
}

func (f *Flag) Type() string { return "duration" }

// IsSet reports whether the flag was supplied on the command line.
func (f *Flag) IsSet() bool { return f.set }
