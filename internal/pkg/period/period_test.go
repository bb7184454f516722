package period

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	p, err := Parse("2024-03")
	if err != nil {
		t.Fatalf("Parse(\"2024-03\") returned error: %v", err)
	}
	if p.Year != 2024 || p.Month != time.March {
		t.Errorf("Parse(\"2024-03\") = %+v", p)
	}
}

func TestParse_Invalid(t *testing.T) {
	invalid := []string{"", "2024", "2024-13", "2024-00", "03-2024", "2024-3", "2024-03-01"}
	for _, s := range invalid {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) did not return an error", s)
		}
	}
}

func TestString(t *testing.T) {
	p := Period{Year: 2024, Month: time.July}
	if got := p.String(); got != "2024-07" {
		t.Errorf("String() = %q, want %q", got, "2024-07")
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"2024-01", "1999-12", "2030-06"} {
		p, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", s, err)
		}
		if p.String() != s {
			t.Errorf("Parse(%q).String() = %q", s, p.String())
		}
	}
}

func TestNext(t *testing.T) {
	cases := []struct {
		in   Period
		want Period
	}{
		{Period{2024, time.January}, Period{2024, time.February}},
		{Period{2024, time.December}, Period{2025, time.January}},
	}
	for _, c := range cases {
		if got := c.in.Next(); got != c.want {
			t.Errorf("%s.Next() = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestContains(t *testing.T) {
	p := Period{Year: 2024, Month: time.March}

	inside := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	if !p.Contains(inside) {
		t.Errorf("%s.Contains(%s) = false", p, inside)
	}

	outside := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	if p.Contains(outside) {
		t.Errorf("%s.Contains(%s) = true", p, outside)
	}
}

func TestOf(t *testing.T) {
	ts := time.Date(2023, time.November, 28, 23, 59, 0, 0, time.UTC)
	if got := Of(ts); got != (Period{2023, time.November}) {
		t.Errorf("Of(%s) = %s", ts, got)
	}
}

func TestIsZero(t *testing.T) {
	if !(Period{}).IsZero() {
		t.Error("zero Period reported not zero")
	}
	if (Period{Year: 2024, Month: time.May}).IsZero() {
		t.Error("non-zero Period reported zero")
	}
}
