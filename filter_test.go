package logview

import "testing"

func level(l Level) *Level { return &l }

func TestFilter_Match(t *testing.T) {
	hello := Record{Level: LevelInfo, Message: "hello world"}
	login := Record{Level: LevelError, Tag: "Auth", Message: "login failed"}

	tests := []struct {
		name   string
		filter Filter
		record Record
		want   bool
	}{
		{"zero filter matches", Filter{}, hello, true},
		{"search hits message", Filter{Search: "login"}, login, true},
		{"search misses", Filter{Search: "login"}, hello, false},
		{"search is case-insensitive", Filter{Search: "LOGIN"}, login, true},
		{"search hits tag", Filter{Search: "auth"}, login, true},
		{"level equality hit", Filter{Level: level(LevelError)}, login, true},
		{"level equality miss", Filter{Level: level(LevelError)}, hello, false},
		{"source hit", Filter{Source: "Auth"}, login, true},
		{"source miss on untagged", Filter{Source: "API"}, hello, false},
		{"search and level combined", Filter{Search: "o", Level: level(LevelInfo)}, hello, true},
		{"search passes but level fails", Filter{Search: "o", Level: level(LevelInfo)}, login, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.record); got != tt.want {
				t.Fatalf("Match(%q) = %v, want %v", tt.record.Message, got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	records := []Record{
		{Level: LevelInfo, Message: "hello world"},
		{Level: LevelError, Tag: "Auth", Message: "login failed"},
	}

	got := Filter{Search: "login"}.Apply(records)
	if len(got) != 1 || got[0].Message != "login failed" {
		t.Fatalf("search %q returned %v, want only the login record", "login", got)
	}

	got = Filter{Level: level(LevelError)}.Apply(records)
	if len(got) != 1 || got[0].Message != "login failed" {
		t.Fatalf("level filter returned %v, want only the error record", got)
	}

	got = Filter{Search: "o", Level: level(LevelInfo)}.Apply(records)
	if len(got) != 1 || got[0].Message != "hello world" {
		t.Fatalf("combined filter returned %v, want only the hello record", got)
	}

	if got := (Filter{}).Apply(nil); got != nil {
		t.Fatalf("Apply(nil) = %v, want nil", got)
	}
}
