package domain

import "testing"

func TestValidJobRole(t *testing.T) {
	for _, role := range JobRoles {
		if !ValidJobRole(role) {
			t.Fatalf("listed role %q rejected", role)
		}
	}
	for _, role := range []string{"", "Astronaut", "software engineer"} {
		if ValidJobRole(role) {
			t.Fatalf("unlisted role %q accepted", role)
		}
	}
}

func TestTableNames(t *testing.T) {
	cases := []struct{ got, want string }{
		{Employee{}.TableName(), "employees"},
		{Task{}.TableName(), "tasks"},
		{ChatMessage{}.TableName(), "chat_messages"},
		{Application{}.TableName(), "applications"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("table name %q; want %q", tc.got, tc.want)
		}
	}
}
