package domain

import (
	"testing"
)

func TestPriority_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   Priority
		wantErr bool
	}{
		{name: "valid low", value: PriorityLow},
		{name: "valid medium", value: PriorityMedium},
		{name: "valid high", value: PriorityHigh},
		{name: "valid urgent", value: PriorityUrgent},
		{name: "invalid uppercase", value: "HIGH", wantErr: true},
		{name: "invalid empty", value: "", wantErr: true},
		{name: "invalid legacy tier", value: "P0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.value.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Priority(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestPriority_String(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{PriorityLow, "low"},
		{PriorityMedium, "medium"},
		{PriorityHigh, "high"},
		{PriorityUrgent, "urgent"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.priority.String(); got != tt.want {
				t.Errorf("Priority.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriority_IsHigherThan(t *testing.T) {
	tests := []struct {
		name string
		p1   Priority
		p2   Priority
		want bool
	}{
		{"urgent is higher than high", PriorityUrgent, PriorityHigh, true},
		{"high is higher than medium", PriorityHigh, PriorityMedium, true},
		{"medium is higher than low", PriorityMedium, PriorityLow, true},
		{"low is not higher than high", PriorityLow, PriorityHigh, false},
		{"medium is not higher than medium", PriorityMedium, PriorityMedium, false},
		{"unknown ranks below low", "someday", PriorityLow, false},
		{"low is higher than unknown", PriorityLow, "someday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p1.IsHigherThan(tt.p2); got != tt.want {
				t.Errorf("Priority.IsHigherThan() = %v, want %v", got, tt.want)
			}
		})
	}
}
