package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://localhost:8080", "-x", "other"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:8080"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=payego.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=payego.json"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-x", "1", "-y"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag without value",
			args:    []string{"-a", "-b", "2"},
			allowed: []string{"-a", "-b"},
			want:    []string{"-a", "-b", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
