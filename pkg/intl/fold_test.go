package intl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoldTurkish(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ankara", "ankara"},
		{"  Ankara  ", "ankara"},
		{"İSTANBUL", "istanbul"},
		{"istanbul", "istanbul"},
		{"Çankaya", "cankaya"},
		{"DİYARBAKIR", "diyarbakir"},
		{"Şişli", "sisli"},
		{"Ünye", "unye"},
		{"Öğretmen", "ogretmen"},
		{"ISPARTA", "isparta"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FoldTurkish(tt.in), "FoldTurkish(%q)", tt.in)
	}
}
