package poker

import (
	"testing"
)

func TestCategorizeHoleCards(t *testing.T) {
	tests := []struct {
		name     string
		hole     string
		expected HoleCardCategory
	}{
		// Premium hands
		{"Pocket Aces", "AsAh", CategoryPremium},
		{"Pocket Jacks", "JhJd", CategoryPremium},
		{"Ace King offsuit", "AcKh", CategoryPremium},

		// Strong hands
		{"Pocket Tens", "TcTh", CategoryStrong},
		{"Ace Queen suited", "AsQs", CategoryStrong},
		{"Ace Jack offsuit", "AdJc", CategoryStrong},

		// Medium hands
		{"Pocket Sevens", "7h7c", CategoryMedium},
		{"King Queen suited", "KsQs", CategoryMedium},
		{"Queen Jack suited", "QdJd", CategoryMedium},

		// Weak hands
		{"Pocket Twos", "2c2h", CategoryWeak},
		{"Suited connectors 76s", "7h6h", CategoryWeak},
		{"Suited one-gapper 53s", "5d3d", CategoryWeak},

		// Trash hands
		{"Seven Two offsuit", "7c2h", CategoryTrash},
		{"King Queen offsuit", "KcQh", CategoryTrash},
		{"Jack Four suited", "Jh4h", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseHoleCards(tt.hole).Categorize()
			if result != tt.expected {
				t.Errorf("Categorize(%s) = %s, want %s", tt.hole, result, tt.expected)
			}
		})
	}
}
